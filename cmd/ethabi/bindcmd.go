// Copyright 2016 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sunyihoo/go-ethabi/abi"
	"github.com/sunyihoo/go-ethabi/abi/bind"
	"github.com/sunyihoo/go-ethabi/log"
	"github.com/urfave/cli/v2"
)

var bindCommand = &cli.Command{
	Name:   "bind",
	Usage:  "Generate a Go binding of a contract ABI",
	Flags:  []cli.Flag{abiFlag, pkgFlag, outFlag},
	Action: generateBinding,
}

func generateBinding(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.ABI == "" {
		return errors.New("no ABI file given (use --abi)")
	}
	abiJSON, err := os.ReadFile(cfg.ABI)
	if err != nil {
		return errors.Wrap(err, "failed to read ABI")
	}
	spec, err := abi.JSON(bytes.NewReader(abiJSON))
	if err != nil {
		return errors.Wrapf(err, "failed to load ABI %s", cfg.ABI)
	}
	code, err := bind.Generate(spec, string(abiJSON), cfg.Package)
	if err != nil {
		return errors.Wrap(err, "failed to generate binding")
	}
	if cfg.Output == "" {
		fmt.Fprint(ctx.App.Writer, code)
		return nil
	}
	if err := os.WriteFile(cfg.Output, []byte(code), 0600); err != nil {
		return errors.Wrap(err, "failed to write binding")
	}
	log.Info("Generated binding", "abi", cfg.ABI, "package", cfg.Package, "out", cfg.Output)
	return nil
}
