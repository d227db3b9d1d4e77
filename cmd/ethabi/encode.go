// Copyright 2019 The go-ethereum Authors
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
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sunyihoo/go-ethabi/abi"
	"github.com/sunyihoo/go-ethabi/abi/bind"
	"github.com/sunyihoo/go-ethabi/abi/tokenize"
	"github.com/sunyihoo/go-ethabi/common"
	"github.com/sunyihoo/go-ethabi/log"
	"github.com/urfave/cli/v2"
)

var encodeCommand = &cli.Command{
	Name:  "encode",
	Usage: "Encode ABI call data",
	Subcommands: []*cli.Command{
		{
			Name:      "function",
			Usage:     "Encode a call of a contract function",
			ArgsUsage: "<name> [<arg>...]",
			Flags:     []cli.Flag{abiFlag, lenientFlag},
			Action:    encodeFunction,
		},
		{
			Name:      "params",
			Usage:     "Encode parameters without a selector",
			ArgsUsage: "[<value>...]",
			Flags:     []cli.Flag{typeFlag, lenientFlag},
			Action:    encodeParams,
		},
	},
}

// loadContract reads the ABI file named by the config and synthesizes its
// bindings.
func loadContract(cfg *ethabiConfig) (*bind.Contract, error) {
	if cfg.ABI == "" {
		return nil, errors.New("no ABI file given (use --abi)")
	}
	f, err := os.Open(cfg.ABI)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open ABI")
	}
	defer f.Close()

	contract, err := bind.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load ABI %s", cfg.ABI)
	}
	return contract, nil
}

func tokenizer(cfg *ethabiConfig) tokenize.Tokenizer {
	if cfg.Lenient {
		return tokenize.Lenient{}
	}
	return tokenize.Strict{}
}

func encodeFunction(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return errors.New("function name required")
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	contract, err := loadContract(cfg)
	if err != nil {
		return err
	}
	name := ctx.Args().First()
	fn, ok := contract.Function(name)
	if !ok {
		return fmt.Errorf("function %q not found in %s", name, cfg.ABI)
	}
	inputs := fn.Spec().Inputs
	tokens, err := tokenize.TokenizeAll(tokenizer(cfg), inputs.Types(), ctx.Args().Tail())
	if err != nil {
		return err
	}
	args := make([]any, len(tokens))
	for i, tok := range tokens {
		if args[i], err = bind.Decode(tok, inputs[i].Type); err != nil {
			return err
		}
	}
	data, err := fn.EncodeInput(args...)
	if err != nil {
		return err
	}
	log.Debug("Encoded function call", "sig", fn.Spec().Sig, "size", len(data))
	fmt.Fprintln(ctx.App.Writer, common.Bytes2Hex(data))
	return nil
}

func encodeParams(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	types, err := parseTypes(ctx.StringSlice(typeFlag.Name))
	if err != nil {
		return err
	}
	tokens, err := tokenize.TokenizeAll(tokenizer(cfg), types, ctx.Args().Slice())
	if err != nil {
		return err
	}
	data, err := abi.PackTokens(types, tokens)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, common.Bytes2Hex(data))
	return nil
}

func parseTypes(names []string) ([]abi.Type, error) {
	types := make([]abi.Type, len(names))
	for i, name := range names {
		t, err := abi.NewType(name, "", nil)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid type %q", name)
		}
		types[i] = t
	}
	return types, nil
}
