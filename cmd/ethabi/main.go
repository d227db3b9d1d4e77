// Copyright 2014 The go-ethereum Authors
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

// ethabi encodes and decodes Ethereum contract ABI data and generates Go
// bindings from JSON ABI files.
package main

import (
	"fmt"
	"os"

	"github.com/sunyihoo/go-ethabi/internal/version"
	"github.com/urfave/cli/v2"
)

const (
	loggingCategory = "LOGGING AND DEBUGGING"
	abiCategory     = "ABI"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	verbosityFlag = &cli.IntFlag{
		Name:     "verbosity",
		Usage:    "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value:    3,
		Category: loggingCategory,
	}
	logFormatFlag = &cli.StringFlag{
		Name:     "log.format",
		Usage:    "Log format to use (json|logfmt|terminal)",
		Category: loggingCategory,
	}

	abiFlag = &cli.StringFlag{
		Name:     "abi",
		Usage:    "Path to the contract JSON ABI",
		Category: abiCategory,
	}
	lenientFlag = &cli.BoolFlag{
		Name:     "lenient",
		Usage:    "Accept decimal numbers and ether denominations (e.g. \"1.5 gwei\")",
		Category: abiCategory,
	}
	typeFlag = &cli.StringSliceFlag{
		Name:     "type",
		Aliases:  []string{"t"},
		Usage:    "Parameter type, repeated once per parameter in order",
		Category: abiCategory,
	}
	topicFlag = &cli.StringSliceFlag{
		Name:     "topic",
		Aliases:  []string{"l"},
		Usage:    "Log topic as 32 byte hex, repeated once per topic in order",
		Category: abiCategory,
	}
	pkgFlag = &cli.StringFlag{
		Name:     "pkg",
		Usage:    "Package name of the generated binding",
		Category: abiCategory,
	}
	outFlag = &cli.StringFlag{
		Name:     "out",
		Usage:    "Output file of the generated binding (default = stdout)",
		Category: abiCategory,
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:    "ethabi",
		Usage:   "Ethereum contract ABI encoder, decoder and binding generator",
		Version: version.String(),
		Flags: []cli.Flag{
			configFileFlag,
			verbosityFlag,
			logFormatFlag,
		},
		Before: func(ctx *cli.Context) error {
			cfg, err := makeConfig(ctx)
			if err != nil {
				return err
			}
			return setupLogging(cfg, ctx.App.ErrWriter)
		},
		Commands: []*cli.Command{
			encodeCommand,
			decodeCommand,
			bindCommand,
			{
				Name:   "dumpconfig",
				Usage:  "Export the effective configuration in TOML format",
				Action: dumpConfig,
				Flags:  []cli.Flag{abiFlag, lenientFlag, pkgFlag, outFlag},
			},
		},
	}
}

func main() {
	app := newApp()
	app.ErrWriter = os.Stderr
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
