// Copyright 2017 The go-ethereum Authors
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
	"bufio"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// ethabiConfig holds the settings a config file may provide. Command line
// flags take precedence.
type ethabiConfig struct {
	ABI       string // Default ABI file of the encode, decode and bind commands
	Lenient   bool   // Accept decimal numbers and ether denominations
	Package   string // Package name of generated bindings
	Output    string // Output file of generated bindings, stdout if empty
	Verbosity int    // Log verbosity, 0=silent to 5=detail
	LogFormat string // Log format: terminal, logfmt or json
}

func defaultConfig() ethabiConfig {
	return ethabiConfig{
		Package:   "contract",
		Verbosity: 3,
		LogFormat: "terminal",
	}
}

func loadConfig(file string, cfg *ethabiConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig loads the config file named by --config, if any, and applies the
// command line flags on top of it.
func makeConfig(ctx *cli.Context) (*ethabiConfig, error) {
	cfg := defaultConfig()
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return nil, errors.Wrap(err, "failed to load config")
		}
	}
	if ctx.IsSet(verbosityFlag.Name) {
		cfg.Verbosity = ctx.Int(verbosityFlag.Name)
	}
	if ctx.IsSet(logFormatFlag.Name) {
		cfg.LogFormat = ctx.String(logFormatFlag.Name)
	}
	if ctx.IsSet(abiFlag.Name) {
		cfg.ABI = ctx.String(abiFlag.Name)
	}
	if ctx.IsSet(lenientFlag.Name) {
		cfg.Lenient = ctx.Bool(lenientFlag.Name)
	}
	if ctx.IsSet(pkgFlag.Name) {
		cfg.Package = ctx.String(pkgFlag.Name)
	}
	if ctx.IsSet(outFlag.Name) {
		cfg.Output = ctx.String(outFlag.Name)
	}
	return &cfg, nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = ctx.App.Writer.Write(out)
	return err
}
