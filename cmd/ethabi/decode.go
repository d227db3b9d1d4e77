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

	"github.com/pkg/errors"
	"github.com/sunyihoo/go-ethabi/abi"
	"github.com/sunyihoo/go-ethabi/abi/bind"
	"github.com/sunyihoo/go-ethabi/common"
	"github.com/sunyihoo/go-ethabi/common/hexutil"
	"github.com/urfave/cli/v2"
)

var decodeCommand = &cli.Command{
	Name:  "decode",
	Usage: "Decode ABI data",
	Subcommands: []*cli.Command{
		{
			Name:      "function",
			Usage:     "Decode the return data of a contract function",
			ArgsUsage: "<name> <hexdata>",
			Flags:     []cli.Flag{abiFlag},
			Action:    decodeFunction,
		},
		{
			Name:      "params",
			Usage:     "Decode parameters",
			ArgsUsage: "<hexdata>",
			Flags:     []cli.Flag{typeFlag},
			Action:    decodeParams,
		},
		{
			Name:      "log",
			Usage:     "Decode an event log",
			ArgsUsage: "<event> <hexdata>",
			Flags:     []cli.Flag{abiFlag, topicFlag},
			Action:    decodeLog,
		},
	},
}

// line renders one decoded value.
type line struct {
	name string
	typ  abi.Type
	tok  abi.Token
}

func printLines(ctx *cli.Context, lines []line) {
	for _, s := range bind.Slice(lines, func(l line) string {
		if l.name == "" {
			return fmt.Sprintf("%v %v", l.typ, l.tok)
		}
		return fmt.Sprintf("%s %v %v", l.name, l.typ, l.tok)
	}) {
		fmt.Fprintln(ctx.App.Writer, s)
	}
}

func decodeHex(input string) ([]byte, error) {
	data, err := hexutil.DecodeLoose(input)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex data %q", input)
	}
	return data, nil
}

func decodeFunction(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errors.New("function name and hex data required")
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	contract, err := loadContract(cfg)
	if err != nil {
		return err
	}
	name := ctx.Args().Get(0)
	fn, ok := contract.Function(name)
	if !ok {
		return fmt.Errorf("function %q not found in %s", name, cfg.ABI)
	}
	data, err := decodeHex(ctx.Args().Get(1))
	if err != nil {
		return err
	}
	outputs := fn.Spec().Outputs
	tokens, err := fn.Spec().DecodeOutput(data)
	if err != nil {
		return err
	}
	lines := make([]line, len(tokens))
	for i, tok := range tokens {
		lines[i] = line{outputs[i].Name, outputs[i].Type, tok}
	}
	printLines(ctx, lines)
	return nil
}

func decodeParams(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("hex data required")
	}
	types, err := parseTypes(ctx.StringSlice(typeFlag.Name))
	if err != nil {
		return err
	}
	data, err := decodeHex(ctx.Args().First())
	if err != nil {
		return err
	}
	tokens, err := abi.UnpackTokens(types, data)
	if err != nil {
		return err
	}
	lines := make([]line, len(tokens))
	for i, tok := range tokens {
		lines[i] = line{typ: types[i], tok: tok}
	}
	printLines(ctx, lines)
	return nil
}

func decodeLog(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errors.New("event name and hex data required")
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	contract, err := loadContract(cfg)
	if err != nil {
		return err
	}
	name := ctx.Args().Get(0)
	ev, ok := contract.Event(name)
	if !ok {
		return fmt.Errorf("event %q not found in %s", name, cfg.ABI)
	}
	var raw abi.RawLog
	for _, topic := range ctx.StringSlice(topicFlag.Name) {
		b, err := decodeHex(topic)
		if err != nil {
			return err
		}
		if len(b) != common.HashLength {
			return fmt.Errorf("topic %q is not 32 bytes", topic)
		}
		raw.Topics = append(raw.Topics, common.BytesToHash(b))
	}
	if raw.Data, err = decodeHex(ctx.Args().Get(1)); err != nil {
		return err
	}
	params, err := ev.Spec().ParseLog(raw)
	if err != nil {
		return err
	}
	lines := make([]line, len(params))
	for i, param := range params {
		t := ev.Spec().Inputs[i].Type
		if ev.Spec().Inputs[i].Indexed && abi.IsHashedTopic(t) {
			t = abi.FixedBytesType(common.HashLength)
		}
		lines[i] = line{param.Name, t, param.Value}
	}
	printLines(ctx, lines)
	return nil
}
