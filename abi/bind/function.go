// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package bind

import (
	"fmt"

	"github.com/sunyihoo/go-ethabi/abi"
	"github.com/sunyihoo/go-ethabi/log"
)

// Unit is the decoded output of a function without outputs.
type Unit struct{}

// Tuple holds the decoded values of a function with several outputs, in
// declaration order.
type Tuple []any

// Function is the typed binding of a contract function.
type Function struct {
	spec  *abi.Function
	names []string // input names, positional for unnamed inputs
}

// NewFunction synthesizes the binding of fn. Functions with tuple inputs or
// outputs are rejected with abi.ErrUnsupportedType.
func NewFunction(fn *abi.Function) (*Function, error) {
	if err := supportedParams(fn.Inputs); err != nil {
		return nil, fmt.Errorf("function %s: %w", fn.Sig, err)
	}
	if err := supportedParams(fn.Outputs); err != nil {
		return nil, fmt.Errorf("function %s: %w", fn.Sig, err)
	}
	log.Trace("Synthesized function binding", "sig", fn.Sig, "inputs", len(fn.Inputs), "outputs", len(fn.Outputs))
	return &Function{spec: fn, names: paramNames(fn.Inputs)}, nil
}

// Spec returns the function description the binding was synthesized from.
func (f *Function) Spec() *abi.Function {
	return f.spec
}

// EncodeInput converts args into the function inputs and returns the call
// data: the selector followed by the encoded arguments.
func (f *Function) EncodeInput(args ...any) ([]byte, error) {
	tokens, err := encodeParams(f.spec.Inputs, f.names, args)
	if err != nil {
		return nil, fmt.Errorf("function %s: %w", f.spec.Sig, err)
	}
	return f.spec.EncodeInput(tokens)
}

// DecodeInput verifies the selector of call data and decodes the arguments.
func (f *Function) DecodeInput(data []byte) (Tuple, error) {
	tokens, err := f.spec.DecodeInput(data)
	if err != nil {
		return nil, err
	}
	return decodeParams(f.spec.Inputs, tokens)
}

// DecodeOutput decodes the return data of a call. Functions without outputs
// return Unit{}, functions with a single output its bare value, and all others
// a Tuple with one value per output.
func (f *Function) DecodeOutput(data []byte) (any, error) {
	tokens, err := f.spec.DecodeOutput(data)
	if err != nil {
		return nil, err
	}
	values, err := decodeParams(f.spec.Outputs, tokens)
	if err != nil {
		return nil, err
	}
	switch len(values) {
	case 0:
		return Unit{}, nil
	case 1:
		return values[0], nil
	}
	return values, nil
}

// DecodeOutputInto decodes the return data of a call into one pointer per
// output.
func (f *Function) DecodeOutputInto(data []byte, outs ...any) error {
	if len(outs) != len(f.spec.Outputs) {
		return fmt.Errorf("%w: %d destinations for %d outputs of %s", abi.ErrArgumentCount, len(outs), len(f.spec.Outputs), f.spec.Sig)
	}
	tokens, err := f.spec.DecodeOutput(data)
	if err != nil {
		return err
	}
	checkTokenCount(f.spec.Outputs, tokens)
	for i, out := range outs {
		if err := DecodeInto(tokens[i], f.spec.Outputs[i].Type, out); err != nil {
			return fmt.Errorf("output %d: %w", i, err)
		}
	}
	return nil
}

// Call encodes a call and returns the decoder for its return data.
func (f *Function) Call(args ...any) ([]byte, *Decoder, error) {
	data, err := f.EncodeInput(args...)
	if err != nil {
		return nil, nil, err
	}
	return data, &Decoder{fn: f}, nil
}

// Decoder decodes the return data of a call prepared by Function.Call.
type Decoder struct {
	fn *Function
}

// Decode is Function.DecodeOutput of the called function.
func (d *Decoder) Decode(data []byte) (any, error) {
	return d.fn.DecodeOutput(data)
}

// Constructor is the typed binding of a contract constructor.
type Constructor struct {
	spec  *abi.Constructor
	names []string
}

// NewConstructor synthesizes the binding of ctor.
func NewConstructor(ctor *abi.Constructor) (*Constructor, error) {
	if err := supportedParams(ctor.Inputs); err != nil {
		return nil, fmt.Errorf("constructor: %w", err)
	}
	return &Constructor{spec: ctor, names: paramNames(ctor.Inputs)}, nil
}

// Spec returns the constructor description the binding was synthesized from.
func (c *Constructor) Spec() *abi.Constructor {
	return c.spec
}

// EncodeInput returns the creation code followed by the encoded arguments.
func (c *Constructor) EncodeInput(code []byte, args ...any) ([]byte, error) {
	tokens, err := encodeParams(c.spec.Inputs, c.names, args)
	if err != nil {
		return nil, fmt.Errorf("constructor: %w", err)
	}
	return c.spec.EncodeInput(code, tokens)
}

func supportedParams(params abi.Params) error {
	for i, p := range params {
		if err := Supported(p.Type); err != nil {
			return fmt.Errorf("parameter %d: %w", i, err)
		}
	}
	return nil
}

// paramNames names every parameter, falling back to param{i} for unnamed
// ones and topic{i} for unnamed indexed ones.
func paramNames(params abi.Params) []string {
	names := make([]string, len(params))
	for i, p := range params {
		switch {
		case p.Name != "":
			names[i] = p.Name
		case p.Indexed:
			names[i] = fmt.Sprintf("topic%d", i)
		default:
			names[i] = fmt.Sprintf("param%d", i)
		}
	}
	return names
}

func encodeParams(params abi.Params, names []string, args []any) ([]abi.Token, error) {
	if len(args) != len(params) {
		return nil, fmt.Errorf("%w: got %d arguments for %d inputs", abi.ErrArgumentCount, len(args), len(params))
	}
	tokens := make([]abi.Token, len(params))
	for i, p := range params {
		native, err := Convert(args[i], p.Type)
		if err != nil {
			return nil, fmt.Errorf("argument %s: %w", names[i], err)
		}
		tok, err := Encode(native, p.Type)
		if err != nil {
			return nil, fmt.Errorf("argument %s: %w", names[i], err)
		}
		tokens[i] = tok
	}
	return tokens, nil
}

func decodeParams(params abi.Params, tokens []abi.Token) (Tuple, error) {
	checkTokenCount(params, tokens)
	values := make(Tuple, len(tokens))
	for i, tok := range tokens {
		v, err := Decode(tok, params[i].Type)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}

// checkTokenCount panics if the codec returned a different number of tokens
// than there are parameters.
func checkTokenCount(params abi.Params, tokens []abi.Token) {
	if len(tokens) != len(params) {
		panic(fmt.Sprintf("abi codec returned %d tokens for %d parameters", len(tokens), len(params)))
	}
}
