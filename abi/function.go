// Copyright 2015 The go-ethereum Authors
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

package abi

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sunyihoo/go-ethabi/crypto"
)

// StateMutability describes how a function interacts with chain state.
type StateMutability string

const (
	Pure       StateMutability = "pure"       // reads nothing, writes nothing
	View       StateMutability = "view"       // reads state
	NonPayable StateMutability = "nonpayable" // writes state, rejects value
	Payable    StateMutability = "payable"    // writes state, accepts value
)

// legacyMutability derives the mutability of ABIs emitted before solidity
// 0.6.0 that only carry the constant and payable flags.
func legacyMutability(mutability string, isConst, isPayable bool) StateMutability {
	if mutability != "" {
		return StateMutability(mutability)
	}
	switch {
	case isConst:
		return View
	case isPayable:
		return Payable
	}
	return NonPayable
}

// Function represents a callable contract function given a name and whether
// the function is a constant. Input and output parameters are kept in
// declaration order.
type Function struct {
	// Name is the function name used for internal representation. It's derived
	// from the raw name and a suffix will be added in the case of a function
	// overload.
	//
	// e.g.
	// These are two functions that have the same name:
	// * foo(int,int)
	// * foo(uint,uint)
	// The function name of the first one will be resolved as foo while the
	// second one will be resolved as foo0.
	Name    string
	RawName string // RawName is the raw function name parsed from ABI

	StateMutability StateMutability

	// Constant is true for pure and view functions, and for legacy ABIs
	// flagging the function as constant.
	Constant bool
	Payable  bool

	Inputs  Params
	Outputs Params
	str     string

	// Sig returns the methods string signature according to the ABI spec.
	// e.g.		function foo(uint32 a, int b) = "foo(uint32,int256)"
	// Please note that "int" is substitute for its canonical representation "int256"
	Sig string

	// ID returns the canonical representation of the method's signature used by the
	// abi definition to identify method names and types.
	ID []byte
}

// NewFunction creates a new Function.
// A function should always be created using NewFunction.
// It also precomputes the sig representation and the string representation
// of the function.
func NewFunction(name string, rawName string, mutability string, isConst, isPayable bool, inputs Params, outputs Params) Function {
	var (
		types       = make([]string, len(inputs))
		inputNames  = make([]string, len(inputs))
		outputNames = make([]string, len(outputs))
	)
	for i, input := range inputs {
		inputNames[i] = input.String()
		types[i] = input.Type.String()
	}
	for i, output := range outputs {
		outputNames[i] = output.String()
	}
	sig := fmt.Sprintf("%v(%v)", rawName, strings.Join(types, ","))
	sel := crypto.Selector(sig)
	id := sel[:]

	stateMutability := legacyMutability(mutability, isConst, isPayable)
	constant := isConst || stateMutability == Pure || stateMutability == View
	payable := isPayable || stateMutability == Payable

	identity := fmt.Sprintf("function %v", rawName)
	var state string
	if stateMutability != NonPayable {
		state = string(stateMutability) + " "
	}
	str := fmt.Sprintf("%v(%v) %sreturns(%v)", identity, strings.Join(inputNames, ", "), state, strings.Join(outputNames, ", "))

	return Function{
		Name:            name,
		RawName:         rawName,
		StateMutability: stateMutability,
		Constant:        constant,
		Payable:         payable,
		Inputs:          inputs,
		Outputs:         outputs,
		str:             str,
		Sig:             sig,
		ID:              id,
	}
}

// String returns the human readable declaration of the function.
func (function Function) String() string {
	return function.str
}

// Selector returns the 4 byte function selector.
func (function Function) Selector() [4]byte {
	var sel [4]byte
	copy(sel[:], function.ID)
	return sel
}

// IsConstant returns the indicator whether the function is read-only.
func (function Function) IsConstant() bool {
	return function.Constant
}

// EncodeInput packs the input tokens behind the function selector.
func (function Function) EncodeInput(tokens []Token) ([]byte, error) {
	arguments, err := function.Inputs.Pack(tokens...)
	if err != nil {
		return nil, fmt.Errorf("function %s: %w", function.Sig, err)
	}
	return append(append([]byte{}, function.ID...), arguments...), nil
}

// DecodeInput verifies the selector in front of calldata and unpacks the input
// tokens behind it.
func (function Function) DecodeInput(data []byte) ([]Token, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: data too short (%d bytes) for function selector", ErrInvalidData, len(data))
	}
	if !bytes.Equal(data[:4], function.ID) {
		return nil, fmt.Errorf("%w: selector %#x does not match %s", ErrInvalidData, data[:4], function.Sig)
	}
	return function.Inputs.Unpack(data[4:])
}

// DecodeOutput unpacks the return data of a call into one token per output.
func (function Function) DecodeOutput(data []byte) ([]Token, error) {
	if len(data)%32 != 0 {
		return nil, fmt.Errorf("%w: improperly formatted output: %d bytes", ErrInvalidData, len(data))
	}
	return function.Outputs.Unpack(data)
}

// Constructor describes the inputs of contract creation.
type Constructor struct {
	StateMutability StateMutability
	Inputs          Params
}

// NewConstructor creates a constructor description.
func NewConstructor(mutability string, isPayable bool, inputs Params) Constructor {
	return Constructor{
		StateMutability: legacyMutability(mutability, false, isPayable),
		Inputs:          inputs,
	}
}

// EncodeInput appends the packed constructor arguments to the creation code.
func (c Constructor) EncodeInput(code []byte, tokens []Token) ([]byte, error) {
	arguments, err := c.Inputs.Pack(tokens...)
	if err != nil {
		return nil, fmt.Errorf("constructor: %w", err)
	}
	return append(append([]byte{}, code...), arguments...), nil
}
