// Copyright 2020 The go-ethereum Authors
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

// Package tokenize turns human input into ABI tokens.
//
// A Tokenizer converts the textual form of every scalar kind; Tokenize walks
// a type and applies it, splitting array literals such as [1,2,[3]] along the
// way. Strict accepts canonical hex encodings only, Lenient also accepts
// decimal numbers and ether denominations such as "0.1 gwei".
package tokenize

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/go-ethabi/abi"
	"github.com/sunyihoo/go-ethabi/common"
)

// Tokenizer parses the textual form of scalar ABI values. Numbers are returned
// as 32 byte big endian words, signed numbers in two's complement.
type Tokenizer interface {
	TokenizeAddress(value string) (common.Address, error)
	TokenizeString(value string) (string, error)
	TokenizeBool(value string) (bool, error)
	TokenizeBytes(value string) ([]byte, error)
	TokenizeFixedBytes(value string, size int) ([]byte, error)
	TokenizeUint(value string) ([32]byte, error)
	TokenizeInt(value string) ([32]byte, error)
}

// Tokenize parses value as a token of type t.
func Tokenize(tz Tokenizer, t abi.Type, value string) (abi.Token, error) {
	return abi.Visit[abi.Token](t, &tokenVisitor{tz: tz, value: value})
}

// TokenizeAll parses one value per type.
func TokenizeAll(tz Tokenizer, types []abi.Type, values []string) ([]abi.Token, error) {
	if len(types) != len(values) {
		return nil, fmt.Errorf("%w: got %d values for %d types", abi.ErrArgumentCount, len(values), len(types))
	}
	tokens := make([]abi.Token, len(types))
	for i, t := range types {
		tok, err := Tokenize(tz, t, values[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d (%v): %w", i, t, err)
		}
		tokens[i] = tok
	}
	return tokens, nil
}

type tokenVisitor struct {
	abi.RejectTuples[abi.Token]
	tz    Tokenizer
	value string
}

func (v *tokenVisitor) VisitAddress() (abi.Token, error) {
	addr, err := v.tz.TokenizeAddress(v.value)
	if err != nil {
		return abi.Token{}, err
	}
	return abi.AddressToken(addr), nil
}

func (v *tokenVisitor) VisitBytes() (abi.Token, error) {
	b, err := v.tz.TokenizeBytes(v.value)
	if err != nil {
		return abi.Token{}, err
	}
	return abi.BytesToken(b), nil
}

func (v *tokenVisitor) VisitFixedBytes(size int) (abi.Token, error) {
	b, err := v.tz.TokenizeFixedBytes(v.value, size)
	if err != nil {
		return abi.Token{}, err
	}
	return abi.FixedBytesToken(b), nil
}

func (v *tokenVisitor) VisitInt(bits int) (abi.Token, error) {
	word, err := v.tz.TokenizeInt(v.value)
	if err != nil {
		return abi.Token{}, err
	}
	tok := abi.IntToken(new(uint256.Int).SetBytes32(word[:]))
	return tok, tok.TypeCheck(abi.IntType(bits))
}

func (v *tokenVisitor) VisitUint(bits int) (abi.Token, error) {
	word, err := v.tz.TokenizeUint(v.value)
	if err != nil {
		return abi.Token{}, err
	}
	tok := abi.UintToken(new(uint256.Int).SetBytes32(word[:]))
	return tok, tok.TypeCheck(abi.UintType(bits))
}

func (v *tokenVisitor) VisitBool() (abi.Token, error) {
	b, err := v.tz.TokenizeBool(v.value)
	if err != nil {
		return abi.Token{}, err
	}
	return abi.BoolToken(b), nil
}

func (v *tokenVisitor) VisitString() (abi.Token, error) {
	s, err := v.tz.TokenizeString(v.value)
	if err != nil {
		return abi.Token{}, err
	}
	return abi.StringToken(s), nil
}

func (v *tokenVisitor) VisitSlice(elem abi.Type) (abi.Token, error) {
	elems, err := v.elements(elem)
	if err != nil {
		return abi.Token{}, err
	}
	return abi.SliceToken(elems...), nil
}

func (v *tokenVisitor) VisitArray(elem abi.Type, size int) (abi.Token, error) {
	elems, err := v.elements(elem)
	if err != nil {
		return abi.Token{}, err
	}
	if len(elems) != size {
		return abi.Token{}, fmt.Errorf("%w: %v[%d] literal has %d elements", abi.ErrLengthMismatch, elem, size, len(elems))
	}
	return abi.ArrayToken(elems...), nil
}

// elements splits an array literal and tokenizes every element as elem.
func (v *tokenVisitor) elements(elem abi.Type) ([]abi.Token, error) {
	if elem.HasTuple() {
		return nil, fmt.Errorf("%w: %v", abi.ErrUnsupportedType, elem)
	}
	parts, err := splitArray(v.value)
	if err != nil {
		return nil, err
	}
	elems := make([]abi.Token, len(parts))
	for i, part := range parts {
		tok, err := Tokenize(v.tz, elem, part)
		if err != nil {
			return nil, err
		}
		elems[i] = tok
	}
	return elems, nil
}
