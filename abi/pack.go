// Copyright 2017 The go-ethereum Authors
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
	"fmt"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/go-ethabi/common"
)

// PackTokens encodes tokens as the head/tail layout of a parameter list of the
// given types.
func PackTokens(types []Type, tokens []Token) ([]byte, error) {
	if len(tokens) != len(types) {
		return nil, fmt.Errorf("%w: got %d for %d", ErrArgumentCount, len(tokens), len(types))
	}
	// variable input is the output appended at the end of packed
	// output. This is used for strings and bytes types input.
	var variableInput []byte

	// input offset is the bytes offset for packed output
	inputOffset := 0
	for _, typ := range types {
		inputOffset += getTypeSize(typ)
	}
	var ret []byte
	for i, tok := range tokens {
		typ := types[i]
		packed, err := typ.pack(tok)
		if err != nil {
			return nil, err
		}
		if isDynamicType(typ) {
			ret = append(ret, packNum(inputOffset)...)
			inputOffset += len(packed)
			variableInput = append(variableInput, packed...)
		} else {
			ret = append(ret, packed...)
		}
	}
	// append the variable input at the end of the packed input
	ret = append(ret, variableInput...)

	return ret, nil
}

func (t Type) pack(tok Token) ([]byte, error) {
	if tok.T != t.T {
		return nil, typeErr(t, tok.Kind())
	}
	switch t.T {
	case SliceTy, ArrayTy:
		if t.T == ArrayTy && len(tok.Elems) != t.Size {
			return nil, lengthErr(t, len(tok.Elems))
		}
		var ret []byte

		if t.requiresLengthPrefix() {
			ret = append(ret, packNum(len(tok.Elems))...)
		}
		// calculate offset if any
		offset := 0
		offsetReq := isDynamicType(*t.Elem)
		if offsetReq {
			offset = getTypeSize(*t.Elem) * len(tok.Elems)
		}
		var tail []byte
		for _, elem := range tok.Elems {
			val, err := t.Elem.pack(elem)
			if err != nil {
				return nil, err
			}
			if !offsetReq {
				ret = append(ret, val...)
				continue
			}
			ret = append(ret, packNum(offset)...)
			offset += len(val)
			tail = append(tail, val...)
		}
		return append(ret, tail...), nil
	case TupleTy:
		// (T1,...,Tk) for k >= 0 and any types T1, …, Tk
		// enc(X) = head(X(1)) ... head(X(k)) tail(X(1)) ... tail(X(k))
		// where X = (X(1), ..., X(k)) and head and tail are defined for Ti being a static
		// type as
		//     head(X(i)) = enc(X(i)) and tail(X(i)) = "" (the empty string)
		// and as
		//     head(X(i)) = enc(len(head(X(1)) ... head(X(k)) tail(X(1)) ... tail(X(i-1))))
		//     tail(X(i)) = enc(X(i))
		// otherwise, i.e. if Ti is a dynamic type.
		types := make([]Type, len(t.TupleElems))
		for i, elem := range t.TupleElems {
			types[i] = *elem
		}
		if len(tok.Elems) != len(types) {
			return nil, fmt.Errorf("%w: %v wants %d components, got %d", ErrLengthMismatch, t, len(types), len(tok.Elems))
		}
		return PackTokens(types, tok.Elems)
	default:
		return packElement(t, tok)
	}
}

// packBytesSlice packs the given bytes as [L, V] as the canonical representation
// bytes slice.
func packBytesSlice(bytes []byte, l int) []byte {
	len := packNum(l)
	return append(len, common.RightPadBytes(bytes, (l+31)/32*32)...)
}

// packElement packs the given scalar token according to the abi specification
// in t.
func packElement(t Type, tok Token) ([]byte, error) {
	switch t.T {
	case IntTy, UintTy:
		if err := checkInteger(t, &tok.Number); err != nil {
			return nil, err
		}
		word := tok.Number.Bytes32()
		return word[:], nil
	case StringTy:
		return packBytesSlice([]byte(tok.Str), len(tok.Str)), nil
	case AddressTy:
		return common.LeftPadBytes(tok.Address[:], 32), nil
	case BoolTy:
		word := make([]byte, 32)
		if tok.Bool {
			word[31] = 1
		}
		return word, nil
	case BytesTy:
		return packBytesSlice(tok.Bytes, len(tok.Bytes)), nil
	case FixedBytesTy:
		if len(tok.Bytes) != t.Size {
			return nil, fmt.Errorf("%w: %v wants %d bytes, got %d", ErrLengthMismatch, t, t.Size, len(tok.Bytes))
		}
		return common.RightPadBytes(tok.Bytes, 32), nil
	default:
		return nil, fmt.Errorf("abi: could not pack element, unknown type: %v", t.T)
	}
}

// packNum packs an offset or length as a 32 byte word.
func packNum(n int) []byte {
	word := uint256.NewInt(uint64(n)).Bytes32()
	return word[:]
}
