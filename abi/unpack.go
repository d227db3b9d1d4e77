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

// UnpackTokens decodes the head/tail layout of a parameter list of the given
// types.
func UnpackTokens(types []Type, data []byte) ([]Token, error) {
	retval := make([]Token, 0, len(types))
	virtualArgs := 0
	for index, typ := range types {
		tok, err := readToken((index+virtualArgs)*32, typ, data)
		if err != nil {
			return nil, err
		}
		if (typ.T == ArrayTy || typ.T == TupleTy) && !isDynamicType(typ) {
			// Static arrays and tuples are encoded inline, so [3]uint256 takes
			// the same room as uint256,uint256,uint256. Nested arrays are
			// flattened the same way. Account for the extra words here; the
			// loop increment still covers the first one.
			virtualArgs += getTypeSize(typ)/32 - 1
		}
		retval = append(retval, tok)
	}
	return retval, nil
}

// readInteger reads a number word and verifies it is a valid encoding of an
// integer of type typ. Narrow negative numbers must be sign extended over the
// whole word.
func readInteger(typ Type, b []byte) (Token, error) {
	var n uint256.Int
	n.SetBytes32(b)
	if err := checkInteger(typ, &n); err != nil {
		return Token{}, fmt.Errorf("%w: improperly encoded %v value: %v", ErrInvalidData, typ, err)
	}
	return Token{T: typ.T, Number: n}, nil
}

// readBool reads a bool.
func readBool(word []byte) (bool, error) {
	for _, b := range word[:31] {
		if b != 0 {
			return false, fmt.Errorf("%w: improperly encoded boolean value", ErrInvalidData)
		}
	}
	switch word[31] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: improperly encoded boolean value", ErrInvalidData)
	}
}

// readFixedBytes reads the leading t.Size bytes of a word.
func readFixedBytes(t Type, word []byte) (Token, error) {
	for _, b := range word[t.Size:] {
		if b != 0 {
			return Token{}, fmt.Errorf("%w: improperly encoded %v value", ErrInvalidData, t)
		}
	}
	return FixedBytesToken(word[:t.Size]), nil
}

// readAddress reads a left padded address.
func readAddress(word []byte) (Token, error) {
	for _, b := range word[:32-common.AddressLength] {
		if b != 0 {
			return Token{}, fmt.Errorf("%w: improperly encoded address value", ErrInvalidData)
		}
	}
	return AddressToken(common.BytesToAddress(word)), nil
}

// forEachUnpack iteratively unpack elements.
func forEachUnpack(t Type, output []byte, start, size int) (Token, error) {
	if size < 0 {
		return Token{}, fmt.Errorf("%w: cannot marshal input to array, size is negative (%d)", ErrInvalidData, size)
	}
	if start+32*size > len(output) {
		return Token{}, fmt.Errorf("%w: cannot marshal into array: offset %d would go over slice boundary (len=%d)", ErrInvalidData, start+32*size, len(output))
	}
	// Arrays have packed elements, resulting in longer unpack steps.
	// Slices have just 32 bytes per element (pointing to the contents).
	elemSize := getTypeSize(*t.Elem)

	elems := make([]Token, size)
	for i, j := start, 0; j < size; i, j = i+elemSize, j+1 {
		inter, err := readToken(i, *t.Elem, output)
		if err != nil {
			return Token{}, err
		}
		elems[j] = inter
	}
	return Token{T: t.T, Elems: elems}, nil
}

func forTupleUnpack(t Type, output []byte) (Token, error) {
	types := make([]Type, len(t.TupleElems))
	for i, elem := range t.TupleElems {
		types[i] = *elem
	}
	elems, err := UnpackTokens(types, output)
	if err != nil {
		return Token{}, err
	}
	return TupleToken(elems...), nil
}

// readToken parses the output bytes and recursively assigns the value of these
// bytes into a token in accordance with the ABI spec.
func readToken(index int, t Type, output []byte) (Token, error) {
	if index+32 > len(output) {
		return Token{}, fmt.Errorf("%w: cannot marshal in to go type: length insufficient %d require %d", ErrInvalidData, len(output), index+32)
	}

	var (
		returnOutput  []byte
		begin, length int
		err           error
	)

	// if we require a length prefix, find the beginning word and size returned.
	if t.requiresLengthPrefix() {
		begin, length, err = lengthPrefixPointsTo(index, output)
		if err != nil {
			return Token{}, err
		}
	} else {
		returnOutput = output[index : index+32]
	}

	switch t.T {
	case TupleTy:
		if isDynamicType(t) {
			begin, err := tuplePointsTo(index, output)
			if err != nil {
				return Token{}, err
			}
			return forTupleUnpack(t, output[begin:])
		}
		return forTupleUnpack(t, output[index:])
	case SliceTy:
		return forEachUnpack(t, output[begin:], 0, length)
	case ArrayTy:
		if isDynamicType(*t.Elem) {
			offset, err := tuplePointsTo(index, output)
			if err != nil {
				return Token{}, err
			}
			return forEachUnpack(t, output[offset:], 0, t.Size)
		}
		return forEachUnpack(t, output[index:], 0, t.Size)
	case StringTy: // variable arrays are written at the end of the return bytes
		return StringToken(string(output[begin : begin+length])), nil
	case IntTy, UintTy:
		return readInteger(t, returnOutput)
	case BoolTy:
		b, err := readBool(returnOutput)
		if err != nil {
			return Token{}, err
		}
		return BoolToken(b), nil
	case AddressTy:
		return readAddress(returnOutput)
	case BytesTy:
		return BytesToken(output[begin : begin+length]), nil
	case FixedBytesTy:
		return readFixedBytes(t, returnOutput)
	default:
		return Token{}, fmt.Errorf("abi: unknown type %v", t.T)
	}
}

// lengthPrefixPointsTo interprets a 32 byte slice as an offset and then
// determines which indices to look to decode the type.
func lengthPrefixPointsTo(index int, output []byte) (start int, length int, err error) {
	offset, err := tuplePointsTo(index, output)
	if err != nil {
		return 0, 0, err
	}
	if offset+32 > len(output) {
		return 0, 0, fmt.Errorf("%w: cannot marshal in to go slice: offset %d would go over slice boundary (len=%d)", ErrInvalidData, offset+32, len(output))
	}
	var size uint256.Int
	size.SetBytes32(output[offset : offset+32])

	start = offset + 32
	if !size.IsUint64() || size.Uint64() > uint64(len(output)-start) {
		return 0, 0, fmt.Errorf("%w: cannot marshal in to go type: length insufficient %d require %s", ErrInvalidData, len(output), new(uint256.Int).AddUint64(&size, uint64(start)).Dec())
	}
	return start, int(size.Uint64()), nil
}

// tuplePointsTo resolves the location reference for dynamic tuple.
func tuplePointsTo(index int, output []byte) (start int, err error) {
	var offset uint256.Int
	offset.SetBytes32(output[index : index+32])

	if !offset.IsUint64() || offset.Uint64() > uint64(len(output)) {
		return 0, fmt.Errorf("%w: cannot marshal in to go slice: offset %s would go over slice boundary (len=%d)", ErrInvalidData, offset.Dec(), len(output))
	}
	return int(offset.Uint64()), nil
}
