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

package bind

import (
	"fmt"
	"reflect"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/go-ethabi/abi"
	"github.com/sunyihoo/go-ethabi/common"
)

// Encode wraps a value of the native shape of t into a token. Pointers are
// followed, anything else must match NativeType(t) exactly; use Convert first
// for looser input. Numbers are checked against the width of t.
func Encode(v any, t abi.Type) (abi.Token, error) {
	return encode(reflect.ValueOf(v), t)
}

func encode(val reflect.Value, t abi.Type) (abi.Token, error) {
	val, err := indirect(val, t)
	if err != nil {
		return abi.Token{}, err
	}
	return abi.Visit[abi.Token](t, encoder{val: val})
}

type encoder struct {
	abi.RejectTuples[abi.Token]
	val reflect.Value
}

// expect verifies the value has exactly the native type of t.
func (e encoder) expect(want reflect.Type, t any) error {
	if e.val.Type() != want {
		return fmt.Errorf("%w: cannot use %v as %v (want %v)", abi.ErrTypeMismatch, e.val.Type(), t, want)
	}
	return nil
}

func (e encoder) VisitAddress() (abi.Token, error) {
	if err := e.expect(addressT, "address"); err != nil {
		return abi.Token{}, err
	}
	return abi.AddressToken(e.val.Interface().(common.Address)), nil
}

func (e encoder) VisitBytes() (abi.Token, error) {
	if err := e.expect(bytesT, "bytes"); err != nil {
		return abi.Token{}, err
	}
	return abi.BytesToken(e.val.Bytes()), nil
}

func (e encoder) VisitFixedBytes(size int) (abi.Token, error) {
	native, _ := nativeTyper{}.VisitFixedBytes(size)
	if e.val.Kind() == reflect.Array && e.val.Type().Elem() == byteT && e.val.Len() != size {
		return abi.Token{}, fmt.Errorf("%w: bytes%d from %d bytes", abi.ErrLengthMismatch, size, e.val.Len())
	}
	if err := e.expect(native, fmt.Sprintf("bytes%d", size)); err != nil {
		return abi.Token{}, err
	}
	return abi.FixedBytesToken(byteSeq(e.val)), nil
}

func (e encoder) VisitInt(bits int) (abi.Token, error) {
	return e.number(abi.IntType(bits))
}

func (e encoder) VisitUint(bits int) (abi.Token, error) {
	return e.number(abi.UintType(bits))
}

func (e encoder) number(t abi.Type) (abi.Token, error) {
	if err := e.expect(numberT, t); err != nil {
		return abi.Token{}, err
	}
	n := e.val.Interface().(uint256.Int)
	tok := abi.UintToken(&n)
	if t.T == abi.IntTy {
		tok = abi.IntToken(&n)
	}
	return tok, tok.TypeCheck(t)
}

func (e encoder) VisitBool() (abi.Token, error) {
	if err := e.expect(boolT, "bool"); err != nil {
		return abi.Token{}, err
	}
	return abi.BoolToken(e.val.Bool()), nil
}

func (e encoder) VisitString() (abi.Token, error) {
	if err := e.expect(stringT, "string"); err != nil {
		return abi.Token{}, err
	}
	return abi.StringToken(e.val.String()), nil
}

func (e encoder) VisitSlice(elem abi.Type) (abi.Token, error) {
	if e.val.Kind() != reflect.Slice {
		return abi.Token{}, fmt.Errorf("%w: cannot use %v as %v[]", abi.ErrTypeMismatch, e.val.Type(), elem)
	}
	elems, err := encodeElems(e.val, elem)
	if err != nil {
		return abi.Token{}, err
	}
	return abi.SliceToken(elems...), nil
}

func (e encoder) VisitArray(elem abi.Type, size int) (abi.Token, error) {
	if e.val.Kind() != reflect.Array {
		return abi.Token{}, fmt.Errorf("%w: cannot use %v as %v[%d]", abi.ErrTypeMismatch, e.val.Type(), elem, size)
	}
	if e.val.Len() != size {
		return abi.Token{}, fmt.Errorf("%w: %v[%d] from %d elements", abi.ErrLengthMismatch, elem, size, e.val.Len())
	}
	elems, err := encodeElems(e.val, elem)
	if err != nil {
		return abi.Token{}, err
	}
	return abi.ArrayToken(elems...), nil
}

func encodeElems(val reflect.Value, elem abi.Type) ([]abi.Token, error) {
	elems := make([]abi.Token, val.Len())
	for i := range elems {
		tok, err := encode(val.Index(i), elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		elems[i] = tok
	}
	return elems, nil
}
