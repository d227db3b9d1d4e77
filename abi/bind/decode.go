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

	"github.com/sunyihoo/go-ethabi/abi"
)

// Decode converts a token into a value of NativeType(t). A token whose kind
// disagrees with t yields abi.ErrDecodeMismatch, fixed-size values carrying
// the wrong number of elements abi.ErrLengthMismatch. Empty bytes and
// dynamic arrays decode to nil slices.
func Decode(tok abi.Token, t abi.Type) (any, error) {
	val, err := decode(tok, t)
	if err != nil {
		return nil, err
	}
	return val.Interface(), nil
}

// DecodeInto decodes tok and stores the result in the value out points to,
// which must be able to hold NativeType(t).
func DecodeInto(tok abi.Token, t abi.Type, out any) error {
	dst := reflect.ValueOf(out)
	if dst.Kind() != reflect.Pointer || dst.IsNil() {
		return fmt.Errorf("%w: decoding %v into non-pointer %T", abi.ErrTypeMismatch, t, out)
	}
	val, err := decode(tok, t)
	if err != nil {
		return err
	}
	if !val.Type().AssignableTo(dst.Elem().Type()) {
		return fmt.Errorf("%w: cannot store %v in %v", abi.ErrTypeMismatch, val.Type(), dst.Elem().Type())
	}
	dst.Elem().Set(val)
	return nil
}

func decode(tok abi.Token, t abi.Type) (reflect.Value, error) {
	if tok.T != t.T {
		return reflect.Value{}, fmt.Errorf("%w: %s token for %v", abi.ErrDecodeMismatch, tok.Kind(), t)
	}
	return abi.Visit[reflect.Value](t, decoder{tok: tok})
}

type decoder struct {
	abi.RejectTuples[reflect.Value]
	tok abi.Token
}

func (d decoder) VisitAddress() (reflect.Value, error) {
	return reflect.ValueOf(d.tok.Address), nil
}

// Empty dynamic values decode to nil slices.
func (d decoder) VisitBytes() (reflect.Value, error) {
	if len(d.tok.Bytes) == 0 {
		return reflect.ValueOf([]byte(nil)), nil
	}
	return reflect.ValueOf(append([]byte{}, d.tok.Bytes...)), nil
}

func (d decoder) VisitFixedBytes(size int) (reflect.Value, error) {
	if len(d.tok.Bytes) != size {
		return reflect.Value{}, fmt.Errorf("%w: bytes%d token carries %d bytes", abi.ErrLengthMismatch, size, len(d.tok.Bytes))
	}
	return fixedBytesValue(d.tok.Bytes, size), nil
}

func (d decoder) VisitInt(bits int) (reflect.Value, error) {
	return reflect.ValueOf(d.tok.Number), nil
}

func (d decoder) VisitUint(bits int) (reflect.Value, error) {
	return reflect.ValueOf(d.tok.Number), nil
}

func (d decoder) VisitBool() (reflect.Value, error) {
	return reflect.ValueOf(d.tok.Bool), nil
}

func (d decoder) VisitString() (reflect.Value, error) {
	return reflect.ValueOf(d.tok.Str), nil
}

func (d decoder) VisitSlice(elem abi.Type) (reflect.Value, error) {
	native, err := NativeType(elem)
	if err != nil {
		return reflect.Value{}, err
	}
	if len(d.tok.Elems) == 0 {
		return reflect.Zero(reflect.SliceOf(native)), nil
	}
	out := reflect.MakeSlice(reflect.SliceOf(native), len(d.tok.Elems), len(d.tok.Elems))
	return out, decodeElems(out, d.tok.Elems, elem)
}

func (d decoder) VisitArray(elem abi.Type, size int) (reflect.Value, error) {
	if len(d.tok.Elems) != size {
		return reflect.Value{}, fmt.Errorf("%w: %v[%d] token carries %d elements", abi.ErrLengthMismatch, elem, size, len(d.tok.Elems))
	}
	native, err := NativeType(elem)
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(reflect.ArrayOf(size, native)).Elem()
	return out, decodeElems(out, d.tok.Elems, elem)
}

func decodeElems(dst reflect.Value, elems []abi.Token, elem abi.Type) error {
	for i, tok := range elems {
		v, err := decode(tok, elem)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		dst.Index(i).Set(v)
	}
	return nil
}
