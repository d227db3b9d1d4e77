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
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/go-ethabi/abi"
	"github.com/sunyihoo/go-ethabi/common"
	"github.com/sunyihoo/go-ethabi/common/hexutil"
)

// Convert turns v into the native shape of t, accepting any Go value that
// unambiguously denotes a value of t:
//
//   - address: common.Address, any ~[20]byte, a 20 byte []byte or a hex string
//   - bytesN: any ~[N]byte, a []byte or string of exactly N bytes, or a 0x
//     prefixed hex string of N bytes
//   - bytes: any byte slice or byte array, or a string taken as raw bytes
//   - uintN: any Go integer, uint256.Int or big.Int (negative values underflow)
//   - intN: any Go integer, big.Int, or uint256.Int taken as two's complement
//   - bool, string: any ~bool, ~string (string also accepts byte slices)
//   - arrays: any slice or array (including []any) of convertible elements
//
// Pointers and interfaces are followed. Range checks against narrow integer
// widths happen in Encode.
func Convert(v any, t abi.Type) (any, error) {
	out, err := convert(reflect.ValueOf(v), t)
	if err != nil {
		return nil, err
	}
	return out.Interface(), nil
}

func convert(val reflect.Value, t abi.Type) (reflect.Value, error) {
	val, err := indirect(val, t)
	if err != nil {
		return reflect.Value{}, err
	}
	return abi.Visit[reflect.Value](t, converter{val: val})
}

// indirect recursively dereferences pointers and interfaces.
func indirect(val reflect.Value, t abi.Type) (reflect.Value, error) {
	for val.IsValid() && (val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface) {
		if val.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil %v for %v", abi.ErrTypeMismatch, val.Type(), t)
		}
		val = val.Elem()
	}
	if !val.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: nil for %v", abi.ErrTypeMismatch, t)
	}
	return val, nil
}

type converter struct {
	abi.RejectTuples[reflect.Value]
	val reflect.Value
}

func (c converter) mismatch(t any) error {
	return fmt.Errorf("%w: cannot use %v as %v", abi.ErrTypeMismatch, c.val.Type(), t)
}

// isByteSeq reports whether val is a byte slice or byte array.
func isByteSeq(val reflect.Value) bool {
	return (val.Kind() == reflect.Slice || val.Kind() == reflect.Array) && val.Type().Elem().Kind() == reflect.Uint8
}

// byteSeq copies the content of a byte slice or byte array.
func byteSeq(val reflect.Value) []byte {
	out := make([]byte, val.Len())
	reflect.Copy(reflect.ValueOf(out), val)
	return out
}

func (c converter) VisitAddress() (reflect.Value, error) {
	switch {
	case c.val.Type() == addressT:
		return c.val, nil
	case isByteSeq(c.val):
		if c.val.Len() != common.AddressLength {
			return reflect.Value{}, fmt.Errorf("%w: address from %d bytes", abi.ErrLengthMismatch, c.val.Len())
		}
		return reflect.ValueOf(common.BytesToAddress(byteSeq(c.val))), nil
	case c.val.Kind() == reflect.String:
		if !common.IsHexAddress(c.val.String()) {
			return reflect.Value{}, fmt.Errorf("%w: %q is not a hex address", abi.ErrTypeMismatch, c.val.String())
		}
		return reflect.ValueOf(common.HexToAddress(c.val.String())), nil
	}
	return reflect.Value{}, c.mismatch("address")
}

func (c converter) VisitFixedBytes(size int) (reflect.Value, error) {
	var raw []byte
	switch {
	case isByteSeq(c.val):
		raw = byteSeq(c.val)
	case c.val.Kind() == reflect.String:
		s := c.val.String()
		if len(s) == 2+2*size && (s[:2] == "0x" || s[:2] == "0X") {
			b, err := hexutil.Decode(s)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("%w: %q: %v", abi.ErrTypeMismatch, s, err)
			}
			raw = b
		} else {
			raw = []byte(s)
		}
	default:
		return reflect.Value{}, c.mismatch(fmt.Sprintf("bytes%d", size))
	}
	if len(raw) != size {
		return reflect.Value{}, fmt.Errorf("%w: bytes%d from %d bytes", abi.ErrLengthMismatch, size, len(raw))
	}
	return fixedBytesValue(raw, size), nil
}

// fixedBytesValue copies raw into the native shape of bytes<size>.
func fixedBytesValue(raw []byte, size int) reflect.Value {
	native, _ := nativeTyper{}.VisitFixedBytes(size)
	out := reflect.New(native).Elem()
	reflect.Copy(out, reflect.ValueOf(raw))
	return out
}

func (c converter) VisitBytes() (reflect.Value, error) {
	switch {
	case isByteSeq(c.val):
		return reflect.ValueOf(byteSeq(c.val)), nil
	case c.val.Kind() == reflect.String:
		return reflect.ValueOf([]byte(c.val.String())), nil
	}
	return reflect.Value{}, c.mismatch("bytes")
}

func (c converter) VisitUint(bits int) (reflect.Value, error) {
	switch {
	case c.val.Type() == numberT:
		return c.val, nil
	case c.val.Type() == bigT:
		b := bigValue(c.val)
		if b.Sign() < 0 {
			return reflect.Value{}, fmt.Errorf("%w: %v is negative", abi.ErrUnderflow, b)
		}
		n, overflow := uint256.FromBig(b)
		if overflow {
			return reflect.Value{}, fmt.Errorf("%w: %v exceeds 256 bits", abi.ErrOverflow, b)
		}
		return reflect.ValueOf(*n), nil
	}
	switch c.val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if c.val.Int() < 0 {
			return reflect.Value{}, fmt.Errorf("%w: %d is negative", abi.ErrUnderflow, c.val.Int())
		}
		return reflect.ValueOf(*uint256.NewInt(uint64(c.val.Int()))), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return reflect.ValueOf(*uint256.NewInt(c.val.Uint())), nil
	}
	return reflect.Value{}, c.mismatch(fmt.Sprintf("uint%d", bits))
}

func (c converter) VisitInt(bits int) (reflect.Value, error) {
	switch {
	case c.val.Type() == numberT:
		return c.val, nil
	case c.val.Type() == bigT:
		n, err := int256FromBig(bigValue(c.val))
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(*n), nil
	}
	switch c.val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.ValueOf(*int256FromInt64(c.val.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return reflect.ValueOf(*uint256.NewInt(c.val.Uint())), nil
	}
	return reflect.Value{}, c.mismatch(fmt.Sprintf("int%d", bits))
}

func (c converter) VisitBool() (reflect.Value, error) {
	if c.val.Kind() == reflect.Bool {
		return reflect.ValueOf(c.val.Bool()), nil
	}
	return reflect.Value{}, c.mismatch("bool")
}

func (c converter) VisitString() (reflect.Value, error) {
	switch {
	case c.val.Kind() == reflect.String:
		return reflect.ValueOf(c.val.String()), nil
	case isByteSeq(c.val) && c.val.Kind() == reflect.Slice:
		return reflect.ValueOf(string(byteSeq(c.val))), nil
	}
	return reflect.Value{}, c.mismatch("string")
}

func (c converter) VisitSlice(elem abi.Type) (reflect.Value, error) {
	if c.val.Kind() != reflect.Slice && c.val.Kind() != reflect.Array {
		return reflect.Value{}, c.mismatch(elem.String() + "[]")
	}
	native, err := NativeType(elem)
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.MakeSlice(reflect.SliceOf(native), c.val.Len(), c.val.Len())
	return out, convertElems(out, c.val, elem)
}

func (c converter) VisitArray(elem abi.Type, size int) (reflect.Value, error) {
	if c.val.Kind() != reflect.Slice && c.val.Kind() != reflect.Array {
		return reflect.Value{}, c.mismatch(fmt.Sprintf("%v[%d]", elem, size))
	}
	if c.val.Len() != size {
		return reflect.Value{}, fmt.Errorf("%w: %v[%d] from %d elements", abi.ErrLengthMismatch, elem, size, c.val.Len())
	}
	native, err := NativeType(elem)
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(reflect.ArrayOf(size, native)).Elem()
	return out, convertElems(out, c.val, elem)
}

// convertElems converts every element of src into the matching slot of dst.
func convertElems(dst, src reflect.Value, elem abi.Type) error {
	for i := 0; i < src.Len(); i++ {
		v, err := convert(src.Index(i), elem)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		dst.Index(i).Set(v)
	}
	return nil
}

// bigValue returns a pointer to the big.Int held by val.
func bigValue(val reflect.Value) *big.Int {
	if val.CanAddr() {
		return val.Addr().Interface().(*big.Int)
	}
	b := val.Interface().(big.Int)
	return &b
}

var (
	maxInt256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
	minInt256 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
)

// int256FromBig converts b into 256 bit two's complement.
func int256FromBig(b *big.Int) (*uint256.Int, error) {
	if b.Cmp(maxInt256) > 0 {
		return nil, fmt.Errorf("%w: %v exceeds int256", abi.ErrOverflow, b)
	}
	if b.Cmp(minInt256) < 0 {
		return nil, fmt.Errorf("%w: %v is below int256", abi.ErrUnderflow, b)
	}
	if b.Sign() >= 0 {
		n, _ := uint256.FromBig(b)
		return n, nil
	}
	n, _ := uint256.FromBig(new(big.Int).Neg(b))
	return n.Neg(n), nil
}

// int256FromInt64 sign extends v to 256 bits.
func int256FromInt64(v int64) *uint256.Int {
	if v >= 0 {
		return uint256.NewInt(uint64(v))
	}
	n := uint256.NewInt(uint64(^v))
	return n.Not(n)
}
