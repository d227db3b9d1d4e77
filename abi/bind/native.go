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
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/go-ethabi/abi"
	"github.com/sunyihoo/go-ethabi/common"
)

var (
	addressT = reflect.TypeOf(common.Address{})
	hashT    = reflect.TypeOf(common.Hash{})
	bytesT   = reflect.TypeOf([]byte(nil))
	numberT  = reflect.TypeOf(uint256.Int{})
	boolT    = reflect.TypeOf(false)
	stringT  = reflect.TypeOf("")
	bigT     = reflect.TypeOf(big.Int{})
	byteT    = reflect.TypeOf(byte(0))
)

// NativeType returns the Go type values of t are decoded into:
//
//	address        common.Address
//	bytes          []byte
//	bytes32        common.Hash
//	bytesN         [N]byte
//	uintN, intN    uint256.Int (intN as two's complement)
//	bool           bool
//	string         string
//	T[]            []NativeType(T)
//	T[k]           [k]NativeType(T)
//
// Tuples have no native shape and yield abi.ErrUnsupportedType.
func NativeType(t abi.Type) (reflect.Type, error) {
	return abi.Visit[reflect.Type](t, nativeTyper{})
}

// Supported reports abi.ErrUnsupportedType if t is or contains a tuple.
func Supported(t abi.Type) error {
	if t.HasTuple() {
		return fmt.Errorf("%w: %v", abi.ErrUnsupportedType, t)
	}
	return nil
}

// topicType returns the Go type of an indexed event input. Inputs whose topic
// only stores a hash of the value are represented by that hash.
func topicType(t abi.Type) (reflect.Type, error) {
	if abi.IsHashedTopic(t) {
		if err := Supported(t); err != nil {
			return nil, err
		}
		return hashT, nil
	}
	return NativeType(t)
}

type nativeTyper struct {
	abi.RejectTuples[reflect.Type]
}

func (nativeTyper) VisitAddress() (reflect.Type, error) { return addressT, nil }
func (nativeTyper) VisitBytes() (reflect.Type, error)   { return bytesT, nil }
func (nativeTyper) VisitBool() (reflect.Type, error)    { return boolT, nil }
func (nativeTyper) VisitString() (reflect.Type, error)  { return stringT, nil }

func (nativeTyper) VisitFixedBytes(size int) (reflect.Type, error) {
	if size == common.HashLength {
		return hashT, nil
	}
	return reflect.ArrayOf(size, byteT), nil
}

func (nativeTyper) VisitInt(bits int) (reflect.Type, error)  { return numberT, nil }
func (nativeTyper) VisitUint(bits int) (reflect.Type, error) { return numberT, nil }

func (v nativeTyper) VisitSlice(elem abi.Type) (reflect.Type, error) {
	inner, err := abi.Visit[reflect.Type](elem, v)
	if err != nil {
		return nil, err
	}
	return reflect.SliceOf(inner), nil
}

func (v nativeTyper) VisitArray(elem abi.Type, size int) (reflect.Type, error) {
	inner, err := abi.Visit[reflect.Type](elem, v)
	if err != nil {
		return nil, err
	}
	return reflect.ArrayOf(size, inner), nil
}
