// Copyright 2023 The go-ethereum Authors
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

	"github.com/holiman/uint256"
	"github.com/sunyihoo/go-ethabi/abi"
	"github.com/sunyihoo/go-ethabi/common"
)

// Integer is the set of Go integer types generated bindings accept for
// numeric parameters of at most 64 bits.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is the set of Go types generated bindings accept for integer
// parameters wider than 64 bits. Values are range checked when encoded.
type Number interface {
	Integer | uint256.Int | *uint256.Int | big.Int | *big.Int
}

// ToUint256 converts an integer into an unsigned 256 bit number.
func ToUint256[T Integer](v T) (*uint256.Int, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d is negative", abi.ErrUnderflow, v)
	}
	return uint256.NewInt(uint64(v)), nil
}

// ToInt256 converts an integer into 256 bit two's complement.
func ToInt256[T Integer](v T) *uint256.Int {
	if v < 0 {
		return int256FromInt64(int64(v))
	}
	return uint256.NewInt(uint64(v))
}

// AsAddress converts any 20 byte array type into an address.
func AsAddress[T ~[common.AddressLength]byte](v T) common.Address {
	return common.Address(v)
}

// Slice maps every element of in through f.
func Slice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}
