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
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-ethabi/abi"
	"github.com/sunyihoo/go-ethabi/common"
)

func TestToUint256(t *testing.T) {
	n, err := ToUint256(uint64(1) << 63)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<63, n.Uint64())

	n, err = ToUint256(int8(5))
	require.NoError(t, err)
	assert.Equal(t, num(5), *n)

	_, err = ToUint256(-1)
	assert.ErrorIs(t, err, abi.ErrUnderflow)
}

func TestToInt256(t *testing.T) {
	assert.Equal(t, neg(1), *ToInt256(int8(-1)))
	assert.Equal(t, neg(1<<63), *ToInt256(int64(-1 << 63)))
	assert.Equal(t, num(300), *ToInt256(uint16(300)))

	type level int32
	assert.Equal(t, neg(7), *ToInt256(level(-7)))
}

func TestAsAddress(t *testing.T) {
	type wallet [20]byte
	assert.Equal(t, addrB, AsAddress(wallet(addrB)))
	assert.Equal(t, addrB, AsAddress(addrB))
}

func TestSlice(t *testing.T) {
	got := Slice([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)
	assert.Equal(t, []common.Address{}, Slice([]common.Address{}, func(a common.Address) common.Address { return a }))
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t,
		[]string{"From", "From0", "Value", "F1st", "Param4", "F"},
		fieldNames([]string{"from", "From", "_value", "1st", "param4", "$"}),
	)
}

func TestLocalNames(t *testing.T) {
	assert.Equal(t,
		[]string{"to", "type_", "data0", "arg3", "to0"},
		localNames([]string{"to", "type", "data", "1x", "To"}, "data"),
	)
}

func TestDecapitalise(t *testing.T) {
	assert.Equal(t, "", decapitalise(""))
	assert.Equal(t, "setValue", decapitalise("set_value"))
	assert.Equal(t, "value", decapitalise("Value"))
}
