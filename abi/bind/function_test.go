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
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-ethabi/abi"
	"github.com/sunyihoo/go-ethabi/common"
	"github.com/sunyihoo/go-ethabi/common/hexutil"
)

func TestFunctionEncodeInput(t *testing.T) {
	transfer := loadToken(t).MustFunction("transfer")

	data, err := transfer.EncodeInput(addrB.Hex(), 1000)
	require.NoError(t, err)
	want := concat(hexutil.MustDecode("0xa9059cbb"), common.LeftPadBytes(addrB.Bytes(), 32), word(1000))
	assert.Equal(t, want, data)

	native, err := transfer.EncodeInput(addrB, uint256.NewInt(1000))
	require.NoError(t, err)
	assert.Equal(t, want, native)
}

func TestFunctionEncodeInputErrors(t *testing.T) {
	c := loadToken(t)
	transfer, batch := c.MustFunction("transfer"), c.MustFunction("batch")

	tests := []struct {
		fn   *Function
		args []any
		err  error
		msg  string
	}{
		{transfer, []any{addrB}, abi.ErrArgumentCount, ""},
		{transfer, []any{addrB, 1, 2}, abi.ErrArgumentCount, ""},
		{transfer, []any{addrB, -1}, abi.ErrUnderflow, "argument value"},
		{transfer, []any{"0x12", 1}, abi.ErrTypeMismatch, "argument to"},
		{batch, []any{[]common.Address{}, []int{1}, 0, common.Hash{}}, abi.ErrLengthMismatch, "argument amounts"},
		{batch, []any{[]common.Address{}, []int{1, 2}, 200, common.Hash{}}, abi.ErrOverflow, "argument delta"},
		{batch, []any{[]common.Address{}, []int{1, 2}, 0, []byte{1}}, abi.ErrLengthMismatch, "argument param3"},
	}
	for i, tt := range tests {
		_, err := tt.fn.EncodeInput(tt.args...)
		require.ErrorIs(t, err, tt.err, "test %d", i)
		assert.Contains(t, err.Error(), tt.msg, "test %d", i)
	}
}

func TestFunctionDecodeOutput(t *testing.T) {
	c := loadToken(t)

	// No outputs decode to the unit value.
	out, err := c.MustFunction("pause").DecodeOutput(nil)
	require.NoError(t, err)
	assert.Equal(t, Unit{}, out)

	// A single output is returned bare.
	out, err = c.MustFunction("transfer").DecodeOutput(word(1))
	require.NoError(t, err)
	assert.Equal(t, true, out)

	// Several outputs form a tuple in declaration order.
	out, err = c.MustFunction("reserves").DecodeOutput(concat(word(1), word(2), word(3)))
	require.NoError(t, err)
	assert.Equal(t, Tuple{num(1), num(2), num(3)}, out)

	batch := c.MustFunction("batch")
	data, err := batch.Spec().Outputs.Pack(abi.BytesToken([]byte("hi")), abi.StringToken("there"))
	require.NoError(t, err)
	out, err = batch.DecodeOutput(data)
	require.NoError(t, err)
	require.IsType(t, Tuple{}, out)
	assert.Len(t, out, len(batch.Spec().Outputs))
	assert.Equal(t, Tuple{[]byte("hi"), "there"}, out)
}

func TestFunctionDecodeOutputErrors(t *testing.T) {
	c := loadToken(t)

	_, err := c.MustFunction("reserves").DecodeOutput(word(1)[:31])
	assert.ErrorIs(t, err, abi.ErrInvalidData)

	// 2^112 does not fit uint112.
	big := new(uint256.Int).Lsh(uint256.NewInt(1), 112).Bytes32()
	_, err = c.MustFunction("reserves").DecodeOutput(concat(big[:], word(2), word(3)))
	assert.Error(t, err)
}

func TestFunctionDecodeOutputInto(t *testing.T) {
	reserves := loadToken(t).MustFunction("reserves")
	data := concat(word(7), word(8), word(9))

	var a, b, ts uint256.Int
	require.NoError(t, reserves.DecodeOutputInto(data, &a, &b, &ts))
	assert.Equal(t, uint64(7), a.Uint64())
	assert.Equal(t, uint64(8), b.Uint64())
	assert.Equal(t, uint64(9), ts.Uint64())

	assert.ErrorIs(t, reserves.DecodeOutputInto(data, &a), abi.ErrArgumentCount)

	var wrong string
	assert.ErrorIs(t, reserves.DecodeOutputInto(data, &a, &b, &wrong), abi.ErrTypeMismatch)
}

func TestFunctionDecodeInput(t *testing.T) {
	batch := loadToken(t).MustFunction("batch")
	hash := common.HexToHash("0xc0ffee")

	data, err := batch.EncodeInput([]string{addrA.Hex(), addrB.Hex()}, [2]uint16{1, 2}, -3, hash)
	require.NoError(t, err)

	args, err := batch.DecodeInput(data)
	require.NoError(t, err)
	assert.Equal(t, Tuple{
		[]common.Address{addrA, addrB},
		[2]uint256.Int{num(1), num(2)},
		neg(3),
		hash,
	}, args)

	_, err = loadToken(t).MustFunction("transfer").DecodeInput(data)
	assert.ErrorIs(t, err, abi.ErrInvalidData)
}

func TestFunctionCall(t *testing.T) {
	transfer := loadToken(t).MustFunction("transfer")

	data, dec, err := transfer.Call(addrA, 1)
	require.NoError(t, err)
	want, err := transfer.EncodeInput(addrA, 1)
	require.NoError(t, err)
	assert.Equal(t, want, data)

	out, err := dec.Decode(word(0))
	require.NoError(t, err)
	assert.Equal(t, false, out)

	_, _, err = transfer.Call(addrA)
	assert.ErrorIs(t, err, abi.ErrArgumentCount)
}

func TestFunctionPassesMutability(t *testing.T) {
	c := loadToken(t)
	assert.Equal(t, abi.View, c.MustFunction("reserves").Spec().StateMutability)
	assert.True(t, c.MustFunction("reserves").Spec().IsConstant())
	assert.Equal(t, abi.Payable, c.MustFunction("batch").Spec().StateMutability)
}

func TestNewFunctionRejectsTuples(t *testing.T) {
	tuple := abi.TupleType(abi.UintType(8), abi.BoolType())
	tests := []struct {
		inputs, outputs abi.Params
	}{
		{inputs: abi.Params{{Name: "p", Type: tuple}}},
		{outputs: abi.Params{{Name: "p", Type: abi.SliceType(tuple)}}},
		{inputs: abi.Params{{Name: "ok", Type: abi.BoolType()}, {Name: "p", Type: abi.ArrayType(tuple, 2)}}},
	}
	for i, tt := range tests {
		spec := abi.NewFunction("f", "f", "view", false, false, tt.inputs, tt.outputs)
		fn, err := NewFunction(&spec)
		assert.ErrorIs(t, err, abi.ErrUnsupportedType, "test %d", i)
		assert.Nil(t, fn, "test %d", i)
	}
}

func TestCheckTokenCountPanics(t *testing.T) {
	params := abi.Params{{Name: "a", Type: abi.BoolType()}}
	assert.Panics(t, func() { checkTokenCount(params, nil) })
	assert.NotPanics(t, func() { checkTokenCount(params, []abi.Token{abi.BoolToken(true)}) })
}

func TestConstructorEncodeInput(t *testing.T) {
	ctor := loadToken(t).Constructor()
	code := []byte{0x60, 0x80, 0x60, 0x40}

	data, err := ctor.EncodeInput(code, addrA, 5)
	require.NoError(t, err)
	assert.Equal(t, concat(code, common.LeftPadBytes(addrA.Bytes(), 32), word(5)), data)

	_, err = ctor.EncodeInput(code, addrA)
	assert.ErrorIs(t, err, abi.ErrArgumentCount)
}

func TestParamNames(t *testing.T) {
	params := abi.Params{
		{Name: "from", Indexed: true},
		{Indexed: true},
		{},
		{Name: "value"},
	}
	assert.Equal(t, []string{"from", "topic1", "param2", "value"}, paramNames(params))
}
