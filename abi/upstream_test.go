// Copyright 2019 The go-ethereum Authors
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
	"math/big"
	"testing"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

// TestPackMatchesUpstream cross checks the byte layout against the upstream
// go-ethereum implementation.
func TestPackMatchesUpstream(t *testing.T) {
	var (
		addr    = gethcommon.HexToAddress("0x1f9840a85d5af5bf1d1762f925bdaddc4201f984")
		word32  = [32]byte{1, 2, 3, 31: 0xff}
		huge, _ = new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
	)
	tests := []struct {
		typ      string
		upstream interface{}
		token    Token
	}{
		{"uint256", big.NewInt(1000), Uint64Token(1000)},
		{"uint256", huge, UintToken(new(uint256.Int).SetAllOne())},
		{"int256", big.NewInt(-1000), Int64Token(-1000)},
		{"int8", int8(-3), Int64Token(-3)},
		{"uint64", uint64(7), Uint64Token(7)},
		{"address", addr, AddressToken(addrB)},
		{"bool", true, BoolToken(true)},
		{"string", "hello, world", StringToken("hello, world")},
		{"bytes", []byte("a longer byte string spilling over one word"), BytesToken([]byte("a longer byte string spilling over one word"))},
		{"bytes32", word32, FixedBytesToken(word32[:])},
		{"uint256[]", []*big.Int{big.NewInt(1), big.NewInt(2)}, SliceToken(Uint64Token(1), Uint64Token(2))},
		{"string[]", []string{"a", "bc"}, SliceToken(StringToken("a"), StringToken("bc"))},
		{"uint8[2]", [2]uint8{9, 10}, ArrayToken(Uint64Token(9), Uint64Token(10))},
		{"string[2]", [2]string{"x", "y"}, ArrayToken(StringToken("x"), StringToken("y"))},
		{"uint16[][]", [][]uint16{{1}, {2, 3}}, SliceToken(SliceToken(Uint64Token(1)), SliceToken(Uint64Token(2), Uint64Token(3)))},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			gethType, err := gethabi.NewType(tt.typ, "", nil)
			require.NoError(t, err)
			args := gethabi.Arguments{{Type: gethType}, {Type: gethType}}
			want, err := args.Pack(tt.upstream, tt.upstream)
			require.NoError(t, err)

			typ := MustNewType(tt.typ)
			have, err := PackTokens([]Type{typ, typ}, []Token{tt.token, tt.token})
			require.NoError(t, err)
			require.Equal(t, gethcommon.Bytes2Hex(want), gethcommon.Bytes2Hex(have))

			tokens, err := UnpackTokens([]Type{typ, typ}, want)
			require.NoError(t, err)
			require.True(t, Tokens(tokens).Equal([]Token{tt.token, tt.token}), "unpacked %v", tokens)
		})
	}
}
