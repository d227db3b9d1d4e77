// Copyright 2020 The go-ethereum Authors
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

package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-ethabi/abi"
	"github.com/sunyihoo/go-ethabi/common"
)

func TestTokenizeScalars(t *testing.T) {
	addr := common.HexToAddress("0x1f9840a85d5af5bf1d1762f925bdaddc4201f984")
	tests := []struct {
		typ   string
		input string
		want  abi.Token
	}{
		{"address", "0x1f9840a85d5af5bf1d1762f925bdaddc4201f984", abi.AddressToken(addr)},
		{"address", "1f9840a85d5af5bf1d1762f925bdaddc4201f984", abi.AddressToken(addr)},
		{"bool", "true", abi.BoolToken(true)},
		{"bool", "false", abi.BoolToken(false)},
		{"string", " spaced, \"quoted\" ", abi.StringToken(" spaced, \"quoted\" ")},
		{"bytes", "0xdeadbeef", abi.BytesToken([]byte{0xde, 0xad, 0xbe, 0xef})},
		{"bytes", "", abi.BytesToken(nil)},
		{"bytes2", "cafe", abi.FixedBytesToken([]byte{0xca, 0xfe})},
	}
	for _, tt := range tests {
		tok, err := Tokenize(Strict{}, abi.MustNewType(tt.typ), tt.input)
		require.NoError(t, err, "%s %q", tt.typ, tt.input)
		assert.True(t, tok.Equal(tt.want), "%s %q: have %v", tt.typ, tt.input, tok)
	}
}

func TestTokenizeScalarErrors(t *testing.T) {
	tests := []struct {
		typ   string
		input string
		err   error
	}{
		{"address", "0x1234", abi.ErrLengthMismatch},
		{"address", "0xzz", abi.ErrMalformedLiteral},
		{"bool", "True", abi.ErrMalformedLiteral},
		{"bool", "1", abi.ErrMalformedLiteral},
		{"bytes", "0x123", abi.ErrMalformedLiteral},
		{"bytes2", "0xcafebabe", abi.ErrLengthMismatch},
	}
	for _, tt := range tests {
		_, err := Tokenize(Strict{}, abi.MustNewType(tt.typ), tt.input)
		assert.ErrorIs(t, err, tt.err, "%s %q", tt.typ, tt.input)
	}
}

func TestTokenizeArrays(t *testing.T) {
	tests := []struct {
		typ   string
		input string
		want  abi.Token
	}{
		{"uint256[]", "[1ether,0.1 ether]", abi.SliceToken(dec("1000000000000000000"), dec("100000000000000000"))},
		{"uint256[]", "[]", abi.SliceToken()},
		{"uint256[]", " [ 1 , 2 ] ", abi.SliceToken(abi.Uint64Token(1), abi.Uint64Token(2))},
		{"uint8[2]", "[1,2]", abi.ArrayToken(abi.Uint64Token(1), abi.Uint64Token(2))},
		{"uint8[][]", "[[1],[],[2,3]]", abi.SliceToken(
			abi.SliceToken(abi.Uint64Token(1)),
			abi.SliceToken(),
			abi.SliceToken(abi.Uint64Token(2), abi.Uint64Token(3)),
		)},
		{"string[]", `["a,b", "c]", plain, "say \"hi\"", ""]`, abi.SliceToken(
			abi.StringToken("a,b"),
			abi.StringToken("c]"),
			abi.StringToken("plain"),
			abi.StringToken(`say "hi"`),
			abi.StringToken(""),
		)},
		{"bool[2][]", "[[true,false],[false,true]]", abi.SliceToken(
			abi.ArrayToken(abi.BoolToken(true), abi.BoolToken(false)),
			abi.ArrayToken(abi.BoolToken(false), abi.BoolToken(true)),
		)},
	}
	for _, tt := range tests {
		tok, err := Tokenize(Lenient{}, abi.MustNewType(tt.typ), tt.input)
		require.NoError(t, err, "%s %q", tt.typ, tt.input)
		assert.True(t, tok.Equal(tt.want), "%s %q: have %v", tt.typ, tt.input, tok)
	}
}

func TestTokenizeArrayErrors(t *testing.T) {
	tests := []struct {
		typ   string
		input string
		err   error
	}{
		{"uint8[2]", "[1]", abi.ErrLengthMismatch},
		{"uint8[2]", "[1,2,3]", abi.ErrLengthMismatch},
		{"uint8[]", "1,2", abi.ErrMalformedLiteral},
		{"uint8[]", "[1,2", abi.ErrMalformedLiteral},
		{"uint8[]", "[1,,2]", abi.ErrMalformedLiteral},
		{"uint8[]", "[1]]", abi.ErrMalformedLiteral},
		{"uint8[][]", "[[1],[2]", abi.ErrMalformedLiteral},
		{"string[]", `["open]`, abi.ErrMalformedLiteral},
		{"string[]", `["a"b]`, abi.ErrMalformedLiteral},
		{"uint8[]", "[1,256]", abi.ErrOverflow},
	}
	for _, tt := range tests {
		_, err := Tokenize(Lenient{}, abi.MustNewType(tt.typ), tt.input)
		assert.ErrorIs(t, err, tt.err, "%s %q", tt.typ, tt.input)
	}
}

func TestTokenizeTuple(t *testing.T) {
	_, err := Tokenize(Lenient{}, abi.TupleType(abi.BoolType()), "[true]")
	assert.ErrorIs(t, err, abi.ErrUnsupportedType)

	_, err = Tokenize(Lenient{}, abi.SliceType(abi.TupleType(abi.BoolType())), "[[true]]")
	assert.ErrorIs(t, err, abi.ErrUnsupportedType)
}

func TestTokenizeAll(t *testing.T) {
	types := []abi.Type{abi.AddressType(), abi.UintType(256)}
	tokens, err := TokenizeAll(Lenient{}, types, []string{"0x00000000000000000000000000000000000000aa", "2 gwei"})
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.True(t, tokens[1].Equal(abi.Uint64Token(2000000000)))

	_, err = TokenizeAll(Lenient{}, types, []string{"0x00000000000000000000000000000000000000aa"})
	assert.ErrorIs(t, err, abi.ErrArgumentCount)
}
