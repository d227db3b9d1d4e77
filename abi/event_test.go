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

package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-ethabi/common"
	"github.com/sunyihoo/go-ethabi/crypto"
)

var transferTopic = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")

func numberTopic(tok Token) common.Hash {
	return common.Hash(tok.Number.Bytes32())
}

func transferEvent() Event {
	return NewEvent("Transfer", "Transfer", false, Params{
		{Name: "from", Type: AddressType(), Indexed: true},
		{Name: "to", Type: AddressType(), Indexed: true},
		{Name: "value", Type: UintType(256)},
	})
}

func TestEventID(t *testing.T) {
	ev := transferEvent()
	assert.Equal(t, transferTopic, ev.ID)
	assert.Equal(t, "Transfer(address,address,uint256)", ev.Sig)
}

func TestParseLog(t *testing.T) {
	ev := transferEvent()
	log := RawLog{
		Topics: []common.Hash{transferTopic, common.BytesToHash(addrA[:]), common.BytesToHash(addrB[:])},
		Data:   word("0de0b6b3a7640000"),
	}
	params, err := ev.ParseLog(log)
	require.NoError(t, err)
	require.Len(t, params, 3)
	assert.Equal(t, "from", params[0].Name)
	assert.True(t, params[0].Value.Equal(AddressToken(addrA)))
	assert.Equal(t, "to", params[1].Name)
	assert.True(t, params[1].Value.Equal(AddressToken(addrB)))
	assert.Equal(t, "value", params[2].Name)
	assert.Equal(t, "1000000000000000000", params[2].Value.String())
}

func TestParseLogInterleaved(t *testing.T) {
	ev := NewEvent("Memo", "Memo", false, Params{
		{Name: "note", Type: StringType()},
		{Name: "text", Type: StringType(), Indexed: true},
		{Name: "flag", Type: BoolType()},
		{Name: "id", Type: IntType(64), Indexed: true},
	})
	textHash := crypto.Keccak256Hash([]byte("hello"))
	data, err := PackTokens([]Type{StringType(), BoolType()}, []Token{StringToken("hi"), BoolToken(true)})
	require.NoError(t, err)

	params, err := ev.ParseLog(RawLog{
		Topics: []common.Hash{ev.ID, textHash, numberTopic(Int64Token(-7))},
		Data:   data,
	})
	require.NoError(t, err)
	want := []LogParam{
		{Name: "note", Value: StringToken("hi")},
		{Name: "text", Value: FixedBytesToken(textHash[:])},
		{Name: "flag", Value: BoolToken(true)},
		{Name: "id", Value: Int64Token(-7)},
	}
	require.Len(t, params, len(want))
	for i := range want {
		assert.Equal(t, want[i].Name, params[i].Name)
		assert.True(t, want[i].Value.Equal(params[i].Value), "param %d: %v", i, params[i].Value)
	}
}

func TestParseLogAnonymous(t *testing.T) {
	ev := NewEvent("Ping", "Ping", true, Params{
		{Name: "who", Type: AddressType(), Indexed: true},
	})
	params, err := ev.ParseLog(RawLog{Topics: []common.Hash{common.BytesToHash(addrB[:])}})
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.True(t, params[0].Value.Equal(AddressToken(addrB)))
}

func TestParseLogErrors(t *testing.T) {
	ev := transferEvent()
	tests := []struct {
		name string
		log  RawLog
		err  error
	}{
		{"no topics", RawLog{Data: word("01")}, ErrInvalidLog},
		{"wrong signature", RawLog{Topics: []common.Hash{{1}, {}, {}}, Data: word("01")}, ErrInvalidLog},
		{"missing topic", RawLog{Topics: []common.Hash{transferTopic, {}}, Data: word("01")}, ErrInvalidLog},
		{"extra topic", RawLog{Topics: []common.Hash{transferTopic, {}, {}, {}}, Data: word("01")}, ErrInvalidLog},
		{"empty data", RawLog{Topics: []common.Hash{transferTopic, {}, {}}}, ErrInvalidData},
		{"dirty address topic", RawLog{Topics: []common.Hash{transferTopic, {1}, {}}, Data: word("01")}, ErrInvalidData},
	}
	for _, tt := range tests {
		_, err := ev.ParseLog(tt.log)
		assert.ErrorIs(t, err, tt.err, tt.name)
	}
}

func TestEventTopics(t *testing.T) {
	ev := transferEvent()

	query, err := ev.Topics(TopicFilter{})
	require.NoError(t, err)
	assert.Equal(t, [][]common.Hash{{transferTopic}, nil, nil}, query)

	query, err = ev.Topics(TopicFilter{
		AnyTopic[Token](),
		OneOfTopic(AddressToken(addrA), AddressToken(addrB)),
	})
	require.NoError(t, err)
	want := [][]common.Hash{
		{transferTopic},
		nil,
		{common.BytesToHash(addrA[:]), common.BytesToHash(addrB[:])},
	}
	assert.Equal(t, want, query)
}

func TestEventTopicsErrors(t *testing.T) {
	ev := transferEvent()

	_, err := ev.Topics(TopicFilter{OneOfTopic[Token]()})
	assert.ErrorIs(t, err, ErrArgumentCount)

	_, err = ev.Topics(TopicFilter{ThisTopic(Uint64Token(1))})
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestEventTopicsTruncated(t *testing.T) {
	inputs := make(Params, 4)
	for i := range inputs {
		inputs[i] = Param{Type: UintType(256), Indexed: true}
	}
	ev := NewEvent("Wide", "Wide", true, inputs)

	query, err := ev.Topics(TopicFilter{ThisTopic(Uint64Token(1)), {}, ThisTopic(Uint64Token(3))})
	require.NoError(t, err)
	assert.Equal(t, [][]common.Hash{{common.BytesToHash([]byte{1})}, nil, {common.BytesToHash([]byte{3})}}, query)
}

func TestTopicHash(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		tok  Token
		want common.Hash
	}{
		{"bool", BoolType(), BoolToken(true), common.BytesToHash([]byte{1})},
		{"negative int", IntType(8), Int64Token(-1), numberTopic(Int64Token(-1))},
		{"fixed bytes", FixedBytesType(2), FixedBytesToken([]byte{0xab, 0xcd}), common.BytesToHash(common.RightPadBytes([]byte{0xab, 0xcd}, 32))},
		{"string", StringType(), StringToken("hello"), crypto.Keccak256Hash([]byte("hello"))},
		{"bytes", BytesType(), BytesToken([]byte{1, 2, 3}), crypto.Keccak256Hash([]byte{1, 2, 3})},
		{"uint array", SliceType(UintType(256)), SliceToken(Uint64Token(1), Uint64Token(2)), crypto.Keccak256Hash(word("01"), word("02"))},
		{"string array", ArrayType(StringType(), 2), ArrayToken(StringToken("a"), StringToken("")), crypto.Keccak256Hash(text("a"))},
		{"bool tuple", TupleType(BoolType(), AddressType()), TupleToken(BoolToken(true), AddressToken(addrA)), crypto.Keccak256Hash(word("01"), word("aa"))},
	}
	for _, tt := range tests {
		have, err := TopicHash(tt.typ, tt.tok)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, have, tt.name)
	}
}

func TestMapTopic(t *testing.T) {
	toToken := func(n uint64) (Token, error) { return Uint64Token(n), nil }

	wild, err := MapTopic(AnyTopic[uint64](), toToken)
	require.NoError(t, err)
	assert.True(t, wild.IsAny())

	some, err := MapTopic(OneOfTopic[uint64](1, 2), toToken)
	require.NoError(t, err)
	assert.False(t, some.IsAny())
	require.Len(t, some.Values(), 2)
	assert.True(t, some.Values()[1].Equal(Uint64Token(2)))

	this := ThisTopic("x")
	assert.Equal(t, []string{"x"}, this.Values())
}
