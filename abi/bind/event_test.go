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
	"reflect"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-ethabi/abi"
	"github.com/sunyihoo/go-ethabi/common"
	"github.com/sunyihoo/go-ethabi/crypto"
)

var transferTopic = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")

func addressTopic(a common.Address) common.Hash {
	return common.BytesToHash(a.Bytes())
}

func TestEventLogType(t *testing.T) {
	c := loadToken(t)

	typ := c.MustEvent("Transfer").LogType()
	require.Equal(t, 3, typ.NumField())
	assert.Equal(t, "From", typ.Field(0).Name)
	assert.Equal(t, reflect.TypeOf(common.Address{}), typ.Field(0).Type)
	assert.Equal(t, "value", typ.Field(2).Tag.Get("abi"))
	assert.Equal(t, reflect.TypeOf(uint256.Int{}), typ.Field(2).Type)

	// Indexed strings only keep their hash.
	typ = c.MustEvent("Wide").LogType()
	require.Equal(t, 5, typ.NumField())
	assert.Equal(t, reflect.TypeOf(common.Hash{}), typ.Field(1).Type)
	assert.Equal(t, "Param4", typ.Field(4).Name)
}

func TestEventFilter(t *testing.T) {
	transfer := loadToken(t).MustEvent("Transfer")

	filter, err := transfer.Filter(This(addrA.Hex()), Any())
	require.NoError(t, err)
	require.False(t, filter[0].IsAny())
	assert.Equal(t, []abi.Token{abi.AddressToken(addrA)}, filter[0].Values())
	assert.True(t, filter[1].IsAny())
	assert.True(t, filter[2].IsAny())

	topics, err := transfer.Topics(filter)
	require.NoError(t, err)
	assert.Equal(t, [][]common.Hash{{transferTopic}, {addressTopic(addrA)}, nil}, topics)

	filter, err = transfer.Filter(Any(), OneOf(addrA, addrB))
	require.NoError(t, err)
	topics, err = transfer.Topics(filter)
	require.NoError(t, err)
	assert.Equal(t, [][]common.Hash{{transferTopic}, nil, {addressTopic(addrA), addressTopic(addrB)}}, topics)
}

func TestEventFilterErrors(t *testing.T) {
	transfer := loadToken(t).MustEvent("Transfer")

	_, err := transfer.Filter(Any())
	assert.ErrorIs(t, err, abi.ErrArgumentCount)
	_, err = transfer.Filter(Any(), Any(), Any())
	assert.ErrorIs(t, err, abi.ErrArgumentCount)
	_, err = transfer.Filter(This("nope"), Any())
	assert.ErrorIs(t, err, abi.ErrTypeMismatch)

	_, err = transfer.Filter(OneOf(), Any())
	assert.ErrorIs(t, err, abi.ErrArgumentCount)
	_, err = transfer.Filter(Any(), OneOf())
	assert.ErrorContains(t, err, "topic 1")

	// Slots past the third are never inspected.
	wide := loadToken(t).MustEvent("Wide")
	_, err = wide.Filter(Any(), Any(), Any(), OneOf())
	assert.NoError(t, err)
}

func TestEventFilterTruncation(t *testing.T) {
	wide := loadToken(t).MustEvent("Wide")

	filter, err := wide.Filter(This(7), This("hello"), This(true), This(addrB))
	require.NoError(t, err)
	assert.Len(t, filter, abi.MaxIndexedTopics)

	// The fourth indexed input never influences the filter, not even with an
	// unconvertible value.
	other, err := wide.Filter(This(7), This("hello"), This(true), This(struct{}{}))
	require.NoError(t, err)
	assert.Equal(t, filter, other)

	topics, err := wide.Topics(filter)
	require.NoError(t, err)
	assert.Equal(t, [][]common.Hash{
		{common.BytesToHash([]byte{7})},
		{crypto.Keccak256Hash([]byte("hello"))},
		{common.BytesToHash([]byte{1})},
	}, topics)
}

func TestEventWildcardFilter(t *testing.T) {
	c := loadToken(t)

	transfer := c.MustEvent("Transfer")
	filter, err := transfer.Filter(Any(), Any())
	require.NoError(t, err)
	assert.Equal(t, filter, transfer.WildcardFilter())

	wide := c.MustEvent("Wide")
	filter, err = wide.Filter(Any(), Any(), Any(), Any())
	require.NoError(t, err)
	assert.Equal(t, filter, wide.WildcardFilter())

	topics, err := wide.Topics(wide.WildcardFilter())
	require.NoError(t, err)
	assert.Equal(t, [][]common.Hash{nil, nil, nil}, topics)
}

func TestEventParseLog(t *testing.T) {
	transfer := loadToken(t).MustEvent("Transfer")

	log, err := transfer.ParseLog(abi.RawLog{
		Topics: []common.Hash{transferTopic, addressTopic(addrA), addressTopic(addrB)},
		Data:   word(1000),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"from", "to", "value"}, log.Names)
	assert.Equal(t, []any{addrA, addrB, num(1000)}, log.Values)

	value, ok := log.Value("value")
	require.True(t, ok)
	assert.Equal(t, num(1000), value)
	_, ok = log.Value("missing")
	assert.False(t, ok)

	rec := reflect.ValueOf(log.Record()).Elem()
	assert.Equal(t, transfer.LogType(), rec.Type())
	assert.Equal(t, addrA, rec.FieldByName("From").Interface())
	assert.Equal(t, addrB, rec.FieldByName("To").Interface())
	assert.Equal(t, num(1000), rec.FieldByName("Value").Interface())
}

func TestEventParseLogHashedTopics(t *testing.T) {
	wide := loadToken(t).MustEvent("Wide")
	hash := crypto.Keccak256Hash([]byte("hello"))

	log, err := wide.ParseLog(abi.RawLog{
		Topics: []common.Hash{common.BytesToHash([]byte{7}), hash, common.BytesToHash([]byte{1}), addressTopic(addrB)},
		Data:   word(42),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "param4"}, log.Names)
	assert.Equal(t, []any{num(7), hash, true, addrB, num(42)}, log.Values)
}

func TestEventParseLogErrors(t *testing.T) {
	transfer := loadToken(t).MustEvent("Transfer")

	tests := []abi.RawLog{
		{},
		{Topics: []common.Hash{{0x01}, addressTopic(addrA), addressTopic(addrB)}, Data: word(1)},
		{Topics: []common.Hash{transferTopic, addressTopic(addrA)}, Data: word(1)},
	}
	for i, raw := range tests {
		_, err := transfer.ParseLog(raw)
		assert.ErrorIs(t, err, abi.ErrInvalidLog, "test %d", i)
	}
	_, err := transfer.ParseLog(abi.RawLog{
		Topics: []common.Hash{transferTopic, addressTopic(addrA), addressTopic(addrB)},
		Data:   word(1)[:16],
	})
	assert.ErrorIs(t, err, abi.ErrInvalidData)
}

func TestLogInto(t *testing.T) {
	transfer := loadToken(t).MustEvent("Transfer")
	log, err := transfer.ParseLog(abi.RawLog{
		Topics: []common.Hash{transferTopic, addressTopic(addrA), addressTopic(addrB)},
		Data:   word(5),
	})
	require.NoError(t, err)

	var out struct {
		From  common.Address
		Value uint256.Int
		Extra string
	}
	require.NoError(t, log.Into(&out))
	assert.Equal(t, addrA, out.From)
	assert.Equal(t, num(5), out.Value)
	assert.Empty(t, out.Extra)

	var wrong struct{ From string }
	assert.ErrorIs(t, log.Into(&wrong), abi.ErrTypeMismatch)
	assert.ErrorIs(t, log.Into(out), abi.ErrTypeMismatch)
}

func TestNewEventRejectsTuples(t *testing.T) {
	tuple := abi.TupleType(abi.BoolType())
	for _, indexed := range []bool{false, true} {
		spec := abi.NewEvent("E", "E", false, abi.Params{{Name: "p", Type: tuple, Indexed: indexed}})
		ev, err := NewEvent(&spec)
		assert.ErrorIs(t, err, abi.ErrUnsupportedType)
		assert.Nil(t, ev)
	}
}
