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
	"fmt"
	"strings"

	"github.com/sunyihoo/go-ethabi/common"
	"github.com/sunyihoo/go-ethabi/crypto"
)

// Event is an event potentially triggered by the EVM's LOG mechanism. The Event
// holds type information (inputs) about the yielded output. Anonymous events
// don't get the signature canonical representation as the first LOG topic.
type Event struct {
	// Name is the event name used for internal representation. It's derived from
	// the raw name and a suffix will be added in the case of event overloading.
	Name string

	// RawName is the raw event name parsed from ABI.
	RawName   string
	Anonymous bool
	Inputs    Params
	str       string

	// Sig contains the string signature according to the ABI spec.
	// e.g.	 event foo(uint32 a, int b) = "foo(uint32,int256)"
	// Please note that "int" is substitute for its canonical representation "int256"
	Sig string

	// ID returns the canonical representation of the event's signature used by the
	// abi definition to identify event names and types.
	ID common.Hash
}

// NewEvent creates a new Event.
// It precomputes the id, signature and string representation of the event.
func NewEvent(name, rawName string, anonymous bool, inputs Params) Event {
	names := make([]string, len(inputs))
	for i, input := range inputs {
		names[i] = input.String()
	}
	str := fmt.Sprintf("event %v(%v)", rawName, strings.Join(names, ", "))
	if anonymous {
		str += " anonymous"
	}
	sig := inputs.signature(rawName)
	id := crypto.Keccak256Hash([]byte(sig))

	return Event{
		Name:      name,
		RawName:   rawName,
		Anonymous: anonymous,
		Inputs:    inputs,
		str:       str,
		Sig:       sig,
		ID:        id,
	}
}

// String returns the string representation of the event.
func (e Event) String() string {
	return e.str
}

// RawLog is the part of an emitted log that carries event values.
type RawLog struct {
	Topics []common.Hash
	Data   []byte
}

// LogParam is one decoded event input.
type LogParam struct {
	Name  string
	Value Token
}

// ParseLog decodes a log emitted by this event. Indexed inputs are read from
// the topics, all others from the data. Indexed inputs of dynamic types (and of
// arrays) only store the Keccak256 hash of their value and are returned as a
// 32 byte FixedBytes token holding that hash. The result follows the
// declaration order of the inputs.
func (e Event) ParseLog(log RawLog) ([]LogParam, error) {
	topics := log.Topics
	if !e.Anonymous {
		if len(topics) == 0 {
			return nil, fmt.Errorf("%w: missing signature topic for %s", ErrInvalidLog, e.Sig)
		}
		if topics[0] != e.ID {
			return nil, fmt.Errorf("%w: signature topic %x does not match %s", ErrInvalidLog, topics[0], e.Sig)
		}
		topics = topics[1:]
	}
	indexed := e.Inputs.Indexed()
	if len(indexed) != len(topics) {
		return nil, fmt.Errorf("%w: %s has %d indexed inputs, log has %d topics", ErrInvalidLog, e.Sig, len(indexed), len(topics))
	}
	data, err := e.Inputs.Unpack(log.Data)
	if err != nil {
		return nil, err
	}
	fromTopics, err := parseTopics(indexed, topics)
	if err != nil {
		return nil, err
	}
	params := make([]LogParam, 0, len(e.Inputs))
	for _, input := range e.Inputs {
		var value Token
		if input.Indexed {
			value, fromTopics = fromTopics[0], fromTopics[1:]
		} else {
			value, data = data[0], data[1:]
		}
		params = append(params, LogParam{Name: input.Name, Value: value})
	}
	return params, nil
}

// parseTopics converts the indexed topic fields into tokens.
//
// Note, dynamic types cannot be reconstructed since they get mapped to Keccak256
// hashes as the topic value!
func parseTopics(fields Params, topics []common.Hash) ([]Token, error) {
	tokens := make([]Token, len(fields))
	for i, arg := range fields {
		switch arg.Type.T {
		case TupleTy:
			return nil, fmt.Errorf("%w: tuple type in topic reconstruction", ErrUnsupportedType)
		case StringTy, BytesTy, SliceTy, ArrayTy:
			// Array types (including strings and bytes) have their keccak256 hashes stored in the topic- not a hash
			// whose bytes can be decoded to the actual value- so the best we can do is retrieve that hash
			tokens[i] = FixedBytesToken(topics[i][:])
		default:
			tok, err := readToken(0, arg.Type, topics[i][:])
			if err != nil {
				return nil, err
			}
			tokens[i] = tok
		}
	}
	return tokens, nil
}

// IsHashedTopic reports whether an indexed input of type t is stored in its
// topic as the Keccak256 hash of its value.
func IsHashedTopic(t Type) bool {
	switch t.T {
	case StringTy, BytesTy, SliceTy, ArrayTy, TupleTy:
		return true
	}
	return false
}
