// Copyright 2015 The go-ethereum Authors
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
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sunyihoo/go-ethabi/common"
	"github.com/sunyihoo/go-ethabi/log"
)

// Contract holds the interface of a contract: its constructor, functions and
// events, in declaration order. Overloaded functions and events keep their raw
// name and get a unique Name through ResolveNameConflict.
type Contract struct {
	Constructor *Constructor
	Functions   []Function
	Events      []Event
}

// JSON returns a parsed contract interface and error if it failed.
func JSON(reader io.Reader) (*Contract, error) {
	dec := json.NewDecoder(reader)

	var contract Contract
	if err := dec.Decode(&contract); err != nil {
		return nil, err
	}
	return &contract, nil
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (c *Contract) UnmarshalJSON(data []byte) error {
	var fields []struct {
		Type    string
		Name    string
		Inputs  []Param
		Outputs []Param

		// Status indicator which can be: "pure", "view",
		// "nonpayable" or "payable".
		StateMutability string

		// Deprecated Status indicators, but removed in v0.6.0.
		Constant bool // True if function is either pure or view
		Payable  bool // True if function is payable

		// Event relevant indicator represents the event is
		// declared as anonymous.
		Anonymous bool
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var (
		functions = make(map[string]bool)
		events    = make(map[string]bool)
	)
	*c = Contract{}
	for _, field := range fields {
		switch field.Type {
		case "constructor":
			if c.Constructor != nil {
				return fmt.Errorf("abi: only a single constructor is allowed")
			}
			ctor := NewConstructor(field.StateMutability, field.Payable, field.Inputs)
			c.Constructor = &ctor
		case "function", "":
			// Before solidity 0.5.0 the type of functions could be omitted.
			name := ResolveNameConflict(field.Name, func(s string) bool { return functions[s] })
			functions[name] = true
			c.Functions = append(c.Functions, NewFunction(name, field.Name, field.StateMutability, field.Constant, field.Payable, field.Inputs, field.Outputs))
		case "event":
			name := ResolveNameConflict(field.Name, func(s string) bool { return events[s] })
			events[name] = true
			c.Events = append(c.Events, NewEvent(name, field.Name, field.Anonymous, field.Inputs))
		case "error", "fallback", "receive":
			log.Debug("Skipping ABI entry", "type", field.Type, "name", field.Name)
		default:
			return fmt.Errorf("abi: could not recognize type %v of field %v", field.Type, field.Name)
		}
	}
	return nil
}

// Function returns the function registered under the given (conflict
// resolved) name.
func (c *Contract) Function(name string) (*Function, bool) {
	for i := range c.Functions {
		if c.Functions[i].Name == name {
			return &c.Functions[i], true
		}
	}
	return nil, false
}

// FunctionsByName returns all overloads sharing the given raw name in
// declaration order.
func (c *Contract) FunctionsByName(rawName string) []*Function {
	var fns []*Function
	for i := range c.Functions {
		if c.Functions[i].RawName == rawName {
			fns = append(fns, &c.Functions[i])
		}
	}
	return fns
}

// FunctionByID looks up a function by its 4 byte selector.
func (c *Contract) FunctionByID(sigdata []byte) (*Function, error) {
	if len(sigdata) < 4 {
		return nil, fmt.Errorf("data too short (%d bytes) for abi function lookup", len(sigdata))
	}
	for i := range c.Functions {
		if bytes.Equal(c.Functions[i].ID, sigdata[:4]) {
			return &c.Functions[i], nil
		}
	}
	return nil, fmt.Errorf("no function with id: %#x", sigdata[:4])
}

// Event returns the event registered under the given (conflict resolved)
// name.
func (c *Contract) Event(name string) (*Event, bool) {
	for i := range c.Events {
		if c.Events[i].Name == name {
			return &c.Events[i], true
		}
	}
	return nil, false
}

// EventByID looks an event up by its topic hash.
func (c *Contract) EventByID(topic common.Hash) (*Event, error) {
	for i := range c.Events {
		if c.Events[i].ID == topic {
			return &c.Events[i], nil
		}
	}
	return nil, fmt.Errorf("no event with id: %#x", topic)
}
