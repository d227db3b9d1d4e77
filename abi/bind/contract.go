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
	"io"
	"strings"

	"github.com/sunyihoo/go-ethabi/abi"
	"github.com/sunyihoo/go-ethabi/common/lru"
	"github.com/sunyihoo/go-ethabi/log"
)

// Contract holds the bindings of every function, event and the constructor of
// a contract interface.
type Contract struct {
	spec        *abi.Contract
	constructor *Constructor
	functions   []*Function
	events      []*Event
}

// NewContract synthesizes the bindings of a contract. A tuple anywhere in the
// interface aborts the synthesis with abi.ErrUnsupportedType.
func NewContract(spec *abi.Contract) (*Contract, error) {
	c := &Contract{spec: spec}
	if spec.Constructor != nil {
		ctor, err := NewConstructor(spec.Constructor)
		if err != nil {
			return nil, err
		}
		c.constructor = ctor
	}
	for i := range spec.Functions {
		fn, err := NewFunction(&spec.Functions[i])
		if err != nil {
			return nil, err
		}
		c.functions = append(c.functions, fn)
	}
	for i := range spec.Events {
		ev, err := NewEvent(&spec.Events[i])
		if err != nil {
			return nil, err
		}
		c.events = append(c.events, ev)
	}
	log.Debug("Synthesized contract bindings", "functions", len(c.functions), "events", len(c.events), "constructor", c.constructor != nil)
	return c, nil
}

// Parse loads a JSON ABI and synthesizes its bindings.
func Parse(r io.Reader) (*Contract, error) {
	spec, err := abi.JSON(r)
	if err != nil {
		return nil, err
	}
	return NewContract(spec)
}

// MustParse is like Parse but panics on error. It simplifies initializing
// bindings from ABI constants.
func MustParse(abiJSON string) *Contract {
	c, err := Parse(strings.NewReader(abiJSON))
	if err != nil {
		panic(err)
	}
	return c
}

// Spec returns the contract description the bindings were synthesized from.
func (c *Contract) Spec() *abi.Contract {
	return c.spec
}

// Constructor returns the constructor binding, or nil if the contract does not
// declare one.
func (c *Contract) Constructor() *Constructor {
	return c.constructor
}

// Function returns the binding of the function with the given name, which is
// the raw name suffixed by a number for overloads.
func (c *Contract) Function(name string) (*Function, bool) {
	for _, fn := range c.functions {
		if fn.spec.Name == name {
			return fn, true
		}
	}
	return nil, false
}

// Functions returns the bindings of every overload of rawName in declaration
// order.
func (c *Contract) Functions(rawName string) []*Function {
	var fns []*Function
	for _, fn := range c.functions {
		if fn.spec.RawName == rawName {
			fns = append(fns, fn)
		}
	}
	return fns
}

// Event returns the binding of the event with the given name.
func (c *Contract) Event(name string) (*Event, bool) {
	for _, ev := range c.events {
		if ev.spec.Name == name {
			return ev, true
		}
	}
	return nil, false
}

// MustFunction is like Function but panics if the function does not exist.
func (c *Contract) MustFunction(name string) *Function {
	fn, ok := c.Function(name)
	if !ok {
		panic(fmt.Sprintf("bind: no function %q", name))
	}
	return fn
}

// MustEvent is like Event but panics if the event does not exist.
func (c *Contract) MustEvent(name string) *Event {
	ev, ok := c.Event(name)
	if !ok {
		panic(fmt.Sprintf("bind: no event %q", name))
	}
	return ev
}

// Registry caches synthesized bindings by the canonical description of their
// spec. It is safe for concurrent use.
type Registry struct {
	functions *lru.Cache[string, *Function]
	events    *lru.Cache[string, *Event]
}

// NewRegistry creates a registry holding up to size bindings of each kind.
func NewRegistry(size int) *Registry {
	return &Registry{
		functions: lru.NewCache[string, *Function](size),
		events:    lru.NewCache[string, *Event](size),
	}
}

// Function returns the binding of fn, synthesizing it on first use.
func (r *Registry) Function(fn *abi.Function) (*Function, error) {
	key := fn.String()
	if b, ok := r.functions.Get(key); ok {
		return b, nil
	}
	b, err := NewFunction(fn)
	if err != nil {
		return nil, err
	}
	r.functions.Add(key, b)
	return b, nil
}

// Event returns the binding of ev, synthesizing it on first use.
func (r *Registry) Event(ev *abi.Event) (*Event, error) {
	key := ev.String()
	if b, ok := r.events.Get(key); ok {
		return b, nil
	}
	b, err := NewEvent(ev)
	if err != nil {
		return nil, err
	}
	r.events.Add(key, b)
	return b, nil
}
