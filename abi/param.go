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
	"encoding/json"
	"fmt"
	"strings"
)

// Param holds the name of a parameter and the corresponding type. Indexed is
// only meaningful for event inputs.
type Param struct {
	Name    string
	Type    Type
	Indexed bool
}

// Params is an ordered parameter list.
type Params []Param

// ParamMarshaling is the JSON form of a parameter.
type ParamMarshaling struct {
	Name         string
	Type         string
	InternalType string
	Components   []ParamMarshaling
	Indexed      bool
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (param *Param) UnmarshalJSON(data []byte) error {
	var arg ParamMarshaling
	err := json.Unmarshal(data, &arg)
	if err != nil {
		return fmt.Errorf("abi: param json err: %v", err)
	}

	param.Type, err = NewType(arg.Type, arg.InternalType, arg.Components)
	if err != nil {
		return err
	}
	param.Name = arg.Name
	param.Indexed = arg.Indexed

	return nil
}

// String renders the parameter as "type [indexed] name".
func (param Param) String() string {
	var b strings.Builder
	b.WriteString(param.Type.String())
	if param.Indexed {
		b.WriteString(" indexed")
	}
	if param.Name != "" {
		b.WriteString(" ")
		b.WriteString(param.Name)
	}
	return b.String()
}

// NonIndexed returns the parameters with indexed parameters filtered out.
func (params Params) NonIndexed() Params {
	var ret []Param
	for _, arg := range params {
		if !arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Indexed returns only the indexed parameters.
func (params Params) Indexed() Params {
	var ret []Param
	for _, arg := range params {
		if arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Types returns the parameter types in order.
func (params Params) Types() []Type {
	types := make([]Type, len(params))
	for i, p := range params {
		types[i] = p.Type
	}
	return types
}

// HasTuple reports whether any parameter is, or contains, a tuple.
func (params Params) HasTuple() bool {
	for _, p := range params {
		if p.Type.HasTuple() {
			return true
		}
	}
	return false
}

// signature renders the canonical "name(type,...)" form.
func (params Params) signature(name string) string {
	types := make([]string, len(params))
	for i, p := range params {
		types[i] = p.Type.String()
	}
	return fmt.Sprintf("%v(%v)", name, strings.Join(types, ","))
}

// Unpack performs the operation hexdata -> tokens for the non-indexed
// parameters.
func (params Params) Unpack(data []byte) ([]Token, error) {
	if len(data) == 0 {
		if len(params.NonIndexed()) != 0 {
			return nil, fmt.Errorf("%w: attempting to unmarshal an empty string while arguments are expected", ErrInvalidData)
		}
		return make([]Token, 0), nil
	}
	return UnpackTokens(params.NonIndexed().Types(), data)
}

// Pack performs the operation tokens -> hexdata.
func (params Params) Pack(tokens ...Token) ([]byte, error) {
	return PackTokens(params.Types(), tokens)
}
