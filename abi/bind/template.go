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
	_ "embed"
)

// tmplData is the data structure required to fill the binding template.
type tmplData struct {
	Package     string        // Name of the package to place the generated file in
	InputABI    string        // Quoted JSON ABI the binding is generated from
	Constructor *tmplMethod   // Contract constructor, nil if none is declared
	Functions   []*tmplMethod // Contract functions in declaration order
	Events      []*tmplEvent  // Contract events in declaration order
}

// tmplMethod contains the data needed to generate the accessors of a function
// or the constructor.
type tmplMethod struct {
	Name       string       // Go identifier prefix of the generated accessors
	Original   string       // Name the binding is looked up by
	Sig        string       // Canonical signature
	TypeParams string       // Type parameter list, empty if none
	Params     []*tmplParam // Inputs
	Outputs    []*tmplParam // Outputs
}

// tmplParam is a function input or output as rendered in generated code.
type tmplParam struct {
	Name string // Local Go identifier
	Type string // Go type, possibly a type parameter
	Arg  string // Expression passed to the runtime binding
}

// tmplEvent contains the data needed to generate the accessors of an event.
type tmplEvent struct {
	Name     string       // Go identifier prefix of the generated accessors
	Original string       // Name the binding is looked up by
	Sig      string       // Canonical signature
	Fields   []*tmplField // Log record fields
	Topics   []string     // Filter parameter names, one per indexed input
}

// tmplField is a field of a generated log record.
type tmplField struct {
	Name string // Exported field name
	Type string // Go type
	Tag  string // Original input name
}

// tmplSource is the Go source template generated bindings are based on.
//
//go:embed source.go.tpl
var tmplSource string
