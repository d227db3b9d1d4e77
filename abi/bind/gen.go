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
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sunyihoo/go-ethabi/abi"
	"github.com/sunyihoo/go-ethabi/log"
)

// reservedLocals are the identifiers generated code uses itself, which
// parameter names must not shadow.
var reservedLocals = []string{
	"abi", "bind", "common", "uint256", "sync",
	"contract", "code", "data", "err", "raw", "l", "out",
}

// Generate creates a Go binding of a contract. The generated package embeds
// abiJSON and exposes, per function, input encoders, output decoders and call
// helpers with flexible typed parameters, and per event a log record type,
// filter builders and a log parser. Contracts with tuple parameters are
// rejected with abi.ErrUnsupportedType.
func Generate(contract *abi.Contract, abiJSON string, pkg string) (string, error) {
	if _, err := NewContract(contract); err != nil {
		return "", err
	}
	compact := new(bytes.Buffer)
	if err := json.Compact(compact, []byte(abiJSON)); err != nil {
		return "", fmt.Errorf("invalid ABI JSON: %w", err)
	}
	data := &tmplData{
		Package:  pkg,
		InputABI: strconv.Quote(compact.String()),
	}
	if contract.Constructor != nil {
		data.Constructor = newTmplMethod("Constructor", "constructor", "constructor", contract.Constructor.Inputs, nil)
	}
	identifiers := mapset.NewThreadUnsafeSet[string]()
	for i := range contract.Functions {
		fn := &contract.Functions[i]
		name := goIdentifier(fn.Name, "M", identifiers)
		data.Functions = append(data.Functions, newTmplMethod(name, fn.Name, fn.Sig, fn.Inputs, fn.Outputs))
	}
	eventIdentifiers := mapset.NewThreadUnsafeSet[string]()
	for i := range contract.Events {
		ev := &contract.Events[i]
		name := goIdentifier(ev.Name, "E", eventIdentifiers)
		data.Events = append(data.Events, newTmplEvent(name, ev))
	}
	buffer := new(bytes.Buffer)
	tmpl := template.Must(template.New("").Parse(tmplSource))
	if err := tmpl.Execute(buffer, data); err != nil {
		return "", err
	}
	code, err := format.Source(buffer.Bytes())
	if err != nil {
		return "", fmt.Errorf("%v\n%s", err, buffer)
	}
	log.Debug("Generated contract binding", "package", pkg, "functions", len(data.Functions), "events", len(data.Events))
	return string(code), nil
}

// goIdentifier normalizes a function or event name into an exported Go
// identifier not yet in used, and records it.
func goIdentifier(name, prefix string, used mapset.Set[string]) string {
	normalized := capitalise(identifier(name))
	if normalized == "" || unicode.IsDigit(rune(normalized[0])) {
		normalized = prefix + normalized
	}
	normalized = abi.ResolveNameConflict(normalized, func(n string) bool { return used.Contains(n) })
	used.Add(normalized)
	return normalized
}

func newTmplMethod(name, original, sig string, inputs, outputs abi.Params) *tmplMethod {
	m := &tmplMethod{Name: name, Original: original, Sig: sig}

	var tparams typeParams
	for i, local := range localNames(paramNames(inputs), reservedLocals...) {
		param := &tmplParam{Name: local, Arg: local}
		switch t := inputs[i].Type; t.T {
		case abi.AddressTy:
			param.Type = tparams.declare(t)
			param.Arg = fmt.Sprintf("bind.AsAddress(%s)", local)
		case abi.IntTy:
			param.Type = tparams.declare(t)
			if t.Size <= 64 {
				param.Arg = fmt.Sprintf("bind.ToInt256(%s)", local)
			}
		case abi.UintTy, abi.SliceTy, abi.ArrayTy:
			param.Type = tparams.declare(t)
		default:
			param.Type = goType(t)
		}
		m.Params = append(m.Params, param)
	}
	if len(tparams) > 0 {
		m.TypeParams = "[" + strings.Join(tparams, ", ") + "]"
	}
	for i, local := range localNames(paramNames(outputs), reservedLocals...) {
		m.Outputs = append(m.Outputs, &tmplParam{Name: local, Type: goType(outputs[i].Type)})
	}
	return m
}

func newTmplEvent(name string, ev *abi.Event) *tmplEvent {
	e := &tmplEvent{Name: name, Original: ev.Name, Sig: ev.Sig}

	names := paramNames(ev.Inputs)
	var indexed []string
	for i, field := range fieldNames(names) {
		input := ev.Inputs[i]
		typ := goType(input.Type)
		if input.Indexed {
			indexed = append(indexed, names[i])
			if abi.IsHashedTopic(input.Type) {
				typ = "common.Hash"
			}
		}
		e.Fields = append(e.Fields, &tmplField{Name: field, Type: typ, Tag: names[i]})
	}
	e.Topics = localNames(indexed, reservedLocals...)
	return e
}

// typeParams collects the type parameter list of a generated function. Every
// address, integer and array level of an input gets its own parameter so
// callers can pass their own named or narrower types at any depth.
type typeParams []string

// declare adds a type parameter accepting values of type t and returns its
// name. Array element parameters are declared after their container.
func (tp *typeParams) declare(t abi.Type) string {
	i := len(*tp)
	name := fmt.Sprintf("T%d", i)
	*tp = append(*tp, "")
	constraint, err := abi.Visit[string](t, constrainer{tp: tp})
	if err != nil {
		// Tuples were rejected by NewContract.
		panic(err)
	}
	(*tp)[i] = name + " " + constraint
	return name
}

// constrainer renders the constraint of a type parameter standing for a
// value of the visited type.
type constrainer struct {
	abi.RejectTuples[string]
	tp *typeParams
}

func (constrainer) VisitAddress() (string, error) { return "~[20]byte", nil }
func (constrainer) VisitBytes() (string, error)   { return "~[]byte", nil }
func (constrainer) VisitBool() (string, error)    { return "~bool", nil }
func (constrainer) VisitString() (string, error)  { return "~string", nil }

func (constrainer) VisitFixedBytes(size int) (string, error) {
	return fmt.Sprintf("~[%d]byte", size), nil
}

func (c constrainer) VisitInt(bits int) (string, error)  { return c.number(bits), nil }
func (c constrainer) VisitUint(bits int) (string, error) { return c.number(bits), nil }

func (constrainer) number(bits int) string {
	if bits <= 64 {
		return "bind.Integer"
	}
	return "bind.Number"
}

func (c constrainer) VisitSlice(elem abi.Type) (string, error) {
	return "~[]" + c.tp.declare(elem), nil
}

func (c constrainer) VisitArray(elem abi.Type, size int) (string, error) {
	return fmt.Sprintf("~[%d]%s", size, c.tp.declare(elem)), nil
}

// goType renders the native Go type of t, the shape runtime bindings decode
// into.
func goType(t abi.Type) string {
	s, err := abi.Visit[string](t, goTyper{})
	if err != nil {
		// Tuples were rejected by NewContract.
		panic(err)
	}
	return s
}

type goTyper struct {
	abi.RejectTuples[string]
}

func (goTyper) VisitAddress() (string, error) { return "common.Address", nil }
func (goTyper) VisitBytes() (string, error)   { return "[]byte", nil }
func (goTyper) VisitBool() (string, error)    { return "bool", nil }
func (goTyper) VisitString() (string, error)  { return "string", nil }

func (goTyper) VisitFixedBytes(size int) (string, error) {
	if size == 32 {
		return "common.Hash", nil
	}
	return fmt.Sprintf("[%d]byte", size), nil
}

func (goTyper) VisitInt(int) (string, error)  { return "uint256.Int", nil }
func (goTyper) VisitUint(int) (string, error) { return "uint256.Int", nil }

func (g goTyper) VisitSlice(elem abi.Type) (string, error) {
	inner, err := abi.Visit[string](elem, g)
	return "[]" + inner, err
}

func (g goTyper) VisitArray(elem abi.Type, size int) (string, error) {
	inner, err := abi.Visit[string](elem, g)
	return fmt.Sprintf("[%d]%s", size, inner), err
}
