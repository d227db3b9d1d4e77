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
	"strings"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sunyihoo/go-ethabi/abi"
)

func isKeyWord(arg string) bool {
	switch arg {
	case "break":
	case "case":
	case "chan":
	case "const":
	case "continue":
	case "default":
	case "defer":
	case "else":
	case "fallthrough":
	case "for":
	case "func":
	case "go":
	case "goto":
	case "if":
	case "import":
	case "interface":
	case "iota":
	case "map":
	case "make":
	case "new":
	case "package":
	case "range":
	case "return":
	case "select":
	case "struct":
	case "switch":
	case "type":
	case "var":
	default:
		return false
	}
	return true
}

// capitalise makes a camel-case string which starts with an upper case character.
var capitalise = abi.ToCamelCase

// decapitalise makes a camel-case string which starts with a lower case character.
func decapitalise(input string) string {
	if len(input) == 0 {
		return input
	}
	goForm := abi.ToCamelCase(input)
	return strings.ToLower(goForm[:1]) + goForm[1:]
}

// identifier strips the characters of a Solidity name that are not valid in a
// Go identifier.
func identifier(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return -1
	}, name)
}

// exportedName converts a parameter name into an exported Go identifier.
// Names that do not start with an upper case letter after conversion get the
// given prefix.
func exportedName(name, prefix string) string {
	field := capitalise(identifier(name))
	if field == "" || !unicode.IsUpper([]rune(field)[0]) {
		field = prefix + field
	}
	return field
}

// fieldNames converts parameter names into distinct exported struct field
// names.
func fieldNames(names []string) []string {
	used := mapset.NewThreadUnsafeSet[string]()
	fields := make([]string, len(names))
	for i, name := range names {
		field := abi.ResolveNameConflict(exportedName(name, "F"), func(n string) bool { return used.Contains(n) })
		used.Add(field)
		fields[i] = field
	}
	return fields
}

// localNames converts parameter names into distinct unexported Go identifiers
// that are not keywords and do not collide with reserved.
func localNames(names []string, reserved ...string) []string {
	used := mapset.NewThreadUnsafeSet(reserved...)
	locals := make([]string, len(names))
	for i, name := range names {
		local := decapitalise(identifier(name))
		if local == "" || !unicode.IsLetter([]rune(local)[0]) {
			local = fmt.Sprintf("arg%d", i)
		}
		if isKeyWord(local) {
			local += "_"
		}
		local = abi.ResolveNameConflict(local, func(n string) bool { return used.Contains(n) })
		used.Add(local)
		locals[i] = local
	}
	return locals
}
