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
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Type enumerator
const (
	IntTy byte = iota
	UintTy
	BoolTy
	StringTy
	SliceTy
	ArrayTy
	TupleTy
	AddressTy
	FixedBytesTy
	BytesTy
)

// Type is the reflection of the supported argument type.
//
// Size holds the bit width of Int and Uint, the byte length of FixedBytes and
// the element count of a fixed-size Array. Elem is set for Slice and Array.
type Type struct {
	Elem *Type
	Size int
	T    byte // Our own type checking

	stringKind string // holds the unparsed string for deriving signatures

	// Tuple relative fields
	TupleRawName  string  // Raw struct name defined in source code, may be empty.
	TupleElems    []*Type // Type information of all tuple fields
	TupleRawNames []string
}

var (
	// typeRegex parses the abi sub types
	typeRegex = regexp.MustCompile(`^([a-z]+)([0-9]*)$`)

	// sliceSizeRegex grabs the size of the outermost array dimension
	sliceSizeRegex = regexp.MustCompile(`^\[([0-9]*)\]$`)
)

// NewType creates a new reflection type of abi type given in t.
func NewType(t string, internalType string, components []ParamMarshaling) (typ Type, err error) {
	// check that array brackets are equal if they exist
	if strings.Count(t, "[") != strings.Count(t, "]") {
		return Type{}, fmt.Errorf("abi: invalid arg type %q", t)
	}
	typ.stringKind = t

	// if there are brackets, get ready to go into slice/array mode and
	// recursively create the type
	if strings.HasSuffix(t, "]") {
		// Note internalType can be empty here.
		subInternal := internalType
		if i := strings.LastIndex(internalType, "["); i != -1 {
			subInternal = subInternal[:i]
		}
		i := strings.LastIndex(t, "[")
		embeddedType, err := NewType(t[:i], subInternal, components)
		if err != nil {
			return Type{}, err
		}
		sliced := t[i:]
		intz := sliceSizeRegex.FindStringSubmatch(sliced)
		if intz == nil {
			return Type{}, fmt.Errorf("abi: invalid formatting of array type %q", t)
		}
		if intz[1] == "" {
			return SliceType(embeddedType), nil
		}
		size, err := strconv.Atoi(intz[1])
		if err != nil {
			return Type{}, fmt.Errorf("abi: error parsing variable size: %v", err)
		}
		if size == 0 {
			return Type{}, fmt.Errorf("abi: zero sized array type %q", t)
		}
		return ArrayType(embeddedType, size), nil
	}
	// parse the type and size of the abi-type.
	parsedType := typeRegex.FindStringSubmatch(t)
	if parsedType == nil {
		if strings.HasPrefix(internalType, "contract ") {
			return AddressType(), nil
		}
		return Type{}, fmt.Errorf("abi: invalid type '%v'", t)
	}
	// varSize is the size of the variable
	var varSize int
	if len(parsedType[2]) > 0 {
		varSize, err = strconv.Atoi(parsedType[2])
		if err != nil {
			return Type{}, fmt.Errorf("abi: error parsing variable size: %v", err)
		}
	}
	switch varType := parsedType[1]; varType {
	case "int", "uint":
		// The compiler always formats integers with an explicit width.
		if len(parsedType[2]) == 0 || varSize == 0 || varSize > 256 || varSize%8 != 0 {
			return Type{}, fmt.Errorf("abi: unsupported arg type: %s", t)
		}
		if varType == "int" {
			return IntType(varSize), nil
		}
		return UintType(varSize), nil
	case "bool", "address", "string":
		if len(parsedType[2]) > 0 {
			return Type{}, fmt.Errorf("abi: unsupported arg type: %s", t)
		}
		switch varType {
		case "bool":
			return BoolType(), nil
		case "address":
			return AddressType(), nil
		}
		return StringType(), nil
	case "bytes":
		if len(parsedType[2]) == 0 {
			return BytesType(), nil
		}
		if varSize == 0 || varSize > 32 {
			return Type{}, fmt.Errorf("abi: unsupported arg type: %s", t)
		}
		return FixedBytesType(varSize), nil
	case "tuple":
		if len(parsedType[2]) > 0 {
			return Type{}, fmt.Errorf("abi: unsupported arg type: %s", t)
		}
		elems := make([]Type, 0, len(components))
		names := make([]string, 0, len(components))
		for _, c := range components {
			cType, err := NewType(c.Type, c.InternalType, c.Components)
			if err != nil {
				return Type{}, err
			}
			elems = append(elems, cType)
			names = append(names, c.Name)
		}
		typ = TupleType(elems...)
		typ.TupleRawNames = names

		const structPrefix = "struct "
		// After solidity 0.5.10, a new field of abi "internalType"
		// is introduced. From that we can obtain the struct name
		// user defined in the source code.
		if internalType != "" && strings.HasPrefix(internalType, structPrefix) {
			// Foo.Bar type definition is not allowed in golang,
			// convert the format to FooBar
			typ.TupleRawName = strings.ReplaceAll(internalType[len(structPrefix):], ".", "")
		}
		return typ, nil
	case "function":
		return Type{}, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	default:
		if strings.HasPrefix(internalType, "contract ") {
			return AddressType(), nil
		}
		return Type{}, fmt.Errorf("abi: unsupported arg type: %s", t)
	}
}

// MustNewType is like NewType but panics on malformed input. It is meant for
// type strings known at compile time.
func MustNewType(t string) Type {
	typ, err := NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return typ
}

// AddressType returns the address type.
func AddressType() Type { return Type{T: AddressTy, Size: 20, stringKind: "address"} }

// BoolType returns the bool type.
func BoolType() Type { return Type{T: BoolTy, stringKind: "bool"} }

// StringType returns the string type.
func StringType() Type { return Type{T: StringTy, stringKind: "string"} }

// BytesType returns the dynamic bytes type.
func BytesType() Type { return Type{T: BytesTy, stringKind: "bytes"} }

// FixedBytesType returns the bytes<size> type.
func FixedBytesType(size int) Type {
	return Type{T: FixedBytesTy, Size: size, stringKind: "bytes" + strconv.Itoa(size)}
}

// UintType returns the uint<bits> type.
func UintType(bits int) Type {
	return Type{T: UintTy, Size: bits, stringKind: "uint" + strconv.Itoa(bits)}
}

// IntType returns the int<bits> type.
func IntType(bits int) Type {
	return Type{T: IntTy, Size: bits, stringKind: "int" + strconv.Itoa(bits)}
}

// SliceType returns the dynamically sized array type elem[].
func SliceType(elem Type) Type {
	return Type{T: SliceTy, Elem: &elem, stringKind: elem.stringKind + "[]"}
}

// ArrayType returns the fixed-size array type elem[size].
func ArrayType(elem Type, size int) Type {
	return Type{T: ArrayTy, Elem: &elem, Size: size, stringKind: fmt.Sprintf("%s[%d]", elem.stringKind, size)}
}

// TupleType returns the tuple type (elems...).
func TupleType(elems ...Type) Type {
	elems = append([]Type(nil), elems...)
	typ := Type{T: TupleTy, TupleElems: make([]*Type, len(elems))}
	kinds := make([]string, len(elems))
	for i := range elems {
		typ.TupleElems[i] = &elems[i]
		kinds[i] = elems[i].stringKind
	}
	typ.stringKind = "(" + strings.Join(kinds, ",") + ")"
	return typ
}

// String implements Stringer.
func (t Type) String() (out string) {
	return t.stringKind
}

// Equal reports whether t and o describe the same ABI type.
func (t Type) Equal(o Type) bool {
	return t.stringKind == o.stringKind
}

// IsDynamic reports whether values of the type are encoded out of place.
func (t Type) IsDynamic() bool {
	return isDynamicType(t)
}

// HasTuple reports whether the type is, or contains, a tuple.
func (t Type) HasTuple() bool {
	switch t.T {
	case TupleTy:
		return true
	case SliceTy, ArrayTy:
		return t.Elem.HasTuple()
	}
	return false
}

// requiresLengthPrefix returns whether the type requires any sort of length
// prefixing.
func (t Type) requiresLengthPrefix() bool {
	return t.T == StringTy || t.T == BytesTy || t.T == SliceTy
}

// isDynamicType returns true if the type is dynamic.
// The following types are called “dynamic”:
// * bytes
// * string
// * T[] for any T
// * T[k] for any dynamic T and any k >= 0
// * (T1,...,Tk) if Ti is dynamic for some 1 <= i <= k
func isDynamicType(t Type) bool {
	if t.T == TupleTy {
		for _, elem := range t.TupleElems {
			if isDynamicType(*elem) {
				return true
			}
		}
		return false
	}
	return t.T == StringTy || t.T == BytesTy || t.T == SliceTy || (t.T == ArrayTy && isDynamicType(*t.Elem))
}

// getTypeSize returns the size that this type needs to occupy in the head of
// an encoding. Static types are encoded in-place, dynamic types occupy a single
// 32 byte offset word pointing at their tail.
func getTypeSize(t Type) int {
	if t.T == ArrayTy && !isDynamicType(*t.Elem) {
		// Recursively calculate type size if it is a nested array
		if t.Elem.T == ArrayTy || t.Elem.T == TupleTy {
			return t.Size * getTypeSize(*t.Elem)
		}
		return t.Size * 32
	} else if t.T == TupleTy && !isDynamicType(t) {
		total := 0
		for _, elem := range t.TupleElems {
			total += getTypeSize(*elem)
		}
		return total
	}
	return 32
}

var errInvalidTypeTag = errors.New("abi: invalid type tag")
