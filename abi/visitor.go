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

import "fmt"

// TypeVisitor is implemented by every operation that walks the type algebra.
// Adding a variant to Type adds a method here, so each implementation fails
// to compile until it handles the new variant.
type TypeVisitor[R any] interface {
	VisitAddress() (R, error)
	VisitBytes() (R, error)
	VisitFixedBytes(size int) (R, error)
	VisitInt(bits int) (R, error)
	VisitUint(bits int) (R, error)
	VisitBool() (R, error)
	VisitString() (R, error)
	VisitSlice(elem Type) (R, error)
	VisitArray(elem Type, size int) (R, error)
	VisitTuple(elems []Type) (R, error)
}

// Visit dispatches t to the matching method of v.
func Visit[R any](t Type, v TypeVisitor[R]) (R, error) {
	switch t.T {
	case AddressTy:
		return v.VisitAddress()
	case BytesTy:
		return v.VisitBytes()
	case FixedBytesTy:
		return v.VisitFixedBytes(t.Size)
	case IntTy:
		return v.VisitInt(t.Size)
	case UintTy:
		return v.VisitUint(t.Size)
	case BoolTy:
		return v.VisitBool()
	case StringTy:
		return v.VisitString()
	case SliceTy:
		return v.VisitSlice(*t.Elem)
	case ArrayTy:
		return v.VisitArray(*t.Elem, t.Size)
	case TupleTy:
		elems := make([]Type, len(t.TupleElems))
		for i, elem := range t.TupleElems {
			elems[i] = *elem
		}
		return v.VisitTuple(elems)
	}
	var zero R
	return zero, fmt.Errorf("%w: %d", errInvalidTypeTag, t.T)
}

// RejectTuples is embedded by visitors over the tuple-free subset of the type
// algebra.
type RejectTuples[R any] struct{}

// VisitTuple implements TypeVisitor.
func (RejectTuples[R]) VisitTuple(elems []Type) (R, error) {
	var zero R
	return zero, fmt.Errorf("%w: tuple with %d components", ErrUnsupportedType, len(elems))
}
