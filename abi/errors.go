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
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is returned when a tuple type is handed to an operation
	// that only works on the non-tuple subset of the type algebra.
	ErrUnsupportedType = errors.New("abi: unsupported type")

	// ErrLengthMismatch is returned when a fixed-size array or fixed bytes value
	// does not carry exactly the declared number of elements.
	ErrLengthMismatch = errors.New("abi: length mismatch")

	// ErrDecodeMismatch is returned when a token's kind disagrees with the type
	// it is being decoded as.
	ErrDecodeMismatch = errors.New("abi: decode mismatch")

	// ErrTypeMismatch is returned when a value cannot be used as the given type.
	ErrTypeMismatch = errors.New("abi: type mismatch")

	// ErrOverflow is returned when a number exceeds the range of its type.
	ErrOverflow = errors.New("abi: overflow")

	// ErrUnderflow is returned when a number is below the range of its type.
	ErrUnderflow = errors.New("abi: underflow")

	// ErrMalformedLiteral is returned for human input that cannot be parsed.
	ErrMalformedLiteral = errors.New("abi: malformed literal")

	// ErrArgumentCount is returned when the number of supplied values differs
	// from the number of declared parameters.
	ErrArgumentCount = errors.New("abi: argument count mismatch")

	// ErrInvalidData is returned when encoded bytes violate the ABI layout.
	ErrInvalidData = errors.New("abi: invalid data")

	// ErrInvalidLog is returned when a log does not match an event description.
	ErrInvalidLog = errors.New("abi: invalid log")
)

// typeErr returns a formatted type casting error.
func typeErr(expected, got interface{}) error {
	return fmt.Errorf("%w: cannot use %v as type %v as argument", ErrTypeMismatch, got, expected)
}

// lengthErr returns a formatted element count error.
func lengthErr(t Type, got int) error {
	return fmt.Errorf("%w: %v wants %d elements, got %d", ErrLengthMismatch, t, t.Size, got)
}
