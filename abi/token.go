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
	"bytes"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/go-ethabi/common"
	"github.com/sunyihoo/go-ethabi/common/hexutil"
)

// Token is a single ABI value. The tag T mirrors the tag of the Type the value
// belongs to and selects which payload field is meaningful:
//
//	AddressTy            Address
//	BoolTy               Bool
//	StringTy             Str
//	BytesTy, FixedBytesTy Bytes
//	UintTy, IntTy        Number (IntTy as 256 bit two's complement)
//	SliceTy, ArrayTy     Elems
//	TupleTy              Elems
type Token struct {
	T       byte
	Address common.Address
	Bool    bool
	Str     string
	Bytes   []byte
	Number  uint256.Int
	Elems   []Token
}

// AddressToken wraps an address.
func AddressToken(a common.Address) Token { return Token{T: AddressTy, Address: a} }

// BoolToken wraps a bool.
func BoolToken(b bool) Token { return Token{T: BoolTy, Bool: b} }

// StringToken wraps a string.
func StringToken(s string) Token { return Token{T: StringTy, Str: s} }

// BytesToken wraps a copy of b as dynamic bytes.
func BytesToken(b []byte) Token { return Token{T: BytesTy, Bytes: append([]byte{}, b...)} }

// FixedBytesToken wraps a copy of b as fixed bytes. The length of b is the
// length of the value.
func FixedBytesToken(b []byte) Token {
	return Token{T: FixedBytesTy, Bytes: append([]byte{}, b...)}
}

// UintToken wraps an unsigned number.
func UintToken(n *uint256.Int) Token { return Token{T: UintTy, Number: *n} }

// IntToken wraps a signed number given as its two's complement bits.
func IntToken(n *uint256.Int) Token { return Token{T: IntTy, Number: *n} }

// Uint64Token wraps an unsigned machine integer.
func Uint64Token(n uint64) Token { return UintToken(uint256.NewInt(n)) }

// Int64Token wraps a signed machine integer.
func Int64Token(n int64) Token {
	v := uint256.NewInt(uint64(n))
	if n < 0 {
		v.Neg(uint256.NewInt(uint64(-n)))
	}
	return IntToken(v)
}

// SliceToken wraps the elements of a dynamically sized array.
func SliceToken(elems ...Token) Token { return Token{T: SliceTy, Elems: nonNil(elems)} }

// ArrayToken wraps the elements of a fixed-size array.
func ArrayToken(elems ...Token) Token { return Token{T: ArrayTy, Elems: nonNil(elems)} }

// TupleToken wraps the components of a tuple.
func TupleToken(elems ...Token) Token { return Token{T: TupleTy, Elems: nonNil(elems)} }

func nonNil(elems []Token) []Token {
	if elems == nil {
		return []Token{}
	}
	return elems
}

// Kind returns a human readable name of the token's tag.
func (t Token) Kind() string {
	return kindName(t.T)
}

func kindName(tag byte) string {
	switch tag {
	case AddressTy:
		return "address"
	case BoolTy:
		return "bool"
	case StringTy:
		return "string"
	case BytesTy:
		return "bytes"
	case FixedBytesTy:
		return "fixed bytes"
	case UintTy:
		return "uint"
	case IntTy:
		return "int"
	case SliceTy:
		return "array"
	case ArrayTy:
		return "fixed array"
	case TupleTy:
		return "tuple"
	}
	return fmt.Sprintf("unknown(%d)", tag)
}

// TypeCheck verifies that the token structurally matches typ: tags agree at
// every level, fixed sizes carry exactly the declared number of elements and
// numbers fit the declared width.
func (t Token) TypeCheck(typ Type) error {
	if t.T != typ.T {
		return typeErr(typ, t.Kind())
	}
	switch typ.T {
	case FixedBytesTy:
		if len(t.Bytes) != typ.Size {
			return fmt.Errorf("%w: %v wants %d bytes, got %d", ErrLengthMismatch, typ, typ.Size, len(t.Bytes))
		}
	case UintTy, IntTy:
		return checkInteger(typ, &t.Number)
	case ArrayTy:
		if len(t.Elems) != typ.Size {
			return lengthErr(typ, len(t.Elems))
		}
		fallthrough
	case SliceTy:
		for _, elem := range t.Elems {
			if err := elem.TypeCheck(*typ.Elem); err != nil {
				return err
			}
		}
	case TupleTy:
		if len(t.Elems) != len(typ.TupleElems) {
			return fmt.Errorf("%w: %v wants %d components, got %d", ErrLengthMismatch, typ, len(typ.TupleElems), len(t.Elems))
		}
		for i, elem := range t.Elems {
			if err := elem.TypeCheck(*typ.TupleElems[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkInteger verifies n fits the width of the integer type t.
func checkInteger(t Type, n *uint256.Int) error {
	if t.Size >= 256 {
		return nil
	}
	if t.T == UintTy {
		if n.BitLen() > t.Size {
			return fmt.Errorf("%w: %s does not fit %v", ErrOverflow, n.Dec(), t)
		}
		return nil
	}
	if n.Sign() < 0 {
		var m uint256.Int
		if m.Not(n).BitLen() >= t.Size {
			return fmt.Errorf("%w: %s does not fit %v", ErrUnderflow, signedDec(n), t)
		}
		return nil
	}
	if n.BitLen() >= t.Size {
		return fmt.Errorf("%w: %s does not fit %v", ErrOverflow, n.Dec(), t)
	}
	return nil
}

// signedDec renders two's complement bits as a signed decimal.
func signedDec(n *uint256.Int) string {
	if n.Sign() >= 0 {
		return n.Dec()
	}
	return "-" + new(uint256.Int).Neg(n).Dec()
}

// Equal reports whether two tokens hold the same value.
func (t Token) Equal(o Token) bool {
	if t.T != o.T {
		return false
	}
	switch t.T {
	case AddressTy:
		return t.Address == o.Address
	case BoolTy:
		return t.Bool == o.Bool
	case StringTy:
		return t.Str == o.Str
	case BytesTy, FixedBytesTy:
		return bytes.Equal(t.Bytes, o.Bytes)
	case UintTy, IntTy:
		return t.Number.Eq(&o.Number)
	case SliceTy, ArrayTy, TupleTy:
		if len(t.Elems) != len(o.Elems) {
			return false
		}
		for i := range t.Elems {
			if !t.Elems[i].Equal(o.Elems[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (t Token) String() string {
	switch t.T {
	case AddressTy:
		return t.Address.Hex()
	case BoolTy:
		if t.Bool {
			return "true"
		}
		return "false"
	case StringTy:
		return t.Str
	case BytesTy, FixedBytesTy:
		return hexutil.Encode(t.Bytes)
	case UintTy:
		return t.Number.Dec()
	case IntTy:
		return signedDec(&t.Number)
	case SliceTy, ArrayTy, TupleTy:
		parts := make([]string, len(t.Elems))
		for i, elem := range t.Elems {
			parts[i] = elem.String()
		}
		if t.T == TupleTy {
			return "(" + strings.Join(parts, ",") + ")"
		}
		return "[" + strings.Join(parts, ",") + "]"
	}
	return "<" + t.Kind() + ">"
}

// Tokens is an ordered list of tokens.
type Tokens []Token

// Equal reports whether both lists hold equal tokens in the same order.
func (ts Tokens) Equal(o Tokens) bool {
	if len(ts) != len(o) {
		return false
	}
	for i := range ts {
		if !ts[i].Equal(o[i]) {
			return false
		}
	}
	return true
}
