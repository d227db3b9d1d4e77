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

// Package bind maps ABI types onto native Go values.
//
// Every ABI type has a native shape (NativeType): addresses become
// common.Address, numbers uint256.Int, bytes32 common.Hash and arrays Go slices
// and arrays of their element shape. Encode and Decode move values between
// that shape and abi.Token, Convert accepts the wider set of Go values a caller
// may reasonably hold (any integer kind, *big.Int, hex strings, []any, ...).
//
// On top of that sit the per function and per event bindings synthesized from
// an abi.Contract by NewContract, and Generate, which renders those bindings
// as typed Go source.
//
// Tuples are not supported: any tuple anywhere in a function or event makes
// its synthesis fail with abi.ErrUnsupportedType.
package bind
