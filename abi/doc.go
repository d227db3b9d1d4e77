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

// Package abi implements the Ethereum ABI (Application Binary
// Interface).
//
// The package models the ABI parameter types as a closed algebra (Type) and
// moves values through it as Tokens: a flat, tagged representation that
// mirrors the type tree. Tokens are packed into and unpacked from the
// head/tail byte layout used for calldata, return data and log data.
//
// Contract interfaces are loaded from their JSON description:
//
//	contract, err := abi.JSON(strings.NewReader(definition))
//	transfer, _ := contract.Function("transfer")
//	data, err := transfer.EncodeInput([]abi.Token{abi.AddressToken(to), abi.Uint64Token(10)})
//
// Typed bindings mapping tokens onto native Go values live in the bind
// package, and human input tokenizers in the tokenize package.
package abi
