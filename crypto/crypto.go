// Copyright 2014 The go-ethereum Authors
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

// Package crypto provides the Keccak256 hashing used for function selectors,
// event identifiers and hashed log topics.
package crypto

import (
	"github.com/sunyihoo/go-ethabi/common"
	"golang.org/x/crypto/sha3"
)

// SelectorLength is the size of a function selector.
const SelectorLength = 4

// Keccak256 returns the legacy Keccak256 digest of the concatenated input.
func Keccak256(data ...[]byte) []byte {
	h := Keccak256Hash(data...)
	return h[:]
}

// Keccak256Hash is Keccak256 returning a common.Hash.
func Keccak256Hash(data ...[]byte) (h common.Hash) {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	d.Sum(h[:0])
	return h
}

// Selector returns the leading four bytes of the hash of a canonical
// function signature such as "transfer(address,uint256)".
func Selector(signature string) (sel [SelectorLength]byte) {
	h := Keccak256Hash([]byte(signature))
	copy(sel[:], h[:SelectorLength])
	return sel
}
