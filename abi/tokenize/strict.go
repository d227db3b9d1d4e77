// Copyright 2020 The go-ethereum Authors
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

package tokenize

import (
	"fmt"

	"github.com/sunyihoo/go-ethabi/abi"
	"github.com/sunyihoo/go-ethabi/common"
	"github.com/sunyihoo/go-ethabi/common/hexutil"
)

// Strict accepts the canonical encoding of every value: hex for addresses,
// bytes and numbers (the 0x prefix is optional), true/false for booleans.
// Numbers must be given as exactly 64 hex digits.
type Strict struct{}

func (Strict) TokenizeAddress(value string) (common.Address, error) {
	b, err := decodeHex(value)
	if err != nil {
		return common.Address{}, err
	}
	if len(b) != common.AddressLength {
		return common.Address{}, fmt.Errorf("%w: address %q has %d bytes", abi.ErrLengthMismatch, value, len(b))
	}
	return common.BytesToAddress(b), nil
}

func (Strict) TokenizeString(value string) (string, error) {
	return value, nil
}

func (Strict) TokenizeBool(value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: invalid bool %q", abi.ErrMalformedLiteral, value)
}

func (Strict) TokenizeBytes(value string) ([]byte, error) {
	return decodeHex(value)
}

func (Strict) TokenizeFixedBytes(value string, size int) ([]byte, error) {
	b, err := decodeHex(value)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, fmt.Errorf("%w: bytes%d literal has %d bytes", abi.ErrLengthMismatch, size, len(b))
	}
	return b, nil
}

func (Strict) TokenizeUint(value string) ([32]byte, error) {
	return decodeWord(value)
}

func (Strict) TokenizeInt(value string) ([32]byte, error) {
	return decodeWord(value)
}

func decodeHex(value string) ([]byte, error) {
	b, err := hexutil.DecodeLoose(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", abi.ErrMalformedLiteral, value, err)
	}
	return b, nil
}

func decodeWord(value string) ([32]byte, error) {
	var word [32]byte
	b, err := decodeHex(value)
	if err != nil {
		return word, err
	}
	if len(b) != len(word) {
		return word, fmt.Errorf("%w: %q is not a 32 byte hex number", abi.ErrMalformedLiteral, value)
	}
	copy(word[:], b)
	return word, nil
}
