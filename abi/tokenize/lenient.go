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
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/go-ethabi/abi"
	"github.com/sunyihoo/go-ethabi/log"
)

// unitRegex matches a decimal amount followed by an ether denomination.
// Denominations match regardless of case.
var unitRegex = regexp.MustCompile(`(?i)^([0-9]+)(\.[0-9]+)?\s*(ether|gwei|nanoether|nano|wei)$`)

// unitExponents maps a denomination to its power of ten in wei.
var unitExponents = map[string]uint64{
	"ether":     18,
	"gwei":      9,
	"nanoether": 9,
	"nano":      9,
	"wei":       0,
}

var (
	maxInt256    = new(uint256.Int).Rsh(new(uint256.Int).SetAllOne(), 1)
	minInt256Abs = new(uint256.Int).AddUint64(maxInt256, 1) // magnitude of the smallest int256
)

// Lenient accepts everything Strict does and additionally decimal numbers.
// Unsigned numbers may carry an ether denomination ("1.5 ether", "30gwei").
// Signed numbers may carry a leading minus sign.
type Lenient struct {
	Strict
}

func (l Lenient) TokenizeUint(value string) ([32]byte, error) {
	if word, err := l.Strict.TokenizeUint(value); err == nil {
		return word, nil
	}
	n, decErr := parseDecimal(value)
	if decErr == nil {
		return n.Bytes32(), nil
	}
	match := unitRegex.FindStringSubmatch(value)
	if match == nil {
		return [32]byte{}, decErr
	}
	n, err := parseUnits(match[1], strings.TrimPrefix(match[2], "."), unitExponents[strings.ToLower(match[3])])
	if err != nil {
		return [32]byte{}, fmt.Errorf("%q: %w", value, err)
	}
	log.Trace("Tokenized denominated amount", "input", value, "wei", n)
	return n.Bytes32(), nil
}

func (l Lenient) TokenizeInt(value string) ([32]byte, error) {
	if word, err := l.Strict.TokenizeInt(value); err == nil {
		return word, nil
	}
	digits, negative := strings.CutPrefix(value, "-")
	abs, err := parseDecimal(digits)
	if err != nil {
		if negative && errors.Is(err, abi.ErrOverflow) {
			return [32]byte{}, fmt.Errorf("%w: %q is below the int256 range", abi.ErrUnderflow, value)
		}
		return [32]byte{}, err
	}
	if !negative {
		if abs.Gt(maxInt256) {
			return [32]byte{}, fmt.Errorf("%w: %q is above the int256 range", abi.ErrOverflow, value)
		}
		return abs.Bytes32(), nil
	}
	if abs.Gt(minInt256Abs) {
		return [32]byte{}, fmt.Errorf("%w: %q is below the int256 range", abi.ErrUnderflow, value)
	}
	// Negating zero yields zero, so "-0" is 0.
	return new(uint256.Int).Neg(abs).Bytes32(), nil
}

// parseDecimal parses a plain base 10 number.
func parseDecimal(s string) (*uint256.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty number", abi.ErrMalformedLiteral)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, fmt.Errorf("%w: invalid character %q in number %q", abi.ErrMalformedLiteral, s[i], s)
		}
	}
	n, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s exceeds 256 bits", abi.ErrOverflow, s)
	}
	return n, nil
}

// parseUnits computes integer.fraction * 10^exp.
func parseUnits(integer, fraction string, exp uint64) (*uint256.Int, error) {
	if uint64(len(fraction)) > exp {
		return nil, fmt.Errorf("%w: %d fractional digits exceed the unit precision of %d", abi.ErrOverflow, len(fraction), exp)
	}
	n, err := parseDecimal(integer)
	if err != nil {
		return nil, err
	}
	n, overflow := n.MulOverflow(n, pow10(exp))
	if overflow {
		return nil, fmt.Errorf("%w: amount exceeds 256 bits", abi.ErrOverflow)
	}
	if fraction == "" {
		return n, nil
	}
	f, err := parseDecimal(fraction)
	if err != nil {
		return nil, err
	}
	f.Mul(f, pow10(exp-uint64(len(fraction))))
	if _, overflow := n.AddOverflow(n, f); overflow {
		return nil, fmt.Errorf("%w: amount exceeds 256 bits", abi.ErrOverflow)
	}
	return n, nil
}

func pow10(exp uint64) *uint256.Int {
	return new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(exp))
}
