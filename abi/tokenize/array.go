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
	"strings"

	"github.com/sunyihoo/go-ethabi/abi"
)

// splitArray splits an array literal "[a, b, [c, d]]" into its top level
// elements. Elements are trimmed of surrounding whitespace. Double quoted
// elements are unquoted, inside quotes \" stands for a quote and \\ for a
// backslash, and brackets or commas lose their meaning.
func splitArray(value string) ([]string, error) {
	value = strings.TrimSpace(value)
	if len(value) < 2 || value[0] != '[' || value[len(value)-1] != ']' {
		return nil, fmt.Errorf("%w: array literal %q must be enclosed in brackets", abi.ErrMalformedLiteral, value)
	}
	inner := value[1 : len(value)-1]
	if strings.TrimSpace(inner) == "" {
		return []string{}, nil
	}
	var (
		parts   []string
		start   int
		depth   int
		quoted  bool
		escaped bool
	)
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if quoted {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				quoted = false
			}
			continue
		}
		switch c {
		case '"':
			quoted = true
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced brackets in %q", abi.ErrMalformedLiteral, value)
			}
		case ',':
			if depth == 0 {
				part, err := element(inner[start:i])
				if err != nil {
					return nil, err
				}
				parts = append(parts, part)
				start = i + 1
			}
		}
	}
	if quoted {
		return nil, fmt.Errorf("%w: unterminated quote in %q", abi.ErrMalformedLiteral, value)
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced brackets in %q", abi.ErrMalformedLiteral, value)
	}
	part, err := element(inner[start:])
	if err != nil {
		return nil, err
	}
	return append(parts, part), nil
}

// element trims and unquotes a single array element.
func element(raw string) (string, error) {
	part := strings.TrimSpace(raw)
	if part == "" {
		return "", fmt.Errorf("%w: empty array element", abi.ErrMalformedLiteral)
	}
	if part[0] != '"' {
		return part, nil
	}
	if len(part) < 2 || part[len(part)-1] != '"' {
		return "", fmt.Errorf("%w: stray characters around quoted element %s", abi.ErrMalformedLiteral, part)
	}
	var b strings.Builder
	body := part[1 : len(part)-1]
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			i++
		} else if body[i] == '"' {
			return "", fmt.Errorf("%w: stray characters around quoted element %s", abi.ErrMalformedLiteral, part)
		}
		b.WriteByte(body[i])
	}
	return b.String(), nil
}
