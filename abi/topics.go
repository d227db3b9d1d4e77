// Copyright 2018 The go-ethereum Authors
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
	"fmt"

	"github.com/sunyihoo/go-ethabi/common"
	"github.com/sunyihoo/go-ethabi/crypto"
)

// MaxIndexedTopics is the number of indexed inputs a topic filter can
// constrain. Non-anonymous events spend the first of the four EVM topics on
// their signature.
const MaxIndexedTopics = 3

// Topic is a constraint on a single log topic: either any value, or one of a
// set of values. The zero value matches any value.
type Topic[T any] struct {
	set    bool
	values []T
}

// AnyTopic matches any value.
func AnyTopic[T any]() Topic[T] {
	return Topic[T]{}
}

// ThisTopic matches exactly v.
func ThisTopic[T any](v T) Topic[T] {
	return Topic[T]{set: true, values: []T{v}}
}

// OneOfTopic matches any of vs.
func OneOfTopic[T any](vs ...T) Topic[T] {
	return Topic[T]{set: true, values: append([]T(nil), vs...)}
}

// IsAny reports whether the topic is unconstrained.
func (t Topic[T]) IsAny() bool {
	return !t.set
}

// Values returns the accepted values of a constrained topic.
func (t Topic[T]) Values() []T {
	return t.values
}

// MapTopic converts the values of a topic, keeping its shape.
func MapTopic[T, U any](t Topic[T], f func(T) (U, error)) (Topic[U], error) {
	if !t.set {
		return Topic[U]{}, nil
	}
	values := make([]U, len(t.values))
	for i, v := range t.values {
		u, err := f(v)
		if err != nil {
			return Topic[U]{}, err
		}
		values[i] = u
	}
	return Topic[U]{set: true, values: values}, nil
}

// TopicFilter constrains the indexed inputs of an event in declaration order.
// Slots beyond the number of indexed inputs are left as any.
type TopicFilter [MaxIndexedTopics]Topic[Token]

// Topics renders a filter as the topic list of a log query: the event
// signature first (unless the event is anonymous), then one entry per indexed
// input up to MaxIndexedTopics. A nil entry matches any topic.
func (e Event) Topics(filter TopicFilter) ([][]common.Hash, error) {
	indexed := e.Inputs.Indexed()
	n := min(len(indexed), MaxIndexedTopics)

	var query [][]common.Hash
	if !e.Anonymous {
		query = append(query, []common.Hash{e.ID})
	}
	for i := 0; i < n; i++ {
		slot := filter[i]
		if slot.IsAny() {
			query = append(query, nil)
			continue
		}
		if len(slot.values) == 0 {
			return nil, fmt.Errorf("%w: empty value set for topic %d of %s", ErrArgumentCount, i, e.Sig)
		}
		hashes := make([]common.Hash, 0, len(slot.values))
		for _, v := range slot.values {
			h, err := TopicHash(indexed[i].Type, v)
			if err != nil {
				return nil, fmt.Errorf("topic %d of %s: %w", i, e.Sig, err)
			}
			hashes = append(hashes, h)
		}
		query = append(query, hashes)
	}
	return query, nil
}

// TopicHash returns the topic under which an indexed input of type t holding
// tok is stored. Value types are stored as their 32 byte encoding, strings and
// bytes as the Keccak256 hash of their content, and arrays as the hash of the
// concatenated in-place encoding of their elements.
func TopicHash(t Type, tok Token) (common.Hash, error) {
	if err := tok.TypeCheck(t); err != nil {
		return common.Hash{}, err
	}
	switch t.T {
	case StringTy:
		return crypto.Keccak256Hash([]byte(tok.Str)), nil
	case BytesTy:
		return crypto.Keccak256Hash(tok.Bytes), nil
	case SliceTy, ArrayTy, TupleTy:
		enc, err := encodeInPlace(t, tok)
		if err != nil {
			return common.Hash{}, err
		}
		return crypto.Keccak256Hash(enc), nil
	default:
		word, err := packElement(t, tok)
		if err != nil {
			return common.Hash{}, err
		}
		return common.BytesToHash(word), nil
	}
}

// encodeInPlace produces the padded, length-less encoding used when hashing
// composite values into topics.
func encodeInPlace(t Type, tok Token) ([]byte, error) {
	switch t.T {
	case StringTy:
		return common.RightPadBytes([]byte(tok.Str), (len(tok.Str)+31)/32*32), nil
	case BytesTy:
		return common.RightPadBytes(tok.Bytes, (len(tok.Bytes)+31)/32*32), nil
	case SliceTy, ArrayTy, TupleTy:
		var out []byte
		for i, elem := range tok.Elems {
			elemType := t.Elem
			if t.T == TupleTy {
				elemType = t.TupleElems[i]
			}
			enc, err := encodeInPlace(*elemType, elem)
			if err != nil {
				return nil, err
			}
			out = append(out, enc...)
		}
		return out, nil
	default:
		return packElement(t, tok)
	}
}
