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

package bind

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-ethabi/abi"
)

const tokenABI = `[
	{"type":"constructor","inputs":[{"name":"owner","type":"address"},{"name":"supply","type":"uint256"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"pause","inputs":[],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"reserves","inputs":[],"outputs":[{"name":"a","type":"uint112"},{"name":"b","type":"uint112"},{"name":"ts","type":"uint32"}],"stateMutability":"view"},
	{"type":"function","name":"batch","inputs":[{"name":"to","type":"address[]"},{"name":"amounts","type":"uint64[2]"},{"name":"delta","type":"int8"},{"name":"","type":"bytes32"}],"outputs":[{"name":"","type":"bytes"},{"name":"","type":"string"}],"stateMutability":"payable"},
	{"type":"function","name":"send","inputs":[{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"send","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}],"anonymous":false},
	{"type":"event","name":"Wide","inputs":[{"name":"a","type":"uint8","indexed":true},{"name":"b","type":"string","indexed":true},{"name":"c","type":"bool","indexed":true},{"name":"d","type":"address","indexed":true},{"name":"","type":"uint256","indexed":false}],"anonymous":true}
]`

func loadToken(t *testing.T) *Contract {
	t.Helper()
	c, err := Parse(strings.NewReader(tokenABI))
	require.NoError(t, err)
	return c
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func word(n uint64) []byte {
	w := num(n)
	b := w.Bytes32()
	return b[:]
}

func TestContractLookup(t *testing.T) {
	c := loadToken(t)

	require.NotNil(t, c.Constructor())
	assert.Len(t, c.Constructor().Spec().Inputs, 2)

	fn, ok := c.Function("transfer")
	require.True(t, ok)
	assert.Equal(t, "transfer(address,uint256)", fn.Spec().Sig)

	_, ok = c.Function("missing")
	assert.False(t, ok)

	sends := c.Functions("send")
	require.Len(t, sends, 2)
	assert.Equal(t, "send", sends[0].Spec().Name)
	assert.Equal(t, "send0", sends[1].Spec().Name)
	assert.Same(t, sends[1], c.MustFunction("send0"))

	ev, ok := c.Event("Transfer")
	require.True(t, ok)
	assert.Equal(t, "Transfer(address,address,uint256)", ev.Spec().Sig)

	assert.Panics(t, func() { c.MustFunction("missing") })
	assert.Panics(t, func() { c.MustEvent("missing") })
}

func TestNewContractRejectsTuples(t *testing.T) {
	tests := []string{
		`[{"type":"function","name":"f","inputs":[{"name":"p","type":"tuple","components":[{"name":"x","type":"uint8"}]}],"outputs":[]}]`,
		`[{"type":"function","name":"f","inputs":[],"outputs":[{"name":"p","type":"tuple[]","components":[{"name":"x","type":"uint8"}]}]}]`,
		`[{"type":"event","name":"E","inputs":[{"name":"p","type":"tuple","indexed":true,"components":[{"name":"x","type":"uint8"}]}]}]`,
		`[{"type":"constructor","inputs":[{"name":"p","type":"tuple[2]","components":[{"name":"x","type":"bool"}]}]}]`,
		// A single offending function aborts the whole contract.
		`[{"type":"function","name":"ok","inputs":[],"outputs":[]},{"type":"event","name":"E","inputs":[{"name":"p","type":"tuple","components":[{"name":"x","type":"uint8"}]}]}]`,
	}
	for i, abiJSON := range tests {
		spec, err := abi.JSON(strings.NewReader(abiJSON))
		require.NoError(t, err, "test %d", i)

		c, err := NewContract(spec)
		assert.ErrorIs(t, err, abi.ErrUnsupportedType, "test %d", i)
		assert.Nil(t, c, "test %d", i)
	}
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { MustParse(tokenABI) })
	assert.Panics(t, func() { MustParse(`[{"type":"bogus"}]`) })
}

func TestRegistry(t *testing.T) {
	spec, err := abi.JSON(strings.NewReader(tokenABI))
	require.NoError(t, err)

	r := NewRegistry(8)
	first, err := r.Function(&spec.Functions[0])
	require.NoError(t, err)
	again, err := r.Function(&spec.Functions[0])
	require.NoError(t, err)
	assert.Same(t, first, again)

	// Equal descriptions share a binding.
	copied := spec.Functions[0]
	same, err := r.Function(&copied)
	require.NoError(t, err)
	assert.Same(t, first, same)

	other, err := r.Function(&spec.Functions[1])
	require.NoError(t, err)
	assert.NotSame(t, first, other)

	ev, err := r.Event(&spec.Events[0])
	require.NoError(t, err)
	evAgain, err := r.Event(&spec.Events[0])
	require.NoError(t, err)
	assert.Same(t, ev, evAgain)

	tuple := abi.NewFunction("f", "f", "view", false, false, abi.Params{{Name: "p", Type: abi.TupleType(abi.BoolType())}}, nil)
	_, err = r.Function(&tuple)
	assert.ErrorIs(t, err, abi.ErrUnsupportedType)
}

func TestRegistryConcurrent(t *testing.T) {
	spec, err := abi.JSON(strings.NewReader(tokenABI))
	require.NoError(t, err)

	r := NewRegistry(2)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			fn := &spec.Functions[i%len(spec.Functions)]
			b, err := r.Function(fn)
			if assert.NoError(t, err) {
				assert.Equal(t, fn.Sig, b.Spec().Sig)
			}
		}(i)
	}
	wg.Wait()
}
