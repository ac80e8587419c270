// SPDX-License-Identifier: MIT
package minheap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/citymst/minheap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeap_Empty(t *testing.T) {
	h := minheap.New(0)
	assert.True(t, h.IsEmpty())
	assert.Zero(t, h.Len())

	_, ok := h.Pop()
	assert.False(t, ok)
	_, ok = h.Peek()
	assert.False(t, ok)
}

func TestMinHeap_PopOrder(t *testing.T) {
	h := minheap.New(4)
	for _, w := range []int64{5, 1, 4, 2, 3} {
		h.Push(minheap.Node{City: int(w), Weight: w, From: 0})
	}
	require.Equal(t, 5, h.Len())

	top, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, int64(1), top.Weight)

	var got []int64
	for !h.IsEmpty() {
		n, ok := h.Pop()
		require.True(t, ok)
		got = append(got, n.Weight)
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, got)
}

// TestMinHeap_InterleavedProperty checks that, after any mix of pushes and
// pops, the minimum of the remaining elements always comes out first.
func TestMinHeap_InterleavedProperty(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	h := minheap.New(0)
	var shadow []int64

	for step := 0; step < 2000; step++ {
		if len(shadow) == 0 || r.Intn(3) > 0 {
			w := int64(r.Intn(50))
			h.Push(minheap.Node{Weight: w})
			shadow = append(shadow, w)
			continue
		}
		sort.Slice(shadow, func(i, j int) bool { return shadow[i] < shadow[j] })
		n, ok := h.Pop()
		require.True(t, ok)
		require.Equal(t, shadow[0], n.Weight, "step %d", step)
		shadow = shadow[1:]
	}
	assert.Equal(t, len(shadow), h.Len())
}

func TestMinHeap_CarriesPayload(t *testing.T) {
	h := minheap.New(2)
	h.Push(minheap.Node{City: 3, Weight: 9, From: 1})
	h.Push(minheap.Node{City: 2, Weight: 4, From: 0})

	n, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, minheap.Node{City: 2, Weight: 4, From: 0}, n)
}
