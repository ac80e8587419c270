// SPDX-License-Identifier: MIT

// Package minheap provides the binary min-heap of frontier candidates used by
// Prim's algorithm. Nodes are ordered by Weight only; ties come out in an
// unspecified order.
//
// The heap is array-backed and driven by container/heap: Push appends and
// sifts up while the new node is lighter than its parent, Pop moves the last
// element to the root and sifts down towards the lighter child while that
// child is lighter than the current node.
//
// A MinHeap is owned by a single algorithm invocation and is not safe for
// concurrent use.
package minheap

import "container/heap"

// Node is one frontier candidate: the road From→City with the given Weight.
// City and From are Graph Store indices.
type Node struct {
	City   int
	Weight int64
	From   int
}

// MinHeap is a binary min-heap of Nodes keyed by Weight.
type MinHeap struct {
	pq nodePQ
}

// New returns an empty heap with room for capacity nodes before growing.
func New(capacity int) *MinHeap {
	if capacity < 0 {
		capacity = 0
	}

	return &MinHeap{pq: make(nodePQ, 0, capacity)}
}

// Push inserts n. Complexity: O(log N).
func (h *MinHeap) Push(n Node) {
	heap.Push(&h.pq, n)
}

// Pop removes and returns the lightest node. ok is false on an empty heap.
// Complexity: O(log N).
func (h *MinHeap) Pop() (n Node, ok bool) {
	if len(h.pq) == 0 {
		return Node{}, false
	}

	return heap.Pop(&h.pq).(Node), true
}

// Peek returns the lightest node without removing it.
func (h *MinHeap) Peek() (n Node, ok bool) {
	if len(h.pq) == 0 {
		return Node{}, false
	}

	return h.pq[0], true
}

// IsEmpty reports whether the heap holds no nodes. Complexity: O(1).
func (h *MinHeap) IsEmpty() bool { return len(h.pq) == 0 }

// Len returns the number of nodes in the heap.
func (h *MinHeap) Len() int { return len(h.pq) }

// nodePQ implements heap.Interface for a min-heap of Node, ordered by Weight.
type nodePQ []Node

func (pq nodePQ) Len() int { return len(pq) }

// Less compares by weight only.
func (pq nodePQ) Less(i, j int) bool { return pq[i].Weight < pq[j].Weight }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push before sifting up.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(Node)) }

// Pop removes the last element; heap.Pop has already swapped the root there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	node := old[n-1]
	*pq = old[:n-1]

	return node
}
