// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns records in insertion order.
//   - Adjacency lists grow in insertion order, one src→dest and one dest→src entry per edge.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

// AddEdge records an undirected road between two registered cities.
//
// Steps:
//  1. Reject negative weights.
//  2. Under the write lock, check the edge bound.
//  3. Resolve both endpoints; an unknown endpoint drops the edge.
//  4. Append the flat record, then the two symmetric adjacency entries.
//
// Returns true iff the edge was stored. Nothing is stored on false.
// Self-loops are accepted; the engines never select them.
//
// Complexity: O(V) for the endpoint lookups, O(1) amortized insert.
func (g *Graph) AddEdge(src, dest string, weight int64) bool {
	if weight < 0 {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.maxEdges > 0 && len(g.edges) >= g.maxEdges {
		return false
	}

	srcIdx := g.findIndexLocked(src)
	destIdx := g.findIndexLocked(dest)
	if srcIdx == NotFound || destIdx == NotFound {
		return false
	}

	g.edges = append(g.edges, Edge{
		Src:       src,
		Dest:      dest,
		SrcIndex:  srcIdx,
		DestIndex: destIdx,
		Weight:    weight,
	})

	// Mirror entries keep the adjacency symmetric.
	g.cities[srcIdx].Neighbors = append(g.cities[srcIdx].Neighbors,
		Neighbor{Name: dest, Index: destIdx, Weight: weight})
	g.cities[destIdx].Neighbors = append(g.cities[destIdx].Neighbors,
		Neighbor{Name: src, Index: srcIdx, Weight: weight})

	return true
}

// Edges returns a copy of the flat edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of stored edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sum int64
	for i := range g.edges {
		sum += g.edges[i].Weight
	}

	return sum
}
