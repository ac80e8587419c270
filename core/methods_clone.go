// SPDX-License-Identifier: MIT

// File: methods_clone.go
// Role: Store maintenance: Clear and Clone.
// Concurrency:
//   - Clear takes the write lock; Clone reads the source under its read lock.

package core

// Clear releases every city, adjacency list and edge record. Capacity
// options are preserved. Safe to call on an empty store.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.mu.Lock()
	g.cities = nil
	g.edges = nil
	g.mu.Unlock()
}

// Clone returns a deep copy of the store, including capacity options.
// The copy shares nothing with g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		maxCities: g.maxCities,
		maxEdges:  g.maxEdges,
		cities:    make([]City, len(g.cities)),
		edges:     make([]Edge, len(g.edges)),
	}
	for i := range g.cities {
		nbs := make([]Neighbor, len(g.cities[i].Neighbors))
		copy(nbs, g.cities[i].Neighbors)
		out.cities[i] = City{Name: g.cities[i].Name, Neighbors: nbs}
	}
	copy(out.edges, g.edges)

	return out
}
