// SPDX-License-Identifier: MIT

// File: view.go
// Role: Zero-copy read view used by the MST engines.
// Concurrency:
//   - Read holds the read lock for the whole callback; the Reader must not
//     escape the callback.

package core

// Reader is an index-based, read-only view of the store. Slices returned by
// NeighborsAt and EdgeList alias internal storage and must not be modified.
type Reader interface {
	// CityCount returns the number of registered cities.
	CityCount() int

	// CityName returns the name at index i (i must be in range).
	CityName(i int) string

	// FindIndex returns the index of name, or NotFound.
	FindIndex(name string) int

	// NeighborsAt returns the adjacency list of city i in insertion order.
	NeighborsAt(i int) []Neighbor

	// EdgeList returns the flat edge list in insertion order.
	EdgeList() []Edge
}

// Read runs fn with the store read-locked. Writers (AddCity, AddEdge, Clear)
// block until fn returns.
func (g *Graph) Read(fn func(r Reader)) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	fn(lockedReader{g: g})
}

// lockedReader implements Reader over a Graph whose read lock is held.
type lockedReader struct {
	g *Graph
}

func (r lockedReader) CityCount() int { return len(r.g.cities) }
func (r lockedReader) CityName(i int) string { return r.g.cities[i].Name }
func (r lockedReader) FindIndex(name string) int { return r.g.findIndexLocked(name) }
func (r lockedReader) NeighborsAt(i int) []Neighbor { return r.g.cities[i].Neighbors }
func (r lockedReader) EdgeList() []Edge { return r.g.edges }
