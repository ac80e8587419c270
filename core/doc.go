// SPDX-License-Identifier: MIT

// Package core provides the in-memory Graph Store used by the MST engines:
// an insertion-ordered registry of cities, each owning a growable adjacency
// list, plus a flat edge list in insertion order.
//
// The store models an undirected, non-negatively weighted road network:
//
//   - Cities are registered once by name and keep their index for the
//     lifetime of the store (until Clear). Duplicate names collapse to the
//     first registration.
//   - Every accepted edge is stored twice: once in the flat edge list
//     (consumed by Kruskal) and as two symmetric adjacency entries
//     src→dest and dest→src (consumed by Prim).
//   - Edges that reference an unknown city are dropped silently, as are
//     negative weights.
//
// Configuration Options (GraphOption):
//
//	– WithMaxCities(n)
//	    Bounds the registry; AddCity past the bound is a silent no-op.
//
//	– WithMaxEdges(n)
//	    Bounds the flat edge list; AddEdge past the bound returns false.
//
// A zero bound (the default) means the store grows without limit.
//
// Core Methods:
//
//	AddCity(name string) (index int, added bool)          // O(V) lookup + O(1) insert
//	AddEdge(src, dest string, weight int64) bool          // O(V) lookups + O(1) insert
//	FindIndex(name string) int                            // O(V), NotFound if absent
//	Neighbors(name string) ([]Neighbor, error)            // copy, insertion order
//	Edges() []Edge                                        // copy, insertion order
//	Clear()                                               // safe on an empty store
//	Read(fn func(Reader))                                 // zero-copy read view
//
// Concurrency:
//
//	A single sync.RWMutex guards the registry, the adjacency lists and the
//	edge list. Algorithms run inside Read, which holds the read lock for the
//	whole run, so a reload can never interleave with a running engine.
package core
