// SPDX-License-Identifier: MIT

// Package prim_kruskal provides two independent algorithms for computing the Minimum Spanning Tree (MST)
// of the undirected, weighted city network held by a *core.Graph: Prim's algorithm and Kruskal's algorithm.
// Both report the accepted tree edges in acceptance order, the total cost and the wall-clock time of the
// algorithm body so the two can be compared on the same input.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why compare two algorithms?
//     The total cost of an MST is unique, so Prim and Kruskal must agree on it for a connected network,
//     while their running times differ with density. Comparing them on real road data is the point of
//     the citymst tool.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) (Result, error)
//
//   - Strategy: copy the flat edge list, stable-sort it by weight, then scan it once. A fresh
//     unionfind.DSU over all city indices accepts an edge iff its endpoints are in different sets.
//     Stop once |V|−1 edges have been accepted or the list is exhausted.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g *core.Graph, start string) (Result, error)
//
//   - Strategy: mark the start city visited and push its incident roads into a fresh minheap.MinHeap.
//     Pop the lightest candidate; if its target is already visited the entry is stale and is dropped
//     (lazy deletion), otherwise the target joins the tree and its roads to unvisited cities are pushed.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
// Disconnected networks
//
//	Both engines stop early when no further city can be reached and set Result.Disconnected.
//	This is a warning, not an error: the partial tree (a spanning forest for Kruskal, the tree of the
//	start city's component for Prim) is still returned. Result.Warning() yields ErrDisconnected.
//
// Error Conditions
//
//	- ErrEmptyGraph   : no cities are loaded (both engines).
//	- ErrCityNotFound : Prim's start city is not registered.
//	- ErrUnknownMethod: Compute was given a method other than MethodPrim / MethodKruskal.
//
// Timing
//
//	Result.Elapsed covers the algorithm body only: validation and start-city lookup happen before
//	the clock starts, formatting happens after it stops.
//
// Determinism
//
//   - Kruskal uses a stable sort, so equal weights keep insertion order.
//   - Prim breaks weight ties by heap structure; the set of accepted edges may differ between
//     equal-cost trees, the total cost never does.
//
// Engines only read the store: they run inside core.Graph.Read, so a concurrent reload waits for them.
package prim_kruskal
