// SPDX-License-Identifier: MIT

// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It scans the weight-sorted flat edge list and keeps every edge that joins two different components.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/citymst/core"
	"github.com/katalvlaran/citymst/unionfind"
)

// Kruskal computes the MST (or, for a disconnected network, a spanning forest)
// of every loaded city.
//
// Error Conditions:
//   - ErrEmptyGraph : graph is nil or holds no cities.
//
// Steps:
//  1. Validate: cities loaded.
//  2. Start the clock. Copy the flat edge list; the store is never reordered.
//  3. Stable-sort the copy by ascending weight (equal weights keep insertion order).
//  4. Initialise a fresh DSU with parent[i] = i for every city index.
//  5. Scan: accept an edge iff Find(src) != Find(dest), then Union them.
//     Stop once |V|-1 edges are accepted.
//  6. Stop the clock. Fewer than |V|-1 edges ⇒ Disconnected.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(graph *core.Graph) (Result, error) {
	if graph == nil {
		return Result{}, ErrEmptyGraph
	}

	var (
		res Result
		err error
	)
	graph.Read(func(r core.Reader) {
		res, err = kruskal(r)
	})

	return res, err
}

// kruskal runs on a read-locked view.
func kruskal(r core.Reader) (Result, error) {
	// 1. Validate.
	n := r.CityCount()
	if n == 0 {
		return Result{}, ErrEmptyGraph
	}

	res := newResult(MethodKruskal, "", n)
	res.Elapsed = measure(func() {
		// 2-3. Sort a private copy.
		edges := make([]core.Edge, len(r.EdgeList()))
		copy(edges, r.EdgeList())
		sort.SliceStable(edges, func(i, j int) bool {
			return edges[i].Weight < edges[j].Weight
		})

		// 4. Every city starts in its own set.
		dsu := unionfind.New(n)

		// 5. Accept edges that bridge two components.
		for i := 0; i < len(edges) && len(res.Edges) < n-1; i++ {
			e := edges[i]
			if !dsu.Union(e.SrcIndex, e.DestIndex) {
				continue // same component: would close a cycle
			}
			res.Edges = append(res.Edges, TreeEdge{From: e.Src, To: e.Dest, Weight: e.Weight})
			res.TotalCost += e.Weight
		}
	})

	// 6. Exhausted the list before spanning every city.
	res.Disconnected = len(res.Edges) < n-1

	return res, nil
}
