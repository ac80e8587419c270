// SPDX-License-Identifier: MIT

// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree from a start city using a lazily pruned min-heap of frontier roads.
package prim_kruskal

import (
	"github.com/katalvlaran/citymst/core"
	"github.com/katalvlaran/citymst/minheap"
)

// Prim computes the MST of the component containing start by growing outwards
// with a min-heap.
//
// Error Conditions:
//   - ErrEmptyGraph   : graph is nil or holds no cities.
//   - ErrCityNotFound : start is not registered.
//
// Steps:
//  1. Validate: cities loaded, start resolvable (outside the timed body).
//  2. Start the clock. Mark start visited; push every road from start to an unvisited city.
//  3. While fewer than |V|-1 edges are accepted and the heap is non-empty:
//     a. Pop the lightest candidate.
//     b. If its target is already visited the entry is stale: drop it.
//     c. Otherwise mark the target visited, accept the edge, accumulate its weight.
//     d. Push every road from the target to an unvisited city.
//  4. Stop the clock. Fewer than |V|-1 edges ⇒ Disconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, start string) (Result, error) {
	if graph == nil {
		return Result{}, ErrEmptyGraph
	}

	var (
		res Result
		err error
	)
	graph.Read(func(r core.Reader) {
		res, err = prim(r, start)
	})

	return res, err
}

// prim runs on a read-locked view.
func prim(r core.Reader, start string) (Result, error) {
	// 1. Validate.
	n := r.CityCount()
	if n == 0 {
		return Result{}, ErrEmptyGraph
	}
	startIdx := r.FindIndex(start)
	if startIdx == core.NotFound {
		return Result{}, ErrCityNotFound
	}

	res := newResult(MethodPrim, start, n)
	res.Elapsed = measure(func() {
		visited := make([]bool, n)
		pq := minheap.New(len(r.NeighborsAt(startIdx)))

		// push enqueues every road from city u to a not-yet-visited city.
		push := func(u int) {
			for _, nb := range r.NeighborsAt(u) {
				if !visited[nb.Index] {
					pq.Push(minheap.Node{City: nb.Index, Weight: nb.Weight, From: u})
				}
			}
		}

		// 2. Seed the frontier from the start city.
		visited[startIdx] = true
		push(startIdx)

		// 3. Expand until the tree spans every city or the frontier runs dry.
		for len(res.Edges) < n-1 && !pq.IsEmpty() {
			cur, _ := pq.Pop()
			if visited[cur.City] {
				continue // stale candidate
			}
			visited[cur.City] = true
			res.Edges = append(res.Edges, TreeEdge{
				From:   r.CityName(cur.From),
				To:     r.CityName(cur.City),
				Weight: cur.Weight,
			})
			res.TotalCost += cur.Weight
			push(cur.City)
		}
	})

	// 4. Partial tree ⇒ the start city cannot reach every other city.
	res.Disconnected = len(res.Edges) < n-1

	return res, nil
}
