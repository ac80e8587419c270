// SPDX-License-Identifier: MIT

// Package citymst connects a set of cities with the cheapest possible road
// network: the minimum spanning tree of a weighted, undirected road map.
//
// What is in the box?
//
//	• Graph Store: cities in insertion order, symmetric adjacency lists and a flat edge list
//	• Loader: one road per line, "src#dest#km", malformed lines skipped and reported
//	• Prim's algorithm over a min-heap of frontier roads
//	• Kruskal's algorithm over sorted roads and a disjoint-set forest
//	• Comparison of both engines by cost and wall-clock time
//	• Generators for synthetic networks (path, cycle, star, grid, random, connected)
//	• The citymst command: load, prim, kruskal, compare, generate, watch
//
// Packages:
//
//	core/         - Graph Store: cities, roads, read views under a RW lock
//	minheap/      - binary min-heap of (city, weight, from) candidates
//	unionfind/    - disjoint-set forest with path compression
//	prim_kruskal/ - both MST engines, results, timing and comparison
//	loader/       - input format parser and writer
//	gen/          - synthetic network constructors
//	report/       - text and JSON rendering
//	session/      - one store plus logging and metrics, driven by the command
//	config/, logutil/, metrics/, watch/ - command plumbing
//
// Quick example:
//
//	    A
//	  4/ \5
//	  B───C
//	    2
//
//	g := core.NewGraph()
//	_, _ = loader.Parse(strings.NewReader("A#B#4\nB#C#2\nA#C#5\n"), g)
//	res, _ := prim_kruskal.Kruskal(g)
//	// res.Edges: B-C(2), A-B(4); res.TotalCost: 6
//
// A tree accepted by either engine has at most |V|-1 edges and no cycles.
// When fewer than |V|-1 edges are accepted the network is disconnected: the
// result is still returned, flagged Disconnected, and only spans the cities
// that could be reached.
package citymst
