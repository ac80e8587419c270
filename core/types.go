// SPDX-License-Identifier: MIT

// Package core defines the City, Neighbor, Edge and Graph types,
// sentinel errors, graph options and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// NotFound is returned by FindIndex when a city name is not registered.
const NotFound = -1

// Sentinel errors for Graph Store queries.
var (
	// ErrCityNotFound indicates a query referenced a city that is not registered.
	ErrCityNotFound = errors.New("core: city not found")

	// ErrIndexOutOfRange indicates an index-based query outside [0, CityCount).
	ErrIndexOutOfRange = errors.New("core: city index out of range")
)

// Neighbor is one directed adjacency entry: the destination city (by name and
// by registry index) and the weight of the connecting road.
type Neighbor struct {
	// Name is the destination city name.
	Name string

	// Index is the destination city index in the registry.
	Index int

	// Weight is the non-negative road length.
	Weight int64
}

// City is a registry entry: a unique name plus its adjacency list in
// insertion order.
type City struct {
	// Name uniquely identifies the city within its Graph.
	Name string

	// Neighbors holds the symmetric adjacency entries added by AddEdge.
	Neighbors []Neighbor
}

// Edge is one record of the flat edge list: an unordered pair of cities and
// a non-negative weight. SrcIndex and DestIndex cache registry indices so
// Kruskal does not need name lookups.
type Edge struct {
	Src       string
	Dest      string
	SrcIndex  int
	DestIndex int
	Weight    int64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithMaxCities bounds the number of cities; 0 means unbounded.
// Negative values are treated as 0.
func WithMaxCities(n int) GraphOption {
	return func(g *Graph) {
		if n < 0 {
			n = 0
		}
		g.maxCities = n
	}
}

// WithMaxEdges bounds the number of edges; 0 means unbounded.
// Negative values are treated as 0.
func WithMaxEdges(n int) GraphOption {
	return func(g *Graph) {
		if n < 0 {
			n = 0
		}
		g.maxEdges = n
	}
}

// Graph is the Graph Store: the sole long-lived owner of city and edge data.
//
// mu guards cities, edges and every adjacency list.
type Graph struct {
	mu sync.RWMutex

	// Capacity bounds (0 = unbounded).
	maxCities int
	maxEdges  int

	// Storage, in insertion order.
	cities []City
	edges  []Edge
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// MaxCities returns the configured city bound (0 = unbounded).
func (g *Graph) MaxCities() int { return g.maxCities }

// MaxEdges returns the configured edge bound (0 = unbounded).
func (g *Graph) MaxEdges() int { return g.maxEdges }
