// SPDX-License-Identifier: MIT

// Package prim_kruskal defines the result types, configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"time"

	"github.com/katalvlaran/citymst/core"
)

// ErrEmptyGraph indicates that no cities are loaded, so there is nothing to span.
var ErrEmptyGraph = errors.New("prim_kruskal: no cities loaded")

// ErrCityNotFound indicates that Prim's start city is not registered in the store.
var ErrCityNotFound = errors.New("prim_kruskal: start city not found")

// ErrDisconnected indicates that the accepted tree does not span every city.
// It is surfaced as a warning through Result.Warning, never returned as a run error.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates that Compute was asked for an unsupported method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// TreeEdge is one accepted MST edge, oriented as the engine discovered it.
type TreeEdge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
}

// Result is the outcome of one engine run.
type Result struct {
	// Algorithm is MethodPrim or MethodKruskal.
	Algorithm string `json:"algorithm"`

	// RunID correlates the run across logs and metrics.
	RunID string `json:"run_id"`

	// Start is Prim's start city; empty for Kruskal.
	Start string `json:"start,omitempty"`

	// Edges lists accepted tree edges in acceptance order.
	Edges []TreeEdge `json:"edges"`

	// TotalCost is the sum of the accepted weights.
	TotalCost int64 `json:"total_cost"`

	// Elapsed is the wall-clock time of the algorithm body.
	Elapsed time.Duration `json:"-"`

	// Cities is the number of cities in the store at run time.
	Cities int `json:"cities"`

	// Disconnected is true when fewer than Cities-1 edges were accepted.
	Disconnected bool `json:"disconnected"`
}

// ElapsedSeconds returns Elapsed as fractional seconds.
func (r Result) ElapsedSeconds() float64 { return r.Elapsed.Seconds() }

// Warning returns ErrDisconnected for a disconnected result, nil otherwise.
func (r Result) Warning() error {
	if r.Disconnected {
		return ErrDisconnected
	}

	return nil
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting city to use.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting city for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting city for Prim's algorithm; Kruskal ignores it.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: calls Kruskal(graph).
//	– MethodPrim:    calls Prim(graph, opts.Root).
//	– Otherwise:     returns ErrUnknownMethod.
func Compute(graph *core.Graph, opts MSTOptions) (Result, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root)
	default:
		return Result{}, ErrUnknownMethod
	}
}
