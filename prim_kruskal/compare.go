// SPDX-License-Identifier: MIT
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/citymst/core"
)

// Comparison holds one Prim run and one Kruskal run over the same store.
type Comparison struct {
	Prim    Result `json:"prim"`
	Kruskal Result `json:"kruskal"`
}

// Compare runs Prim from start, then Kruskal. Kruskal still runs when Prim
// fails with ErrCityNotFound; ErrEmptyGraph aborts both.
func Compare(graph *core.Graph, start string) (Comparison, error) {
	var cmp Comparison

	p, perr := Prim(graph, start)
	if errors.Is(perr, ErrEmptyGraph) {
		return cmp, perr
	}
	k, kerr := Kruskal(graph)
	if kerr != nil {
		return cmp, kerr
	}
	cmp.Prim, cmp.Kruskal = p, k

	return cmp, perr
}

// CostsMatch reports whether both engines produced the same total cost.
// For a connected network this always holds.
func (c Comparison) CostsMatch() bool {
	return c.Prim.TotalCost == c.Kruskal.TotalCost
}

// Faster returns the name of the quicker engine, or "" on a tie.
func (c Comparison) Faster() string {
	switch {
	case c.Prim.Elapsed < c.Kruskal.Elapsed:
		return MethodPrim
	case c.Kruskal.Elapsed < c.Prim.Elapsed:
		return MethodKruskal
	default:
		return ""
	}
}

// Speedup returns slower/faster elapsed time; 0 when either run took no measurable time.
func (c Comparison) Speedup() float64 {
	p, k := c.Prim.Elapsed, c.Kruskal.Elapsed
	if p <= 0 || k <= 0 {
		return 0
	}
	if p > k {
		return float64(p) / float64(k)
	}

	return float64(k) / float64(p)
}
