// SPDX-License-Identifier: MIT
package gen

import (
	"fmt"

	"github.com/katalvlaran/citymst/core"
)

// Constructor applies a deterministic mutation to g using the resolved config.
type Constructor func(g *core.Graph, cfg config) error

// Build creates a store with gopts, resolves opts and applies cons in order.
// Constructor errors are wrapped with "Build: %w".
func Build(gopts []core.GraphOption, opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// Path builds the chain City0 - City1 - ... - City(n-1) (n ≥ 1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("Path: n=%d < 1: %w", n, ErrTooFewCities)
		}
		if err := addCities(g, cfg, n); err != nil {
			return fmt.Errorf("Path: %w", err)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, i-1, i); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		return nil
	}
}

// Cycle builds a ring of n cities (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 3 {
			return fmt.Errorf("Cycle: n=%d < 3: %w", n, ErrTooFewCities)
		}
		if err := addCities(g, cfg, n); err != nil {
			return fmt.Errorf("Cycle: %w", err)
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, i, (i+1)%n); err != nil {
				return fmt.Errorf("Cycle: %w", err)
			}
		}

		return nil
	}
}

// Star connects City0 to every other city (n ≥ 2).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("Star: n=%d < 2: %w", n, ErrTooFewCities)
		}
		if err := addCities(g, cfg, n); err != nil {
			return fmt.Errorf("Star: %w", err)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, 0, i); err != nil {
				return fmt.Errorf("Star: %w", err)
			}
		}

		return nil
	}
}

// Complete connects every pair of n cities (n ≥ 1), pairs in (i asc, j asc) order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d < 1: %w", n, ErrTooFewCities)
		}
		if err := addCities(g, cfg, n); err != nil {
			return fmt.Errorf("Complete: %w", err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, i, j); err != nil {
					return fmt.Errorf("Complete: %w", err)
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighbourhood grid; city i sits at (i/cols, i%cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewCities)
		}
		if err := addCities(g, cfg, rows*cols); err != nil {
			return fmt.Errorf("Grid: %w", err)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := addEdge(g, cfg, u, u+1); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, u, u+cols); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse includes each unordered pair {i<j} independently with
// probability p. An RNG is required for 0 < p < 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < 1: %w", n, ErrTooFewCities)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		if err := addCities(g, cfg, n); err != nil {
			return fmt.Errorf("RandomSparse: %w", err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < 1 && (p == 0 || cfg.rng.Float64() >= p) {
					continue
				}
				if err := addEdge(g, cfg, i, j); err != nil {
					return fmt.Errorf("RandomSparse: %w", err)
				}
			}
		}

		return nil
	}
}

// Connected builds a guaranteed-connected network: a Path over n cities plus
// extra random roads between distinct cities (parallel roads allowed).
// Requires an RNG when extra > 0.
func Connected(n, extra int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if extra < 0 {
			return fmt.Errorf("Connected: extra=%d < 0: %w", extra, ErrTooFewCities)
		}
		if extra > 0 && cfg.rng == nil {
			return fmt.Errorf("Connected: %w", ErrNeedRandSource)
		}
		if n < 2 && extra > 0 {
			return fmt.Errorf("Connected: n=%d < 2 with extra roads: %w", n, ErrTooFewCities)
		}
		if err := Path(n)(g, cfg); err != nil {
			return fmt.Errorf("Connected: %w", err)
		}
		for added := 0; added < extra; {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v {
				continue
			}
			if err := addEdge(g, cfg, u, v); err != nil {
				return fmt.Errorf("Connected: %w", err)
			}
			added++
		}

		return nil
	}
}

// addCities registers cfg.nameFn(0..n-1). Already present names are fine;
// a full registry is not.
func addCities(g *core.Graph, cfg config, n int) error {
	for i := 0; i < n; i++ {
		name := cfg.nameFn(i)
		if idx, _ := g.AddCity(name); idx == core.NotFound {
			return fmt.Errorf("AddCity(%s): %w", name, ErrConstructFailed)
		}
	}

	return nil
}

// addEdge connects the i-th and j-th generated names with a drawn weight.
func addEdge(g *core.Graph, cfg config, i, j int) error {
	u, v := cfg.nameFn(i), cfg.nameFn(j)
	if !g.AddEdge(u, v, cfg.weight()) {
		return fmt.Errorf("AddEdge(%s, %s): %w", u, v, ErrConstructFailed)
	}

	return nil
}
