// SPDX-License-Identifier: MIT

// Package gen builds deterministic synthetic city networks for benchmarks,
// tests and the `citymst generate` command.
//
// One orchestrator, Build(gopts, opts, cons...), creates a core.Graph,
// resolves the generator configuration and applies the constructors in order.
// Constructors register cities through the configured name scheme and draw
// integer road lengths from the configured weight range.
//
// Determinism: the same options, seed and constructor order always produce
// the same store, city order and edge order.
//
//	g, err := gen.Build(nil, []gen.Option{gen.WithSeed(42)}, gen.Connected(500, 1500))
package gen
