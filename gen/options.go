// SPDX-License-Identifier: MIT
package gen

import (
	"fmt"
	"math/rand"
)

// Default weight range for generated roads, inclusive.
const (
	DefaultMinWeight int64 = 1
	DefaultMaxWeight int64 = 100
)

// Option customizes the generator configuration.
type Option func(*config)

// config is the resolved, immutable generator configuration.
type config struct {
	nameFn    func(int) string
	rng       *rand.Rand
	minWeight int64
	maxWeight int64
}

// DefaultName is the default city name scheme: "City0", "City1", ...
func DefaultName(i int) string { return fmt.Sprintf("City%d", i) }

// WithNameScheme sets the city name generator. Panics on nil.
func WithNameScheme(fn func(int) string) Option {
	if fn == nil {
		panic("gen: WithNameScheme(nil)")
	}
	return func(c *config) { c.nameFn = fn }
}

// WithSeed seeds a private RNG for reproducible output.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gen: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithWeightRange sets the inclusive road length range.
// Panics unless 0 <= min <= max.
func WithWeightRange(min, max int64) Option {
	if min < 0 || max < min {
		panic(fmt.Sprintf("gen: WithWeightRange requires 0 <= min <= max, got %d, %d", min, max))
	}
	return func(c *config) { c.minWeight, c.maxWeight = min, max }
}

func newConfig(opts ...Option) config {
	c := config{
		nameFn:    DefaultName,
		minWeight: DefaultMinWeight,
		maxWeight: DefaultMaxWeight,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// weight draws a road length; without an RNG it returns minWeight.
func (c config) weight() int64 {
	if c.rng == nil || c.maxWeight == c.minWeight {
		return c.minWeight
	}

	return c.minWeight + c.rng.Int63n(c.maxWeight-c.minWeight+1)
}
