// SPDX-License-Identifier: MIT
package gen

import "errors"

// ErrTooFewCities indicates a size parameter below the constructor's minimum.
var ErrTooFewCities = errors.New("gen: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("gen: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("gen: rng is required")

// ErrConstructFailed indicates the store refused a city or an edge (capacity bound reached)
// or a nil constructor was supplied.
var ErrConstructFailed = errors.New("gen: construction failed")
