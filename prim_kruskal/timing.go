// SPDX-License-Identifier: MIT
package prim_kruskal

import (
	"time"

	"github.com/google/uuid"
)

// measure runs body and returns its wall-clock duration. The clock starts
// immediately before body and stops as soon as it returns.
func measure(body func()) time.Duration {
	start := time.Now()
	body()

	return time.Since(start)
}

// newResult prepares the bookkeeping fields shared by both engines.
func newResult(algorithm, start string, cities int) Result {
	return Result{
		Algorithm: algorithm,
		RunID:     uuid.NewString(),
		Start:     start,
		Cities:    cities,
		Edges:     []TreeEdge{},
	}
}
