// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/citymst/core"
)

// ExampleGraph demonstrates registration, edge insertion and lookups.
func ExampleGraph() {
	g := core.NewGraph()

	// Cities must exist before roads can reference them.
	g.AddCity("Lviv")
	g.AddCity("Kyiv")
	g.AddCity("Lviv") // duplicate, ignored

	fmt.Println("added:", g.AddEdge("Lviv", "Kyiv", 540))
	fmt.Println("dropped:", !g.AddEdge("Lviv", "Odesa", 790))
	fmt.Println("cities:", g.Cities(), "edges:", g.EdgeCount())
	fmt.Println("index of Kyiv:", g.FindIndex("Kyiv"))

	nbs, _ := g.Neighbors("Kyiv")
	fmt.Printf("Kyiv -> %s (%d)\n", nbs[0].Name, nbs[0].Weight)

	// Output:
	// added: true
	// dropped: true
	// cities: [Lviv Kyiv] edges: 1
	// index of Kyiv: 1
	// Kyiv -> Lviv (540)
}
