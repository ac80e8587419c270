// SPDX-License-Identifier: MIT

// File: methods_vertices.go
// Role: City registry lifecycle & queries.
//
// Determinism:
//   - Cities() returns names in registration order; indices never change until Clear.
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
package core

// AddCity registers a city if it is not already present and the registry has
// room.
//
// Behavior highlights:
//   - Idempotent: a duplicate name returns the existing index with added=false.
//   - An empty name or a full registry is a silent no-op (NotFound, false).
//
// Complexity: O(V) for the duplicate scan, O(1) amortized insert.
func (g *Graph) AddCity(name string) (int, bool) {
	if name == "" {
		return NotFound, false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if idx := g.findIndexLocked(name); idx != NotFound {
		return idx, false
	}
	if g.maxCities > 0 && len(g.cities) >= g.maxCities {
		return NotFound, false
	}

	g.cities = append(g.cities, City{Name: name})

	return len(g.cities) - 1, true
}

// FindIndex returns the registry index of name, or NotFound.
// Complexity: O(V) linear scan.
func (g *Graph) FindIndex(name string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.findIndexLocked(name)
}

// HasCity reports whether name is registered.
func (g *Graph) HasCity(name string) bool {
	return g.FindIndex(name) != NotFound
}

// CityName returns the name registered at index i.
func (g *Graph) CityName(i int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.cities) {
		return "", ErrIndexOutOfRange
	}

	return g.cities[i].Name, nil
}

// CityCount returns the number of registered cities.
func (g *Graph) CityCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.cities)
}

// Cities returns all city names in registration order.
// Complexity: O(V).
func (g *Graph) Cities() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.cities))
	for i := range g.cities {
		out[i] = g.cities[i].Name
	}

	return out
}

// Neighbors returns a copy of the adjacency list of the named city in
// insertion order.
//
// Errors:
//   - ErrCityNotFound: name is not registered.
func (g *Graph) Neighbors(name string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx := g.findIndexLocked(name)
	if idx == NotFound {
		return nil, ErrCityNotFound
	}
	src := g.cities[idx].Neighbors
	out := make([]Neighbor, len(src))
	copy(out, src)

	return out, nil
}

// findIndexLocked is the lock-free scan used under an already held lock.
func (g *Graph) findIndexLocked(name string) int {
	for i := range g.cities {
		if g.cities[i].Name == name {
			return i
		}
	}

	return NotFound
}
