// SPDX-License-Identifier: MIT

// Package unionfind implements the disjoint-set structure used by Kruskal's
// algorithm over Graph Store indices.
//
// Find compresses paths recursively; Union links the root of i's set under
// the root of j's set without rank or size balancing. A DSU belongs to one
// Kruskal run and is not safe for concurrent use.
package unionfind

// DSU is a disjoint-set forest over the indices [0, n).
type DSU struct {
	parent []int
	sets   int
}

// New returns a DSU where every index in [0, n) is its own set.
func New(n int) *DSU {
	d := &DSU{}
	d.Reset(n)

	return d
}

// Reset reinitialises the forest to n singleton sets, reusing storage.
func (d *DSU) Reset(n int) {
	if n < 0 {
		n = 0
	}
	if cap(d.parent) >= n {
		d.parent = d.parent[:n]
	} else {
		d.parent = make([]int, n)
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	d.sets = n
}

// Find returns the representative of i's set and points every node on the
// way directly at it.
func (d *DSU) Find(i int) int {
	if d.parent[i] != i {
		d.parent[i] = d.Find(d.parent[i])
	}

	return d.parent[i]
}

// Union merges the sets of i and j, linking root(i) under root(j).
// It reports false when i and j already share a set.
func (d *DSU) Union(i, j int) bool {
	ri, rj := d.Find(i), d.Find(j)
	if ri == rj {
		return false
	}
	d.parent[ri] = rj
	d.sets--

	return true
}

// Connected reports whether i and j belong to the same set.
func (d *DSU) Connected(i, j int) bool {
	return d.Find(i) == d.Find(j)
}

// Sets returns the number of disjoint sets.
func (d *DSU) Sets() int { return d.sets }

// Len returns the number of elements.
func (d *DSU) Len() int { return len(d.parent) }
