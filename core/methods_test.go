// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/katalvlaran/citymst/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Common city names used across core tests.
const (
	CityA = "A"
	CityB = "B"
	CityC = "C"
	CityX = "X"
)

// buildTriangle registers A, B, C and the roads A-B(4), B-C(2), A-C(5).
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, name := range []string{CityA, CityB, CityC} {
		_, added := g.AddCity(name)
		require.True(t, added)
	}
	require.True(t, g.AddEdge(CityA, CityB, 4))
	require.True(t, g.AddEdge(CityB, CityC, 2))
	require.True(t, g.AddEdge(CityA, CityC, 5))

	return g
}

func TestAddCity_DuplicateKeepsIndex(t *testing.T) {
	g := core.NewGraph()

	idx, added := g.AddCity(CityA)
	require.True(t, added)
	require.Equal(t, 0, idx)

	again, added := g.AddCity(CityA)
	assert.False(t, added)
	assert.Equal(t, idx, again)
	assert.Equal(t, 1, g.CityCount())
	assert.Equal(t, idx, g.FindIndex(CityA))
}

func TestAddCity_EmptyNameIgnored(t *testing.T) {
	g := core.NewGraph()
	idx, added := g.AddCity("")
	assert.False(t, added)
	assert.Equal(t, core.NotFound, idx)
	assert.Zero(t, g.CityCount())
}

func TestAddCity_CapacityBound(t *testing.T) {
	g := core.NewGraph(core.WithMaxCities(2))
	g.AddCity(CityA)
	g.AddCity(CityB)

	idx, added := g.AddCity(CityC)
	assert.False(t, added)
	assert.Equal(t, core.NotFound, idx)
	assert.Equal(t, 2, g.CityCount())
	assert.False(t, g.HasCity(CityC))

	// Duplicates of registered cities still resolve when full.
	idx, added = g.AddCity(CityB)
	assert.False(t, added)
	assert.Equal(t, 1, idx)
}

func TestFindIndex_InsertionOrder(t *testing.T) {
	g := buildTriangle(t)
	assert.Equal(t, 0, g.FindIndex(CityA))
	assert.Equal(t, 1, g.FindIndex(CityB))
	assert.Equal(t, 2, g.FindIndex(CityC))
	assert.Equal(t, core.NotFound, g.FindIndex(CityX))
	assert.Equal(t, []string{CityA, CityB, CityC}, g.Cities())

	name, err := g.CityName(1)
	require.NoError(t, err)
	assert.Equal(t, CityB, name)

	_, err = g.CityName(3)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestAddEdge_UnknownEndpointDropped(t *testing.T) {
	g := core.NewGraph()
	g.AddCity(CityA)

	assert.False(t, g.AddEdge(CityA, CityX, 3))
	assert.False(t, g.AddEdge(CityX, CityA, 3))
	assert.Zero(t, g.EdgeCount())

	nbs, err := g.Neighbors(CityA)
	require.NoError(t, err)
	assert.Empty(t, nbs)
}

func TestAddEdge_NegativeWeightDropped(t *testing.T) {
	g := core.NewGraph()
	g.AddCity(CityA)
	g.AddCity(CityB)
	assert.False(t, g.AddEdge(CityA, CityB, -1))
	assert.Zero(t, g.EdgeCount())
}

func TestAddEdge_SymmetricAdjacency(t *testing.T) {
	g := buildTriangle(t)
	require.Equal(t, 3, g.EdgeCount())

	nbA, err := g.Neighbors(CityA)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{
		{Name: CityB, Index: 1, Weight: 4},
		{Name: CityC, Index: 2, Weight: 5},
	}, nbA)

	// Every src→dest entry has a dest→src twin with the same weight.
	for _, e := range g.Edges() {
		fwd, err := g.Neighbors(e.Src)
		require.NoError(t, err)
		back, err := g.Neighbors(e.Dest)
		require.NoError(t, err)
		assert.Contains(t, fwd, core.Neighbor{Name: e.Dest, Index: e.DestIndex, Weight: e.Weight})
		assert.Contains(t, back, core.Neighbor{Name: e.Src, Index: e.SrcIndex, Weight: e.Weight})
	}

	assert.Equal(t, int64(11), g.TotalWeight())
}

func TestAddEdge_CapacityBound(t *testing.T) {
	g := core.NewGraph(core.WithMaxEdges(1))
	g.AddCity(CityA)
	g.AddCity(CityB)
	require.True(t, g.AddEdge(CityA, CityB, 1))
	assert.False(t, g.AddEdge(CityA, CityB, 2))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.MaxEdges())
}

func TestNeighbors_UnknownCity(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors(CityX)
	assert.ErrorIs(t, err, core.ErrCityNotFound)
}

func TestEdges_ReturnsCopy(t *testing.T) {
	g := buildTriangle(t)
	edges := g.Edges()
	edges[0].Weight = 100
	assert.Equal(t, int64(4), g.Edges()[0].Weight)
}

func TestClear(t *testing.T) {
	g := core.NewGraph(core.WithMaxCities(10))
	g.Clear() // empty store is fine

	g.AddCity(CityA)
	g.AddCity(CityB)
	g.AddEdge(CityA, CityB, 7)
	g.Clear()

	assert.Zero(t, g.CityCount())
	assert.Zero(t, g.EdgeCount())
	assert.False(t, g.HasCity(CityA))
	assert.Equal(t, 10, g.MaxCities())

	// Indices restart after a clear.
	idx, added := g.AddCity(CityB)
	assert.True(t, added)
	assert.Zero(t, idx)
}

func TestClone_Independent(t *testing.T) {
	g := buildTriangle(t)
	c := g.Clone()
	g.Clear()

	assert.Equal(t, 3, c.CityCount())
	assert.Equal(t, 3, c.EdgeCount())
	nb, err := c.Neighbors(CityB)
	require.NoError(t, err)
	assert.Len(t, nb, 2)
}

func TestRead_View(t *testing.T) {
	g := buildTriangle(t)
	g.Read(func(r core.Reader) {
		assert.Equal(t, 3, r.CityCount())
		assert.Equal(t, CityC, r.CityName(2))
		assert.Equal(t, 1, r.FindIndex(CityB))
		assert.Len(t, r.NeighborsAt(1), 2)
		assert.Len(t, r.EdgeList(), 3)
	})
}
