// SPDX-License-Identifier: MIT
package prim_kruskal_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/citymst/core"
	"github.com/katalvlaran/citymst/gen"
	"github.com/katalvlaran/citymst/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGraph registers every endpoint of edges (in order of appearance) and
// then stores the edges, the way the file loader does.
func newGraph(edges ...core.Edge) *core.Graph {
	g := core.NewGraph()
	for _, e := range edges {
		g.AddCity(e.Src)
		g.AddCity(e.Dest)
		g.AddEdge(e.Src, e.Dest, e.Weight)
	}

	return g
}

func edge(src, dest string, w int64) core.Edge {
	return core.Edge{Src: src, Dest: dest, Weight: w}
}

// buildTriangle is the load round-trip fixture A#B#4, B#C#2, A#C#5.
func buildTriangle() *core.Graph {
	return newGraph(edge("A", "B", 4), edge("B", "C", 2), edge("A", "C", 5))
}

// buildMediumGraph creates a connected network with n cities and edgesCount roads.
func buildMediumGraph(n, edgesCount int) *core.Graph {
	g, err := gen.Build(nil,
		[]gen.Option{gen.WithSeed(42), gen.WithNameScheme(func(i int) string { return fmt.Sprintf("V%d", i) })},
		gen.Connected(n, edgesCount-(n-1)))
	if err != nil {
		panic(err)
	}

	return g
}

// undirectedSet normalises edges to "lo-hi" keys.
func undirectedSet(edges []prim_kruskal.TreeEdge) map[string]bool {
	names := make(map[string]bool, len(edges))
	for _, e := range edges {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		names[fmt.Sprintf("%s-%s", u, v)] = true
	}

	return names
}

func TestEmptyGraph(t *testing.T) {
	g := core.NewGraph()

	_, err := prim_kruskal.Prim(g, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyGraph)

	_, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyGraph)

	_, err = prim_kruskal.Prim(nil, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyGraph)
	_, err = prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyGraph)
}

func TestPrim_CityNotFound_NoMutation(t *testing.T) {
	g := buildTriangle()
	before := g.Edges()

	_, err := prim_kruskal.Prim(g, "Z")
	assert.ErrorIs(t, err, prim_kruskal.ErrCityNotFound)

	_, err = prim_kruskal.Prim(g, "")
	assert.ErrorIs(t, err, prim_kruskal.ErrCityNotFound)

	assert.Equal(t, 3, g.CityCount())
	assert.Equal(t, before, g.Edges())
}

func TestPrim_Triangle(t *testing.T) {
	res, err := prim_kruskal.Prim(buildTriangle(), "A")
	require.NoError(t, err)

	assert.Equal(t, prim_kruskal.MethodPrim, res.Algorithm)
	assert.Equal(t, "A", res.Start)
	assert.Equal(t, int64(6), res.TotalCost)
	assert.False(t, res.Disconnected)
	assert.NoError(t, res.Warning())
	assert.NotEmpty(t, res.RunID)
	// Acceptance order: A-B(4) first, then B-C(2) becomes reachable.
	assert.Equal(t, []prim_kruskal.TreeEdge{
		{From: "A", To: "B", Weight: 4},
		{From: "B", To: "C", Weight: 2},
	}, res.Edges)
	assert.GreaterOrEqual(t, res.ElapsedSeconds(), 0.0)
}

func TestKruskal_Triangle(t *testing.T) {
	g := buildTriangle()
	res, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	assert.Equal(t, prim_kruskal.MethodKruskal, res.Algorithm)
	assert.Empty(t, res.Start)
	assert.Equal(t, int64(6), res.TotalCost)
	assert.Equal(t, []prim_kruskal.TreeEdge{
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "B", Weight: 4},
	}, res.Edges)

	// The store's edge list keeps insertion order.
	assert.Equal(t, "A", g.Edges()[0].Src)
	assert.Equal(t, int64(4), g.Edges()[0].Weight)
}

func TestSingleCity(t *testing.T) {
	g := core.NewGraph()
	g.AddCity("X")

	resK, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, resK.Edges)
	assert.Zero(t, resK.TotalCost)
	assert.False(t, resK.Disconnected)

	resP, err := prim_kruskal.Prim(g, "X")
	require.NoError(t, err)
	assert.Empty(t, resP.Edges)
	assert.False(t, resP.Disconnected)
}

func TestDisconnected(t *testing.T) {
	// Two components: {A,B} and {C,D}.
	g := newGraph(edge("A", "B", 1), edge("C", "D", 2))

	resK, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.True(t, resK.Disconnected)
	assert.ErrorIs(t, resK.Warning(), prim_kruskal.ErrDisconnected)
	assert.Len(t, resK.Edges, 2) // spanning forest
	assert.Equal(t, int64(3), resK.TotalCost)

	resP, err := prim_kruskal.Prim(g, "C")
	require.NoError(t, err)
	assert.True(t, resP.Disconnected)
	assert.Equal(t, []prim_kruskal.TreeEdge{{From: "C", To: "D", Weight: 2}}, resP.Edges)
}

func TestTwoIsolatedCities(t *testing.T) {
	g := core.NewGraph()
	g.AddCity("A")
	g.AddCity("B")

	resK, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.True(t, resK.Disconnected)
	assert.Empty(t, resK.Edges)

	resP, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.True(t, resP.Disconnected)
}

func TestParallelEdgesAndLoops(t *testing.T) {
	g := newGraph(edge("A", "B", 5), edge("A", "B", 1), edge("A", "A", 0))

	resK, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resK.TotalCost)
	assert.Len(t, resK.Edges, 1)

	resP, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resP.TotalCost)
	assert.Len(t, resP.Edges, 1)
}

func TestEqualWeights_SameCost(t *testing.T) {
	g, err := gen.Build(nil, []gen.Option{gen.WithWeightRange(3, 3)}, gen.Complete(6))
	require.NoError(t, err)

	resK, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	resP, err := prim_kruskal.Prim(g, gen.DefaultName(3))
	require.NoError(t, err)

	assert.Equal(t, int64(15), resK.TotalCost)
	assert.Equal(t, resK.TotalCost, resP.TotalCost)
}

func TestComparison_MediumGraph(t *testing.T) {
	g := buildMediumGraph(50, 200)

	resK, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, resK.Edges, g.CityCount()-1)
	assert.False(t, resK.Disconnected)

	for _, root := range []string{"V0", "V17", "V49"} {
		resP, err := prim_kruskal.Prim(g, root)
		require.NoError(t, err)
		assert.Len(t, resP.Edges, g.CityCount()-1)
		assert.Equal(t, resK.TotalCost, resP.TotalCost, "root %s", root)
	}
}

// TestEdgeCountBound checks both engines never accept more than |V|-1 edges,
// over several random topologies, and that Disconnected matches the count.
func TestEdgeCountBound(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := gen.Build(nil, []gen.Option{gen.WithSeed(seed)}, gen.RandomSparse(15, 0.15))
		require.NoError(t, err)
		n := g.CityCount()

		resK, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(resK.Edges), n-1)
		assert.Equal(t, len(resK.Edges) < n-1, resK.Disconnected)

		resP, err := prim_kruskal.Prim(g, gen.DefaultName(0))
		require.NoError(t, err)
		assert.LessOrEqual(t, len(resP.Edges), n-1)
		if !resK.Disconnected {
			assert.Equal(t, resK.TotalCost, resP.TotalCost, "seed %d", seed)
		}
	}
}

func TestPrim_TreeIsAcyclicAndSpanning(t *testing.T) {
	g := buildMediumGraph(30, 90)
	res, err := prim_kruskal.Prim(g, "V5")
	require.NoError(t, err)

	seen := map[string]bool{"V5": true}
	for _, e := range res.Edges {
		assert.True(t, seen[e.From], "edge %v leaves an unvisited city", e)
		assert.False(t, seen[e.To], "edge %v closes a cycle", e)
		seen[e.To] = true
	}
	assert.Len(t, seen, g.CityCount())
}

func TestCompute(t *testing.T) {
	g := buildTriangle()

	res, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.MethodKruskal, res.Algorithm)

	res, err = prim_kruskal.Compute(g, prim_kruskal.NewOptions(
		prim_kruskal.WithMethod(prim_kruskal.MethodPrim),
		prim_kruskal.WithRoot("C"),
	))
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.MethodPrim, res.Algorithm)
	assert.Equal(t, int64(6), res.TotalCost)

	_, err = prim_kruskal.Compute(g, prim_kruskal.NewOptions(prim_kruskal.WithMethod("boruvka")))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestCompare(t *testing.T) {
	cmp, err := prim_kruskal.Compare(buildTriangle(), "A")
	require.NoError(t, err)
	assert.True(t, cmp.CostsMatch())
	assert.Equal(t, int64(6), cmp.Prim.TotalCost)
	assert.NotEqual(t, cmp.Prim.RunID, cmp.Kruskal.RunID)
	assert.GreaterOrEqual(t, cmp.Speedup(), 0.0)

	// Unknown start: Kruskal still runs.
	cmp, err = prim_kruskal.Compare(buildTriangle(), "Z")
	assert.ErrorIs(t, err, prim_kruskal.ErrCityNotFound)
	assert.Equal(t, int64(6), cmp.Kruskal.TotalCost)

	_, err = prim_kruskal.Compare(core.NewGraph(), "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyGraph)
}

func TestComparison_Faster(t *testing.T) {
	c := prim_kruskal.Comparison{
		Prim:    prim_kruskal.Result{Elapsed: 2},
		Kruskal: prim_kruskal.Result{Elapsed: 4},
	}
	assert.Equal(t, prim_kruskal.MethodPrim, c.Faster())
	assert.InDelta(t, 2.0, c.Speedup(), 1e-9)

	c.Prim.Elapsed = 8
	assert.Equal(t, prim_kruskal.MethodKruskal, c.Faster())

	c.Prim.Elapsed = 4
	assert.Empty(t, c.Faster())
}
