// Package dijkstra_test validates objective-wise shortest paths and the
// reverse lower-bound tables used as Pareto heuristics.
package dijkstra_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paretopath/core"
	"github.com/katalvlaran/paretopath/dijkstra"
	"github.com/katalvlaran/paretopath/point"
)

// triangle: A—B (1,9), B—C (2,9), A—C (5,1), undirected.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		c    point.Point
	}{
		{"A", "B", point.Of(1, 9)},
		{"B", "C", point.Of(2, 9)},
		{"A", "C", point.Of(5, 1)},
	} {
		_, err := g.AddEdge(e.u, e.v, e.c)
		require.NoError(t, err)
	}

	return g
}

func TestDijkstra_Validation(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := triangle(t)
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.Objective(2))
	require.ErrorIs(t, err, dijkstra.ErrBadObjective)

	neg := core.NewGraph()
	_, err = neg.AddEdge("A", "B", point.Of(1, -5))
	require.NoError(t, err)
	_, _, err = dijkstra.Dijkstra(neg, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	require.Panics(t, func() { dijkstra.Objective(-1) })
	require.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	require.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN()) })
	require.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
}

func TestDijkstra_PerObjective(t *testing.T) {
	g := triangle(t)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 3}, dist)
	require.Equal(t, "B", prev["C"])
	require.Equal(t, "", prev["A"])

	dist, prev, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.Objective(1))
	require.NoError(t, err)
	require.Nil(t, prev)
	require.Equal(t, map[string]float64{"A": 0, "B": 10, "C": 1}, dist)
}

func TestDijkstra_CapsAndThresholds(t *testing.T) {
	g := triangle(t)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	require.Equal(t, 1.0, dist["B"])
	require.True(t, math.IsInf(dist["C"], 1))

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	require.Equal(t, 5.0, dist["C"], "B—C is impassable, so C is reached directly")
}

func TestDijkstra_DirectedUnreachable(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", point.Of(1))
	require.NoError(t, err)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("B"))
	require.NoError(t, err)
	require.True(t, math.IsInf(dist["A"], 1))
}

func TestLowerBounds(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range []struct {
		u, v string
		c    point.Point
	}{
		{"S", "A", point.Of(1, 10)},
		{"A", "T", point.Of(1, 10)},
		{"S", "B", point.Of(10, 1)},
		{"B", "T", point.Of(10, 1)},
		{"T", "X", point.Of(1, 1)},
	} {
		_, err := g.AddEdge(e.u, e.v, e.c)
		require.NoError(t, err)
	}
	idx := g.Index()
	tgt, _ := idx.NodeOf("T")

	table, err := dijkstra.LowerBounds(context.Background(), idx, tgt)
	require.NoError(t, err)

	at := func(id string) []float64 {
		n, ok := idx.NodeOf(id)
		require.True(t, ok)
		return table[n]
	}
	require.Equal(t, []float64{2, 2}, at("S"))
	require.Equal(t, []float64{1, 10}, at("A"))
	require.Equal(t, []float64{10, 1}, at("B"))
	require.Equal(t, []float64{0, 0}, at("T"))
	require.True(t, math.IsInf(at("X")[0], 1), "X cannot reach T")

	_, err = dijkstra.LowerBounds(context.Background(), idx, 99)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.LowerBounds(context.Background(), nil, 0)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestLowerBounds_Cancelled(t *testing.T) {
	g := triangle(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dijkstra.LowerBounds(ctx, g.Index(), 0)
	require.ErrorIs(t, err, context.Canceled)
}
