package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paretopath/builder"
	"github.com/katalvlaran/paretopath/core"
	"github.com/katalvlaran/paretopath/point"
)

var directed = []core.GraphOption{core.WithDirected(true)}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		gopts  []core.GraphOption
		bopts  []builder.BuilderOption
		ctor   builder.Constructor
		wantV  int
		wantE  int
		sample func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", gopts: directed, ctor: builder.Path(4),
			wantV: 4, wantE: 3,
			sample: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("0", "1"))
				assert.True(t, g.HasEdge("2", "3"))
				assert.False(t, g.HasEdge("1", "0"))
			},
		},
		{
			name: "Path(3) symbol IDs", gopts: directed,
			bopts: []builder.BuilderOption{builder.WithSymbolIDs()},
			ctor:  builder.Path(3), wantV: 3, wantE: 2,
			sample: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
			},
		},
		{
			name: "Grid(2,3) undirected", ctor: builder.Grid(2, 3),
			wantV: 6, wantE: 7,
			sample: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("0,0", "0,1"))
				assert.True(t, g.HasEdge("0,1", "0,0"), "undirected edge is traversable both ways")
				assert.True(t, g.HasEdge("0,2", "1,2"))
			},
		},
		{
			name: "Grid(2,3) directed mirrors", gopts: directed, ctor: builder.Grid(2, 3),
			wantV: 6, wantE: 14,
			sample: func(t *testing.T, g *core.Graph) {
				for _, e := range g.Edges() {
					back := false
					for _, f := range g.Edges() {
						if f.From == e.To && f.To == e.From {
							back = true
							assert.Equal(t, e.Cost, f.Cost)
						}
					}
					assert.True(t, back, "missing reverse of %s→%s", e.From, e.To)
				}
			},
		},
		{
			name: "Grid(1,1)", ctor: builder.Grid(1, 1),
			wantV: 1, wantE: 0,
		},
		{
			name: "RandomSparse(5,1) undirected complete", ctor: builder.RandomSparse(5, 1),
			wantV: 5, wantE: 10,
		},
		{
			name: "RandomSparse(4,1) directed complete", gopts: directed, ctor: builder.RandomSparse(4, 1),
			wantV: 4, wantE: 12,
		},
		{
			name: "RandomSparse(6,0) empty", ctor: builder.RandomSparse(6, 0),
			wantV: 6, wantE: 0,
		},
		{
			name: "Layered(3,2,1)", gopts: directed, ctor: builder.Layered(3, 2, 1),
			wantV: 8, wantE: 2 + 2*4 + 2,
			sample: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(builder.LayeredSource, builder.LayerID(0, 1)))
				assert.True(t, g.HasEdge(builder.LayerID(0, 1), builder.LayerID(1, 0)))
				assert.True(t, g.HasEdge(builder.LayerID(2, 0), builder.LayeredSink))
			},
		},
		{
			name: "Layered(2,3,0) straight lanes", gopts: directed, ctor: builder.Layered(2, 3, 0),
			wantV: 8, wantE: 3 + 3 + 3,
			sample: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(builder.LayerID(0, 2), builder.LayerID(1, 2)))
				assert.False(t, g.HasEdge(builder.LayerID(0, 2), builder.LayerID(1, 0)))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.gopts, tc.bopts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for _, e := range g.Edges() {
				assert.Equal(t, point.Of(1, 1), e.Cost, "default cost is the all-ones bicriteria vector")
			}
			if tc.sample != nil {
				tc.sample(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(3,1.5)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(3,.5) no rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"Layered(0,2,1)", builder.Layered(0, 2, 1), builder.ErrTooFewVertices},
		{"Layered(2,2,-1)", builder.Layered(2, 2, -1), builder.ErrInvalidProbability},
		{"Layered(2,2,.3) no rng", builder.Layered(2, 2, 0.3), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(directed, nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuilders_DimensionMismatch(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithDimension(3)},
		[]builder.BuilderOption{builder.WithDimension(2)},
		builder.Path(3),
	)
	require.ErrorIs(t, err, core.ErrCostDimension)
}

func TestBuilders_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(directed,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithDimension(3), builder.WithIntCost(0, 9)},
			builder.RandomSparse(12, 0.3),
			builder.Layered(3, 3, 0.5),
		)
		require.NoError(t, err)
		return g
	}

	a, b := build(11), build(11)
	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	ea, eb := a.Edges(), b.Edges()
	for i := range ea {
		assert.Equal(t, ea[i].From, eb[i].From)
		assert.Equal(t, ea[i].To, eb[i].To)
		assert.Equal(t, ea[i].Cost, eb[i].Cost)
		assert.Equal(t, 3, ea[i].Cost.Dim())
	}
}

func TestCostFns(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))

	assert.Equal(t, point.Of(1, 1, 1), builder.DefaultCostFn(rng, 3))
	assert.Equal(t, point.Of(2, 5), builder.ConstantCostFn(point.Of(2, 5))(rng, 2))

	u := builder.UniformCostFn(2, 4)
	for i := 0; i < 50; i++ {
		c := u(rng, 2)
		for _, v := range c {
			assert.GreaterOrEqual(t, v, 2.0)
			assert.Less(t, v, 4.0)
		}
	}
	assert.Equal(t, point.Of(1, 1), u(nil, 2), "nil rng falls back to the default cost")

	n := builder.IntCostFn(3, 5)
	for i := 0; i < 50; i++ {
		for _, v := range n(rng, 4) {
			assert.Contains(t, []float64{3, 4, 5}, v)
		}
	}

	a := builder.AntiCorrelatedCostFn(100)
	for i := 0; i < 50; i++ {
		c := a(rng, 2)
		assert.True(t, c.IsNonNegative())
		assert.InDelta(t, 100, c.Sum(), 1.0)
	}
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithDimension(0) })
	assert.Panics(t, func() { builder.WithCostFn(nil) })
	assert.Panics(t, func() { builder.ConstantCostFn(point.Of(-1, 2)) })
	assert.Panics(t, func() { builder.ConstantCostFn(nil) })
	assert.Panics(t, func() { builder.UniformCostFn(3, 1) })
	assert.Panics(t, func() { builder.UniformCostFn(-1, 1) })
	assert.Panics(t, func() { builder.IntCostFn(5, 4) })
	assert.Panics(t, func() { builder.AntiCorrelatedCostFn(0) })
}
