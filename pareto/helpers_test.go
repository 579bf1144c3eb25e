package pareto_test

import (
	"context"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paretopath/builder"
	"github.com/katalvlaran/paretopath/core"
	"github.com/katalvlaran/paretopath/pareto"
	"github.com/katalvlaran/paretopath/point"
)

// fixture is a dense snapshot with resolved endpoints.
type fixture struct {
	name     string
	idx      *core.Index
	src, dst int
	dim      int
}

// variant is one engine configuration expected to reproduce the exact frontier.
type variant struct {
	name string
	opts []pareto.Option
}

// exactVariants lists every scheduler/mode combination valid for dim.
func exactVariants(dim int) []variant {
	vs := []variant{
		{"fifo", nil},
		{"fifo/tree", []pareto.Option{pareto.WithTreeDeletion()}},
		{"parallel/1", []pareto.Option{pareto.WithScheduler(pareto.Parallel), pareto.WithThreads(1)}},
		{"parallel/2", []pareto.Option{pareto.WithScheduler(pareto.Parallel), pareto.WithThreads(2)}},
		{"parallel/8", []pareto.Option{pareto.WithScheduler(pareto.Parallel), pareto.WithThreads(8)}},
		{"label-setting", []pareto.Option{pareto.WithScheduler(pareto.LabelSetting)}},
	}
	if dim == 2 {
		vs = append(vs,
			variant{"fifo/bicriteria", []pareto.Option{pareto.WithBicriteria()}},
			variant{"fifo/bicriteria/tree", []pareto.Option{pareto.WithBicriteria(), pareto.WithTreeDeletion()}},
			variant{"parallel/bicriteria", []pareto.Option{pareto.WithBicriteria(), pareto.WithScheduler(pareto.Parallel), pareto.WithThreads(4)}},
		)
	}

	return vs
}

// build materializes a graph and resolves its endpoints.
func build(t testing.TB, name string, gopts []core.GraphOption, bopts []builder.BuilderOption, ctor builder.Constructor, src, dst string, dim int) fixture {
	t.Helper()
	g, err := builder.BuildGraph(gopts, bopts, ctor)
	require.NoError(t, err)
	idx := g.Index()
	s, ok := idx.NodeOf(src)
	require.True(t, ok, "missing source %q", src)
	d, ok := idx.NodeOf(dst)
	require.True(t, ok, "missing target %q", dst)

	return fixture{name: name, idx: idx, src: s, dst: d, dim: dim}
}

// randomFixtures returns small seeded instances whose path space is still
// enumerable: directed and undirected sparse graphs, grids and layered DAGs.
func randomFixtures(t testing.TB, dim int) []fixture {
	t.Helper()
	var out []fixture
	directed := []core.GraphOption{core.WithDirected(true)}
	for seed := int64(1); seed <= 12; seed++ {
		costs := []builder.BuilderOption{builder.WithSeed(seed), builder.WithDimension(dim), builder.WithIntCost(1, 6)}
		out = append(out,
			build(t, "sparse/directed/"+strconv.FormatInt(seed, 10), directed, costs,
				builder.RandomSparse(8, 0.35), "0", "7", dim),
			build(t, "sparse/undirected/"+strconv.FormatInt(seed, 10), nil, costs,
				builder.RandomSparse(7, 0.4), "0", "6", dim),
		)
	}
	for seed := int64(1); seed <= 4; seed++ {
		anti := []builder.BuilderOption{builder.WithSeed(seed), builder.WithDimension(dim), builder.WithAntiCorrelatedCost(20)}
		ints := []builder.BuilderOption{builder.WithSeed(seed), builder.WithDimension(dim), builder.WithIntCost(1, 9)}
		out = append(out,
			build(t, "grid/"+strconv.FormatInt(seed, 10), nil, ints,
				builder.Grid(3, 3), builder.GridID(0, 0), builder.GridID(2, 2), dim),
			build(t, "layered/"+strconv.FormatInt(seed, 10), directed, anti,
				builder.Layered(3, 3, 0.5), builder.LayeredSource, builder.LayeredSink, dim),
		)
	}

	return out
}

// run solves f with the snapshot's own incidence and fails the test on error.
func run(t testing.TB, f fixture, opts ...pareto.Option) *pareto.Result {
	t.Helper()
	base := []pareto.Option{pareto.WithDirected(false), pareto.WithDimension(f.dim)}
	res, err := pareto.Solve(context.Background(), f.idx, f.idx.Cost, f.src, f.dst, append(base, opts...)...)
	require.NoError(t, err)

	return res
}

// bruteForce enumerates every simple source→target path of f and returns
// the Pareto set of their costs.
func bruteForce(f fixture) []point.Point {
	var all []point.Point
	onPath := make([]bool, f.idx.NodeCount())
	var walk func(n int, cost point.Point)
	walk = func(n int, cost point.Point) {
		if n == f.dst {
			all = append(all, cost)
			return
		}
		onPath[n] = true
		for _, e := range f.idx.Incident(n) {
			v := f.idx.Other(e, n)
			if onPath[v] {
				continue
			}
			walk(v, cost.Add(f.idx.Cost(e)))
		}
		onPath[n] = false
	}
	walk(f.src, point.New(f.dim))

	return paretoSet(all)
}

// paretoSet keeps one copy of every non-dominated cost, sorted lexicographically.
func paretoSet(costs []point.Point) []point.Point {
	out := []point.Point{}
	for i, c := range costs {
		keep := true
		for j, o := range costs {
			if i == j {
				continue
			}
			if point.Dominates(o, c, 0) || (j < i && point.Equal(o, c, 0)) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, c)
		}
	}
	sortPoints(out)

	return out
}

func sortPoints(ps []point.Point) {
	slices.SortFunc(ps, func(a, b point.Point) int { return point.Compare(a, b, 0) })
}

// costsOf returns the sorted solution costs of res.
func costsOf(res *pareto.Result) []point.Point {
	out := make([]point.Point, 0, len(res.Solutions))
	for _, s := range res.Solutions {
		out = append(out, s.Cost)
	}
	sortPoints(out)

	return out
}

// filterPoints keeps the points satisfying keep.
func filterPoints(ps []point.Point, keep func(point.Point) bool) []point.Point {
	out := []point.Point{}
	for _, p := range ps {
		if keep(p) {
			out = append(out, p)
		}
	}

	return out
}

// isAntichain reports whether no point of ps weakly dominates another.
func isAntichain(ps []point.Point) bool {
	for i := range ps {
		for j := range ps {
			if i != j && point.LessEq(ps[i], ps[j], 0) {
				return false
			}
		}
	}

	return true
}

// requireValidPaths checks that every solution walks from source to target
// over incident edges and that its cost is the sum of those edges.
func requireValidPaths(t testing.TB, f fixture, res *pareto.Result) {
	t.Helper()
	for _, s := range res.Solutions {
		cur := f.src
		sum := point.New(f.dim)
		for _, e := range s.Path {
			require.Contains(t, f.idx.Incident(cur), e, "edge %d is not traversable from node %d", e, cur)
			sum = sum.Add(f.idx.Cost(e))
			cur = f.idx.Other(e, cur)
		}
		require.Equal(t, f.dst, cur, "path %v does not end at the target", s.Path)
		require.True(t, point.Equal(sum, s.Cost, 1e-9), "cost %s, edges sum to %s", s.Cost, sum)
	}
}

// edgeList is a minimal Graph used where a hand-built topology is clearer
// than a builder fixture. Edges are directed from..to.
type edgeList struct {
	n    int
	from []int
	to   []int
	cost []point.Point
	out  [][]int
}

func newEdgeList(n int) *edgeList {
	return &edgeList{n: n, out: make([][]int, n)}
}

// add appends the edge u→v and returns its index.
func (g *edgeList) add(u, v int, c ...float64) int {
	e := len(g.from)
	g.from = append(g.from, u)
	g.to = append(g.to, v)
	g.cost = append(g.cost, point.Of(c...))
	g.out[u] = append(g.out[u], e)

	return e
}

func (g *edgeList) NodeCount() int { return g.n }
func (g *edgeList) EdgeCount() int { return len(g.from) }
func (g *edgeList) Incident(n int) []int { return g.out[n] }
func (g *edgeList) Endpoints(e int) (int, int) { return g.from[e], g.to[e] }
func (g *edgeList) Cost(e int) point.Point { return g.cost[e] }
