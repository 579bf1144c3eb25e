// Package dijkstra implements objective-wise Dijkstra over vector-cost graphs.
//
// Notes on implementation choices:
//
//   - The graph is snapshotted into a core.Index; the search itself is purely
//     slice-based (no map lookups in the hot loop).
//   - We perform an upfront O(E·d) scan to detect negative costs and fail fast.
//   - We use a "lazy" decrease-key strategy: duplicates are pushed and stale
//     entries are ignored when popped.
package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/paretopath/core"
)

// Dijkstra computes shortest distances in objective Options.Objective from
// Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (+Inf if unreachable).
//   - prev: vertex ID → predecessor vertex ID if ReturnPath, else nil.
//     prev[v] == "" for the source and unreachable vertices.
//   - err:  validation error, see package doc.
//
// Validation order: ErrEmptySource, ErrNilGraph, ErrVertexNotFound,
// ErrBadObjective, ErrNegativeWeight.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	idx := g.Index()
	if err := checkObjective(idx, cfg.Objective); err != nil {
		return nil, nil, err
	}
	if err := scanNegative(idx); err != nil {
		return nil, nil, err
	}

	src, _ := idx.NodeOf(cfg.Source)
	r := newRunner(idx, cfg.Objective, false, cfg.MaxDistance, cfg.InfEdgeThreshold)
	r.init(src)
	if err := r.process(context.Background()); err != nil {
		return nil, nil, err
	}

	dist := make(map[string]float64, idx.NodeCount())
	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, idx.NodeCount())
	}
	for n := 0; n < idx.NodeCount(); n++ {
		id := idx.VertexID(n)
		dist[id] = r.dist[n]
		if prev != nil {
			if e := r.prevEdge[n]; e >= 0 {
				prev[id] = idx.VertexID(idx.Other(e, n))
			} else {
				prev[id] = ""
			}
		}
	}

	return dist, prev, nil
}

// LowerBounds returns table[n][k] = minimum cost in objective k of any path
// from node n to target (+Inf when target is unreachable from n). Each
// objective is searched on its own goroutine over reversed edges.
//
// The table is an admissible and consistent heuristic for the Pareto engine.
//
// Complexity: O(d·(V + E) log V) work, parallel across objectives.
func LowerBounds(ctx context.Context, idx *core.Index, target int) ([][]float64, error) {
	if idx == nil {
		return nil, ErrNilGraph
	}
	if target < 0 || target >= idx.NodeCount() {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, target)
	}
	if err := scanNegative(idx); err != nil {
		return nil, err
	}

	d := idx.Dimension()
	table := make([][]float64, idx.NodeCount())
	for n := range table {
		table[n] = make([]float64, d)
	}

	columns := make([][]float64, d)
	if err := forEachObjective(ctx, d, func(ctx context.Context, k int) error {
		r := newRunner(idx, k, true, math.Inf(1), math.Inf(1))
		r.init(target)
		if err := r.process(ctx); err != nil {
			return err
		}
		columns[k] = r.dist

		return nil
	}); err != nil {
		return nil, err
	}

	for k, col := range columns {
		for n, v := range col {
			table[n][k] = v
		}
	}

	return table, nil
}

// checkObjective validates k against the snapshot dimension. An edgeless graph
// (dimension 0) accepts any k: every other vertex is simply unreachable.
func checkObjective(idx *core.Index, k int) error {
	if d := idx.Dimension(); d > 0 && k >= d {
		return fmt.Errorf("%w: objective %d, dimension %d", ErrBadObjective, k, d)
	}

	return nil
}

// scanNegative rejects any negative or NaN cost component.
func scanNegative(idx *core.Index) error {
	for e := 0; e < idx.EdgeCount(); e++ {
		c := idx.Cost(e)
		if !c.IsNonNegative() {
			u, v := idx.Endpoints(e)

			return fmt.Errorf("%w: edge %s %s→%s cost=%s",
				ErrNegativeWeight, idx.EdgeID(e), idx.VertexID(u), idx.VertexID(v), c)
		}
	}

	return nil
}

// runner holds the mutable state for a single search.
type runner struct {
	idx       *core.Index
	obj       int
	reverse   bool    // follow Inbound edges (distances *to* the root)
	maxDist   float64 // exploration cap
	threshold float64 // impassable-edge threshold
	dist      []float64
	prevEdge  []int // edge used to reach n, -1 if none
	visited   []bool
	pq        nodePQ
}

func newRunner(idx *core.Index, obj int, reverse bool, maxDist, threshold float64) *runner {
	n := idx.NodeCount()

	return &runner{
		idx:       idx,
		obj:       obj,
		reverse:   reverse,
		maxDist:   maxDist,
		threshold: threshold,
		dist:      make([]float64, n),
		prevEdge:  make([]int, n),
		visited:   make([]bool, n),
		pq:        make(nodePQ, 0, n),
	}
}

// init sets dist[v] = +Inf for all v, dist[root] = 0 and seeds the heap.
func (r *runner) init(root int) {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prevEdge[v] = -1
	}
	r.dist[root] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: root, dist: 0})
}

// process is the main loop: pop the closest unvisited node, relax its edges.
// Stops when the heap empties, the cap is exceeded, or ctx is done.
func (r *runner) process(ctx context.Context) error {
	for r.pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.maxDist {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}

	return nil
}

// relax examines each edge leaving u (entering u when reverse) and improves
// the opposite endpoint's distance.
func (r *runner) relax(u int) {
	edges := r.idx.Incident(u)
	if r.reverse {
		edges = r.idx.Inbound(u)
	}
	for _, e := range edges {
		v := r.idx.Other(e, u)
		if v == u {
			continue
		}
		w := r.idx.Cost(e)[r.obj]
		if w >= r.threshold {
			continue
		}
		nd := r.dist[u] + w
		if nd > r.maxDist || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prevEdge[v] = e
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}
}

// nodeItem is a heap entry: node index and tentative distance.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
