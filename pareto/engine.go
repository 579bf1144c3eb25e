// SPDX-License-Identifier: MIT
// Package: paretopath/pareto
//
// engine.go — shared run state and the node expansion step used by every
// scheduler.
//
// One engine value serves one Solve call. Schedulers differ only in which
// node (or label) they expand next and in how they are synchronized; the
// extension, filtering and merge logic lives here.

package pareto

import (
	"github.com/katalvlaran/paretopath/point"
)

// engine is the state of one run.
type engine struct {
	g        Graph
	costs    []point.Point // validated copy of every edge cost
	src, dst int
	dim      int
	eps      float64
	opts     *Options
	filter   *filter
	entries  []nodeEntry
	onInsert func(r ref) // label-setting heap feed; nil otherwise
}

// newEngine seeds the source with the zero-cost root label.
func newEngine(g Graph, costs []point.Point, src, dst, dim int, o *Options) *engine {
	e := &engine{
		g:       g,
		costs:   costs,
		src:     src,
		dst:     dst,
		dim:     dim,
		eps:     o.Epsilon,
		opts:    o,
		filter:  newFilter(o, dim),
		entries: make([]nodeEntry, g.NodeCount()),
	}
	root := &e.entries[src]
	root.labels = append(root.labels, label{cost: point.New(dim), pred: noRef, edge: -1})
	root.pending = append(root.pending, 0)

	return e
}

// checkRoot applies the filter to the root label when the source is the
// target; a root that breaks a bound leaves the frontier empty.
func (e *engine) checkRoot() Stats {
	var st Stats
	if e.filter == nil {
		return st
	}
	root := &e.entries[e.src].labels[0]
	if !e.filter.keep(e.dst, root.cost, make([]float64, e.dim)) {
		root.deleted = true
		st.PrunedByBounds++
	}

	return st
}

// head returns the node reached by leaving n over edge id, or -1 when the
// edge must be skipped: wrong direction, self-loop, or an edge into the source.
func (e *engine) head(n, id int) int {
	from, to := e.g.Endpoints(id)
	var v int
	switch {
	case from == n:
		v = to
	case e.opts.Directed:
		return -1
	default:
		v = from
	}
	if v == n || v == e.src {
		return -1
	}

	return v
}

// worker is the per-goroutine scratch of an expansion.
type worker struct {
	stats Stats
	batch []candidate
	buf   []float64 // filter scratch, len dim
}

func newWorker(dim int) *worker {
	return &worker{buf: make([]float64, dim)}
}

// expandLabels extends the given live labels of n across every usable edge,
// filters the candidates and merges them into each head. onChanged is called
// for every head that received at least one label.
func (e *engine) expandLabels(n int, slots []int32, w *worker, onChanged func(v int)) {
	ent := &e.entries[n]
	for _, id := range e.g.Incident(n) {
		v := e.head(n, id)
		if v < 0 {
			continue
		}
		c := e.costs[id]
		w.batch = w.batch[:0]
		for _, s := range slots {
			// Re-read per edge: tree deletion may purge labels of n mid-expansion.
			l := &ent.labels[s]
			if l.deleted {
				continue
			}
			cost := l.cost.Add(c)
			w.stats.ArcPushes++
			if e.filter != nil && !e.filter.keep(v, cost, w.buf) {
				w.stats.PrunedByBounds++
				continue
			}
			w.batch = append(w.batch, candidate{cost: cost, pred: ref{node: int32(n), slot: s}, edge: int32(id)})
		}
		if len(w.batch) == 0 {
			continue
		}
		if e.merge(v, w.batch, &w.stats) && onChanged != nil {
			onChanged(v)
		}
	}
}

// expandNode propagates the pending labels of n and then settles them.
func (e *engine) expandNode(n int, w *worker, onChanged func(v int)) {
	ent := &e.entries[n]
	ent.pending = sweep(ent, ent.pending)
	if len(ent.pending) == 0 {
		return
	}
	w.stats.NodeExpansions++
	pending := ent.pending
	e.expandLabels(n, pending, w, onChanged)
	e.settle(n)
}

// settle moves the pending labels of n into settled, dropping deleted ones.
func (e *engine) settle(n int) {
	ent := &e.entries[n]
	ent.settled = sweep(ent, ent.settled)
	ent.pending = sweep(ent, ent.pending)
	if e.opts.Bicriteria {
		ent.settled = mergeSorted(ent, ent.settled, ent.pending)
	} else {
		ent.settled = append(ent.settled, ent.pending...)
	}
	ent.pending = nil
}
