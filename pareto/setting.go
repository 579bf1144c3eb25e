// SPDX-License-Identifier: MIT
// Package: paretopath/pareto
//
// setting.go — label-setting scheduler.
//
// All open labels sit in one global min-heap ordered by the sum of their
// cost components (lexicographic cost as tie-break). Popping a label:
//   • skips it if it was deleted while waiting (lazy deletion);
//   • re-checks it against the closed labels of its node;
//   • closes it (pending → settled);
//   • at the target, reports it through OnSolution and stops there;
//   • elsewhere, extends it across every usable edge through the general
//     merge, whose insertions feed the heap.
//
// With non-negative costs a label that dominates another has a strictly
// smaller sum, so closed labels are final in exact arithmetic. Evicting a
// closed label is still handled, for ε-tolerant comparisons.

package pareto

import (
	"container/heap"
	"context"

	"github.com/katalvlaran/paretopath/point"
)

// runLabelSetting drives the heap scheduler and returns the statistics.
func (e *engine) runLabelSetting(ctx context.Context) (Stats, error) {
	w := newWorker(e.dim)
	pq := make(labelPQ, 0, 64)
	e.onInsert = func(r ref) {
		heap.Push(&pq, &labelItem{r: r, sum: e.at(r).cost.Sum(), cost: e.at(r).cost})
	}
	defer func() { e.onInsert = nil }()
	heap.Push(&pq, &labelItem{r: ref{node: int32(e.src), slot: 0}, sum: 0, cost: e.entries[e.src].labels[0].cost})

	var one [1]int32
	for pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return w.stats, err
		}
		it := heap.Pop(&pq).(*labelItem)
		l := e.at(it.r)
		if l.deleted {
			continue
		}
		n := int(it.r.node)
		ent := &e.entries[n]
		if e.closedDominates(n, l.cost, &w.stats) {
			l.deleted = true
			w.stats.DeletedLabels++
			ent.pending = removeSlot(ent.pending, it.r.slot)
			continue
		}
		ent.pending = removeSlot(ent.pending, it.r.slot)
		ent.settled = append(ent.settled, it.r.slot)

		if n == e.dst {
			if e.opts.OnSolution != nil {
				e.opts.OnSolution(e.solution(it.r))
			}
			continue
		}
		w.stats.NodeExpansions++
		one[0] = it.r.slot
		e.expandLabels(n, one[:], w, nil)
	}

	return w.stats, nil
}

// closedDominates reports whether a live closed label of n is ≤ cost.
func (e *engine) closedDominates(n int, cost point.Point, st *Stats) bool {
	ent := &e.entries[n]
	for _, s := range ent.settled {
		l := &ent.labels[s]
		if l.deleted {
			continue
		}
		st.LabelComparisons++
		if point.LessEq(l.cost, cost, e.eps) {
			return true
		}
	}

	return false
}

// removeSlot deletes slot from list if present (order not preserved).
func removeSlot(list []int32, slot int32) []int32 {
	for i, s := range list {
		if s == slot {
			return swapRemove(list, i)
		}
	}

	return list
}

// labelItem is a heap entry for an open label.
type labelItem struct {
	r    ref
	sum  float64
	cost point.Point
}

// labelPQ is a min-heap by (sum, lexicographic cost).
type labelPQ []*labelItem

func (pq labelPQ) Len() int { return len(pq) }
func (pq labelPQ) Less(i, j int) bool {
	if pq[i].sum != pq[j].sum {
		return pq[i].sum < pq[j].sum
	}

	return point.LexLess(pq[i].cost, pq[j].cost, 0)
}
func (pq labelPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *labelPQ) Push(x interface{}) { *pq = append(*pq, x.(*labelItem)) }
func (pq *labelPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
