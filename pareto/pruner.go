// SPDX-License-Identifier: MIT
// Package: paretopath/pareto
//
// pruner.go — general dominance merge.
//
// For each candidate N, in batch order:
//   1. Scan settled then pending. Deleted labels met on the way are swept.
//   2. If some live L satisfies L ≤ N (within ε), N is redundant or
//      dominated: discard it. Because the set is an antichain, one match
//      suffices.
//   3. Otherwise every L with N ≤ L is evicted (and, under tree deletion,
//      its descendants are purged).
//   4. N is appended to pending.
//
// Dominance follows point.Dominates: L ≤ N and not N ≤ L. Equal costs
// within ε are therefore caught by step 2 and never duplicated.

package pareto

import "github.com/katalvlaran/paretopath/point"

// merge folds batch into node v and reports whether anything was inserted.
// Candidates whose predecessor was purged during this batch are skipped.
func (e *engine) merge(v int, batch []candidate, st *Stats) bool {
	if e.opts.Bicriteria {
		return e.mergeBicriteria(v, batch, st)
	}

	ent := &e.entries[v]
	changed := false
	var rejected bool
	for _, c := range batch {
		if c.pred != noRef && e.at(c.pred).deleted {
			continue
		}
		ent.settled, rejected = e.scan(v, ent.settled, c.cost, st)
		if rejected {
			continue
		}
		ent.pending, rejected = e.scan(v, ent.pending, c.cost, st)
		if rejected {
			continue
		}
		// insert may grow ent.labels; ent itself stays addressable.
		slot := e.insert(v, c, st)
		ent.pending = append(ent.pending, slot)
		changed = true
	}

	return changed
}

// scan compares cost against every live label of list (a slot list of node v).
// It returns the compacted list and true if an existing label is ≤ cost.
// Labels dominated by cost are evicted on the way. Order is not preserved.
func (e *engine) scan(v int, list []int32, cost point.Point, st *Stats) ([]int32, bool) {
	ent := &e.entries[v]
	for i := 0; i < len(list); {
		l := &ent.labels[list[i]]
		if l.deleted {
			list = swapRemove(list, i)
			continue
		}
		st.LabelComparisons++
		if point.LessEq(l.cost, cost, e.eps) {
			return list, true
		}
		if point.LessEq(cost, l.cost, e.eps) {
			e.evict(ref{node: int32(v), slot: list[i]}, st)
			list = swapRemove(list, i)
			continue
		}
		i++
	}

	return list, false
}

// evict marks r deleted because a new label dominates it.
func (e *engine) evict(r ref, st *Stats) {
	l := e.at(r)
	l.deleted = true
	st.DeletedLabels++
	if e.opts.TreeDeletion {
		e.invalidate(r, st)
	}
}

// swapRemove deletes list[i] by moving the last element into its place.
func swapRemove(list []int32, i int) []int32 {
	last := len(list) - 1
	list[i] = list[last]

	return list[:last]
}
