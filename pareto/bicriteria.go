// SPDX-License-Identifier: MIT
// Package: paretopath/pareto
//
// bicriteria.go — O(k) merge for exactly two objectives.
//
// Under this mode settled and pending are each kept sorted by (x asc, y asc),
// which for an antichain means y strictly decreasing. A merge:
//   1. sorts the batch by (x, y) if needed;
//   2. walks settled, pending and batch in one three-way merge ordered by
//      (x asc, y asc, existing before new);
//   3. keeps a stack of survivors: an element e is discarded when the top
//      satisfies top ≤ e, otherwise every top with e ≤ top is popped (and
//      evicted if it was an existing label) before e is pushed;
//   4. rebuilds settled and pending from the survivors' origins, which
//      preserves sortedness.
//
// "≤" is point.LessEq with ε, the same relation the general pruner uses, so
// both modes produce the same frontier.

package pareto

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/paretopath/point"
)

// origin tags a merge element.
type origin uint8

const (
	fromSettled origin = iota
	fromPending
	fromBatch
)

// biItem is one element of the three-way merge.
type biItem struct {
	cost point.Point
	from origin
	slot int32 // existing slot, or batch index for fromBatch
}

// cmpBi orders by (x asc, y asc, existing before new).
func cmpBi(a, b biItem) int {
	if c := cmp.Compare(a.cost[0], b.cost[0]); c != 0 {
		return c
	}
	if c := cmp.Compare(a.cost[1], b.cost[1]); c != 0 {
		return c
	}

	an, bn := a.from == fromBatch, b.from == fromBatch
	switch {
	case an == bn:
		return 0
	case bn:
		return -1
	}

	return 1
}

// cmpCandidate orders batch candidates by (x, y).
func cmpCandidate(a, b candidate) int {
	if c := cmp.Compare(a.cost[0], b.cost[0]); c != 0 {
		return c
	}

	return cmp.Compare(a.cost[1], b.cost[1])
}

// mergeBicriteria is the two-objective counterpart of merge.
func (e *engine) mergeBicriteria(v int, batch []candidate, st *Stats) bool {
	ent := &e.entries[v]

	cands := batch[:0:0]
	for _, c := range batch {
		if c.pred != noRef && e.at(c.pred).deleted {
			continue
		}
		cands = append(cands, c)
	}
	if len(cands) == 0 {
		return false
	}
	if !slices.IsSortedFunc(cands, cmpCandidate) {
		slices.SortStableFunc(cands, cmpCandidate)
	}

	stack := make([]biItem, 0, len(ent.settled)+len(ent.pending)+len(cands))
	push := func(it biItem) {
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			st.LabelComparisons++
			if point.LessEq(top.cost, it.cost, e.eps) {
				if it.from != fromBatch {
					e.evict(ref{node: int32(v), slot: it.slot}, st)
				}
				return
			}
			st.LabelComparisons++
			if !point.LessEq(it.cost, top.cost, e.eps) {
				break
			}
			if top.from != fromBatch {
				e.evict(ref{node: int32(v), slot: top.slot}, st)
			}
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, it)
	}

	s, p, b := 0, 0, 0
	next := func(list []int32, i *int, from origin) (biItem, bool) {
		for *i < len(list) {
			slot := list[*i]
			if l := &ent.labels[slot]; !l.deleted {
				return biItem{cost: l.cost, from: from, slot: slot}, true
			}
			*i++
		}
		return biItem{}, false
	}
	for {
		best, ok := biItem{}, false
		if it, has := next(ent.settled, &s, fromSettled); has {
			best, ok = it, true
		}
		if it, has := next(ent.pending, &p, fromPending); has && (!ok || cmpBi(it, best) < 0) {
			best, ok = it, true
		}
		if b < len(cands) {
			it := biItem{cost: cands[b].cost, from: fromBatch, slot: int32(b)}
			if !ok || cmpBi(it, best) < 0 {
				best, ok = it, true
			}
		}
		if !ok {
			break
		}
		switch best.from {
		case fromSettled:
			s++
		case fromPending:
			p++
		case fromBatch:
			b++
		}
		push(best)
	}

	// Evictions above may have purged descendants (tree deletion) that are
	// themselves on the stack; drop them before rebuilding.
	settled := ent.settled[:0]
	pending := ent.pending[:0]
	changed := false
	for _, it := range stack {
		switch it.from {
		case fromSettled:
			if !ent.labels[it.slot].deleted {
				settled = append(settled, it.slot)
			}
		case fromPending:
			if !ent.labels[it.slot].deleted {
				pending = append(pending, it.slot)
			}
		case fromBatch:
			c := cands[it.slot]
			if c.pred != noRef && e.at(c.pred).deleted {
				continue
			}
			pending = append(pending, e.insert(v, c, st))
			changed = true
		}
	}
	ent.settled, ent.pending = settled, pending

	return changed
}

// mergeSorted merges two (x, y)-sorted slot lists of ent into one sorted list.
func mergeSorted(ent *nodeEntry, a, b []int32) []int32 {
	out := make([]int32, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := ent.labels[a[i]].cost, ent.labels[b[j]].cost
		if ca[0] < cb[0] || (ca[0] == cb[0] && ca[1] <= cb[1]) {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}
