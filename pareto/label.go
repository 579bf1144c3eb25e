// SPDX-License-Identifier: MIT
// Package: paretopath/pareto
//
// label.go — labels, stable handles and the per-node label arena.
//
// Every node owns an append-only arena of labels. A label is addressed by
// ref{node, slot}; slots are never reused during a run, so predecessor and
// successor handles stay valid after eviction. Evicted labels keep their
// cost and predecessor with deleted = true and are removed from the
// settled/pending slot lists lazily.

package pareto

import "github.com/katalvlaran/paretopath/point"

// ref addresses a label: entries[node].labels[slot].
type ref struct {
	node int32
	slot int32
}

// noRef marks the root's missing predecessor.
var noRef = ref{node: -1, slot: -1}

// label is a candidate partial path ending at its node.
// Invariant: cost = pred.cost + cost(edge), except for the root.
type label struct {
	cost    point.Point
	pred    ref
	edge    int32 // -1 for the root
	deleted bool
	succ    []ref // only populated under tree deletion
}

// candidate is a label under construction, not yet merged into a node.
type candidate struct {
	cost point.Point
	pred ref
	edge int32
}

// nodeEntry is the label bucket of one node.
// Invariant: the live labels of settled ∪ pending form an antichain at rest.
type nodeEntry struct {
	labels  []label
	settled []int32 // already propagated (closed, in label-setting)
	pending []int32 // not yet propagated (open, in label-setting)
	inQueue bool    // sequential FIFO only; the parallel pool keeps its own flags
}

// at returns the label addressed by r.
func (e *engine) at(r ref) *label {
	return &e.entries[r.node].labels[r.slot]
}

// insert appends c to node v's arena and its pending list and returns the new slot.
func (e *engine) insert(v int, c candidate, st *Stats) int32 {
	ent := &e.entries[v]
	slot := int32(len(ent.labels))
	ent.labels = append(ent.labels, label{cost: c.cost, pred: c.pred, edge: c.edge})
	st.CreatedLabels++
	if e.opts.TreeDeletion && c.pred != noRef {
		p := e.at(c.pred)
		p.succ = append(p.succ, ref{node: int32(v), slot: slot})
	}
	if e.onInsert != nil {
		e.onInsert(ref{node: int32(v), slot: slot})
	}

	return slot
}

// live returns the live slots of ent without modifying it.
func live(ent *nodeEntry) []int32 {
	out := make([]int32, 0, len(ent.settled)+len(ent.pending))
	for _, list := range [2][]int32{ent.settled, ent.pending} {
		for _, s := range list {
			if !ent.labels[s].deleted {
				out = append(out, s)
			}
		}
	}

	return out
}

// sweep drops deleted slots from list in place, preserving order.
func sweep(ent *nodeEntry, list []int32) []int32 {
	out := list[:0]
	for _, s := range list {
		if !ent.labels[s].deleted {
			out = append(out, s)
		}
	}

	return out
}
