// SPDX-License-Identifier: MIT
// Package: paretopath/pareto
//
// extract.go — materialize target labels into caller-owned solutions.

package pareto

import (
	"slices"

	"github.com/katalvlaran/paretopath/point"
)

// Solution is one Pareto-optimal source→target path.
type Solution struct {
	Path []int      // edge indices in source→target order; empty when source == target
	Cost point.Point // sum of the edge costs along Path
}

// solution walks predecessor links from r back to the root.
func (e *engine) solution(r ref) Solution {
	l := e.at(r)
	cost := l.cost.Clone()
	var path []int
	for l.pred != noRef {
		path = append(path, int(l.edge))
		l = e.at(l.pred)
	}
	slices.Reverse(path)

	return Solution{Path: path, Cost: cost}
}

// solutions returns one Solution per live target label, sorted by cost
// (lexicographic) and then by path, so repeated runs are reproducible.
func (e *engine) solutions() []Solution {
	ent := &e.entries[e.dst]
	slots := live(ent)
	out := make([]Solution, 0, len(slots))
	for _, s := range slots {
		out = append(out, e.solution(ref{node: int32(e.dst), slot: s}))
	}
	sortSolutions(out)

	return out
}

// sortSolutions orders by exact lexicographic cost, then by path.
func sortSolutions(sols []Solution) {
	slices.SortFunc(sols, func(a, b Solution) int {
		if c := point.Compare(a.Cost, b.Cost, 0); c != 0 {
			return c
		}

		return slices.Compare(a.Path, b.Path)
	})
}

// frontiers returns the sorted live costs of every node.
func (e *engine) frontiers() [][]point.Point {
	out := make([][]point.Point, len(e.entries))
	for n := range e.entries {
		ent := &e.entries[n]
		slots := live(ent)
		costs := make([]point.Point, 0, len(slots))
		for _, s := range slots {
			costs = append(costs, ent.labels[s].cost.Clone())
		}
		slices.SortFunc(costs, func(a, b point.Point) int { return point.Compare(a, b, 0) })
		out[n] = costs
	}

	return out
}
