// SPDX-License-Identifier: MIT
// Package: paretopath/pareto
//
// graph.go — the collaborator contracts the engine consumes.

package pareto

import (
	"github.com/katalvlaran/paretopath/point"
)

// Graph is the adjacency the engine searches. Nodes are 0..NodeCount()-1 and
// edges 0..EdgeCount()-1. *core.Index satisfies it.
//
// Incident(n) lists the edges the engine may consider when leaving n. With
// WithDirected(true) (the default) an edge is followed only from its first
// endpoint; with WithDirected(false) it is followed towards whichever
// endpoint is not n, so Incident must then list an undirected edge at both
// endpoints.
type Graph interface {
	NodeCount() int
	EdgeCount() int
	Incident(n int) []int
	Endpoints(e int) (from, to int)
}

// CostFunc returns the cost vector of edge e. It is called once per edge
// during validation; the engine keeps its own copy.
type CostFunc func(e int) point.Point

// Heuristic returns a lower bound on the remaining cost from node to the
// target in objective obj. +Inf marks the target as unreachable from node.
// It must be safe for concurrent use when the parallel scheduler runs.
type Heuristic func(node, obj int) float64

// TableHeuristic adapts a table[node][objective] of lower bounds, such as the
// one produced by dijkstra.LowerBounds.
func TableHeuristic(table [][]float64) Heuristic {
	return func(node, obj int) float64 { return table[node][obj] }
}
