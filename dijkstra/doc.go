// Package dijkstra computes single-objective shortest paths over the
// vector-cost graphs of package core.
//
// Overview:
//
//   - Dijkstra runs the classic label-setting search on one chosen objective
//     (Objective(k)) of each edge's cost vector, from a single source vertex.
//   - LowerBounds runs one reverse search per objective towards a target and
//     returns, for every node, the exact minimum remaining cost in each
//     objective. Each component is an admissible (never overestimating) and
//     consistent lower bound, which is exactly what the Pareto engine's
//     heuristic filter requires.
//
// Key features:
//
//   - Functional options: Source, Objective, WithReturnPath, WithMaxDistance,
//     WithInfEdgeThreshold.
//   - InfEdgeThreshold treats any edge with cost ≥ threshold as impassable.
//   - Mixed edges: works on graphs mixing directed and undirected edges.
//   - LowerBounds searches all objectives concurrently (errgroup) and honors
//     context cancellation.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per objective.
//   - Space: O(V + E) (lazy decrease-key heap).
//
// Errors (sentinel):
//
//   - ErrEmptySource, ErrNilGraph, ErrVertexNotFound.
//   - ErrNegativeWeight: an edge cost component is negative or NaN (O(E·d) pre-scan).
//   - ErrBadObjective: objective index outside the cost dimension.
//   - ErrBadMaxDistance / ErrBadInfThreshold: panics from the option constructors.
//
// Thread safety: the graph is snapshotted with core.Graph.Index before the
// search, so concurrent mutation after the call starts is not observed.
package dijkstra
