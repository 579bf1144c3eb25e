// Package paretopath computes complete Pareto frontiers of source→target
// paths in graphs whose edges carry cost vectors.
//
// A path dominates another when it is no worse in every objective; the
// frontier is every path no other path dominates. paretopath finds it with a
// label-correcting engine (FIFO or parallel) or a label-setting engine, with
// optional heuristic lower bounds, ceilings and linear bounds to cut the
// search short.
//
// Packages:
//
//	point/    — cost vectors and ε-tolerant dominance comparators
//	core/     — thread-safe string-keyed graph with vector costs + dense Index snapshot
//	dijkstra/ — per-objective shortest paths; LowerBounds builds admissible heuristics
//	pareto/   — the frontier engine: Solve, SolveGraph, options, statistics
//	metrics/  — Prometheus and OpenTelemetry sinks for run reports
//	config/   — koanf configuration, validation and slog logger factory
//	builder/  — seeded graph generators for tests and benchmarks
//
// Quick example:
//
//	g := core.NewGraph(core.WithDirected(true))
//	g.AddEdge("S", "A", point.Of(1, 4))
//	g.AddEdge("A", "T", point.Of(0, 6))
//	g.AddEdge("S", "T", point.Of(10, 1))
//
//	res, _ := pareto.SolveGraph(ctx, g, "S", "T")
//	for _, sol := range res.Solutions {
//		fmt.Println(sol.Cost, sol.Vertices) // (1, 10) [S A T] then (10, 1) [S T]
//	}
//
//	go get github.com/katalvlaran/paretopath
package paretopath
