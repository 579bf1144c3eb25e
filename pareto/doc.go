// Package pareto computes the complete Pareto frontier of source→target paths
// in graphs whose edges carry vector-valued costs (the efficient-path problem).
//
// Overview:
//
//   - Each node holds a bucket of labels: candidate partial paths with their
//     accumulated cost and a handle to the predecessor label. A bucket is
//     split into settled (already propagated) and pending labels and is kept
//     Pareto-minimal.
//   - New labels are built by extending pending labels across an edge, passed
//     through an optional heuristic/bound filter and merged into the head's
//     bucket by the dominance pruner, which discards dominated candidates and
//     evicts labels that a candidate dominates.
//   - Schedulers decide what is expanded next: FIFO (sequential
//     label-correcting fixpoint), Parallel (worker pool with neighborhood
//     locking) and LabelSetting (global heap by cost sum, anytime delivery).
//   - Policies compose: WithBicriteria swaps in an O(k) sorted merge for two
//     objectives, WithTreeDeletion purges every label built on an evicted one.
//
// Dominance: a dominates b iff a ≤ b componentwise and b ≰ a, with the ε of
// WithEpsilon applied to every comparison (point.LessEq).
//
// Usage:
//
//	res, err := pareto.SolveGraph(ctx, g, "S", "T",
//	    pareto.WithBounds(point.Of(5, math.Inf(1))),
//	    pareto.WithScheduler(pareto.Parallel), pareto.WithThreads(4))
//
// Preconditions are validated eagerly (see errors.go): every edge cost must be
// finite and non-negative and a heuristic must never exceed ε at the target.
// An empty frontier is a valid result.
//
// Observability: every run gets a UUID, an OpenTelemetry span, slog debug
// records and an optional MetricsSink Report (see package metrics).
//
// Complexity: exponential in the worst case (frontiers can grow with the
// number of paths); each merge costs O(k·d) per candidate for a bucket of
// size k, O(k) with the bicriteria merge.
package pareto
