// SPDX-License-Identifier: MIT
// Package: paretopath/pareto
//
// errors.go — sentinel errors. Every precondition violation is returned
// wrapped with context via fmt.Errorf("%w: ..."); match with errors.Is.

package pareto

import "errors"

var (
	// ErrNilGraph indicates a nil Graph (or *core.Graph) argument.
	ErrNilGraph = errors.New("pareto: graph is nil")

	// ErrNilCost indicates a nil CostFunc.
	ErrNilCost = errors.New("pareto: cost function is nil")

	// ErrBadDimension indicates a dimension < 1 or one that cannot be inferred.
	ErrBadDimension = errors.New("pareto: dimension must be at least 1")

	// ErrNodeOutOfRange indicates a source or target outside [0, NodeCount).
	ErrNodeOutOfRange = errors.New("pareto: node index out of range")

	// ErrVertexNotFound indicates a source or target vertex ID missing from a core.Graph.
	ErrVertexNotFound = errors.New("pareto: vertex not found")

	// ErrCostDimension indicates an edge cost whose length differs from the dimension.
	ErrCostDimension = errors.New("pareto: edge cost dimension mismatch")

	// ErrNegativeCost indicates a negative, NaN or infinite edge cost component.
	// Non-negative finite costs are required for the fixpoint to terminate.
	ErrNegativeCost = errors.New("pareto: edge cost must be finite and non-negative")

	// ErrBadBound indicates a malformed ceiling or linear bound.
	ErrBadBound = errors.New("pareto: bound dimension mismatch or NaN component")

	// ErrBadEpsilon indicates a negative or NaN tolerance.
	ErrBadEpsilon = errors.New("pareto: epsilon must be finite and non-negative")

	// ErrInadmissibleHeuristic indicates a heuristic that is NaN somewhere or
	// positive at the target.
	ErrInadmissibleHeuristic = errors.New("pareto: heuristic is not admissible")

	// ErrInconsistentHeuristic indicates h(u) > c(u,v) + h(v) on some edge
	// (only checked with WithStrictHeuristic).
	ErrInconsistentHeuristic = errors.New("pareto: heuristic is not consistent")

	// ErrBadThreads indicates a parallel run with fewer than one worker.
	ErrBadThreads = errors.New("pareto: thread count must be at least 1")

	// ErrIncompatibleOptions indicates a combination of options the chosen
	// scheduler cannot honor.
	ErrIncompatibleOptions = errors.New("pareto: incompatible options")
)
