// Package builder generates deterministic multi-objective graph fixtures for
// tests, examples and benchmarks of the pareto solver.
//
// A build composes Constructors over a fresh core.Graph:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true)},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithDimension(2), builder.WithIntCost(1, 9)},
//		builder.Grid(4, 4),
//	)
//
// Topologies:
//   - Path(n):                 a single route; frontier of size one.
//   - Grid(rows, cols):        "r,c" IDs, 4-neighborhood.
//   - RandomSparse(n, p):      independent edge trials.
//   - Layered(layers, width, p): "s" → layers → "t" DAG with many routes.
//
// Cost distributions (CostFn): DefaultCostFn (all ones), ConstantCostFn,
// UniformCostFn, IntCostFn, AntiCorrelatedCostFn. Stochastic distributions
// and constructors draw from the RNG set by WithSeed or WithRand, in a fixed
// order, so equal seeds give equal graphs.
//
// Option constructors panic on meaningless values; constructors return
// sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed) wrapped with the constructor name.
package builder
