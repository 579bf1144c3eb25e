// SPDX-License-Identifier: MIT
// Package: paretopath/pareto
//
// options.go — functional options for Solve.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs (nil
//     callbacks, negative epsilon, threads < 1). Solve itself never panics on
//     caller input; combinations are validated there and reported as errors.
//   • Later options override earlier ones.

package pareto

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/paretopath/point"
)

// Scheduler selects the propagation strategy.
type Scheduler int

const (
	// FIFO is the sequential label-correcting fixpoint loop.
	FIFO Scheduler = iota
	// Parallel runs the label-correcting loop on a worker pool with
	// neighborhood locking.
	Parallel
	// LabelSetting pops labels from a global heap ordered by cost sum.
	LabelSetting
)

// String returns the configuration name of the scheduler.
func (s Scheduler) String() string {
	switch s {
	case FIFO:
		return "fifo"
	case Parallel:
		return "parallel"
	case LabelSetting:
		return "label-setting"
	default:
		return fmt.Sprintf("scheduler(%d)", int(s))
	}
}

// ParseScheduler maps a configuration name back to a Scheduler.
func ParseScheduler(name string) (Scheduler, error) {
	switch name {
	case "fifo", "":
		return FIFO, nil
	case "parallel":
		return Parallel, nil
	case "label-setting":
		return LabelSetting, nil
	}

	return FIFO, fmt.Errorf("%w: unknown scheduler %q", ErrIncompatibleOptions, name)
}

// Options is the resolved configuration of a run. Build it with Option
// functions; the zero value is not meaningful, use DefaultOptions.
type Options struct {
	Dimension       int           // 0 = infer from the first edge cost
	Directed        bool          // follow edges only from their first endpoint
	Epsilon         float64       // comparison tolerance
	Heuristic       Heuristic     // nil = h ≡ 0
	Ceiling         point.Point   // per-objective upper bound on cost+h; nil = none
	LinearBounds    []point.Point // disjunction of a·y + a_d ≤ ε, len d+1 each
	Scheduler       Scheduler
	Threads         int  // parallel workers
	Bicriteria      bool // sorted O(k) merge, d == 2 only
	TreeDeletion    bool // purge descendants of evicted labels
	StrictHeuristic bool // verify heuristic consistency on every edge
	AutoHeuristic   bool // derive lower bounds via dijkstra.LowerBounds (needs *core.Index)
	NodeFrontiers   bool // return the live frontier of every node
	OnSolution      func(Solution)
	Logger          *slog.Logger
	Metrics         MetricsSink
	TracerProvider  trace.TracerProvider
}

// Option mutates Options before a run.
type Option func(*Options)

// DefaultOptions returns a directed, exact (ε = 0), sequential configuration
// with a discard logger and GOMAXPROCS parallel workers.
func DefaultOptions() Options {
	return Options{
		Directed:  true,
		Scheduler: FIFO,
		Threads:   runtime.GOMAXPROCS(0),
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithDimension fixes the number of objectives. Panics if d < 1.
func WithDimension(d int) Option {
	if d < 1 {
		panic(fmt.Sprintf("pareto: WithDimension(%d) requires d >= 1", d))
	}
	return func(o *Options) { o.Dimension = d }
}

// WithDirected chooses whether edges are followed only from their first endpoint.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}

// WithEpsilon sets the comparison tolerance. Panics on negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if !(eps >= 0) || math.IsInf(eps, 1) {
		panic(fmt.Sprintf("pareto: WithEpsilon(%g) requires a finite eps >= 0", eps))
	}
	return func(o *Options) { o.Epsilon = eps }
}

// WithHeuristic installs an admissible per-objective lower bound. Panics on nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("pareto: WithHeuristic(nil)")
	}
	return func(o *Options) { o.Heuristic = h }
}

// WithAutoHeuristic derives the heuristic from exact per-objective reverse
// shortest paths (dijkstra.LowerBounds). Only available when the graph is a
// *core.Index; the bounds are computed from the Index's own edge costs.
func WithAutoHeuristic() Option {
	return func(o *Options) { o.AutoHeuristic = true }
}

// WithBounds sets the ceiling: a label is dropped when cost+h exceeds it in
// any objective. Use +Inf for unconstrained objectives.
func WithBounds(ceiling point.Point) Option {
	c := ceiling.Clone()
	return func(o *Options) { o.Ceiling = c }
}

// WithLinearBounds sets a disjunction of linear constraints. Each bound holds
// d coefficients followed by a constant; a label survives iff at least one
// bound satisfies Σ a_i·(cost_i+h_i) + a_d ≤ ε.
func WithLinearBounds(bounds ...point.Point) Option {
	bs := make([]point.Point, len(bounds))
	for i, b := range bounds {
		bs[i] = b.Clone()
	}
	return func(o *Options) { o.LinearBounds = bs }
}

// WithScheduler selects the propagation strategy.
func WithScheduler(s Scheduler) Option {
	if s < FIFO || s > LabelSetting {
		panic(fmt.Sprintf("pareto: WithScheduler(%d) unknown", int(s)))
	}
	return func(o *Options) { o.Scheduler = s }
}

// WithThreads sets the parallel worker count. Panics if n < 1.
func WithThreads(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("pareto: WithThreads(%d) requires n >= 1", n))
	}
	return func(o *Options) { o.Threads = n }
}

// WithBicriteria enables the sorted two-objective merge.
func WithBicriteria() Option {
	return func(o *Options) { o.Bicriteria = true }
}

// WithTreeDeletion purges every label built on an evicted label.
func WithTreeDeletion() Option {
	return func(o *Options) { o.TreeDeletion = true }
}

// WithStrictHeuristic additionally checks h(u,i) ≤ c_i(u,v) + h(v,i) + ε on
// every traversable edge before the run.
func WithStrictHeuristic() Option {
	return func(o *Options) { o.StrictHeuristic = true }
}

// WithNodeFrontiers returns the live frontier of every node in Result.Frontiers.
func WithNodeFrontiers() Option {
	return func(o *Options) { o.NodeFrontiers = true }
}

// WithOnSolution registers a hook called once per target solution. The
// label-setting scheduler calls it as soon as a target label is closed; the
// other schedulers call it for each final solution after extraction.
func WithOnSolution(fn func(Solution)) Option {
	if fn == nil {
		panic("pareto: WithOnSolution(nil)")
	}
	return func(o *Options) { o.OnSolution = fn }
}

// WithLogger routes run logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pareto: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithMetrics registers a sink that receives a Report after every run. Panics on nil.
func WithMetrics(sink MetricsSink) Option {
	if sink == nil {
		panic("pareto: WithMetrics(nil)")
	}
	return func(o *Options) { o.Metrics = sink }
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider. Panics on nil.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("pareto: WithTracerProvider(nil)")
	}
	return func(o *Options) { o.TracerProvider = tp }
}
