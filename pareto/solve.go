// SPDX-License-Identifier: MIT
// Package: paretopath/pareto
//
// solve.go — public entry points.
//
// Solve validates, seeds the root label, dispatches to the chosen scheduler,
// extracts the target frontier and reports the run to the logger, the
// tracer and the optional metrics sink.

package pareto

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/paretopath/core"
	"github.com/katalvlaran/paretopath/dijkstra"
	"github.com/katalvlaran/paretopath/point"
)

// tracerName identifies spans emitted by this package.
const tracerName = "github.com/katalvlaran/paretopath/pareto"

// Result is the outcome of Solve.
type Result struct {
	RunID     string
	Solutions []Solution      // one per Pareto-optimal target label, sorted by cost
	Stats     Stats
	Frontiers [][]point.Point // per-node live costs, only with WithNodeFrontiers
}

// Solve computes the complete Pareto frontier of source→target paths.
//
// An empty Solutions slice is a legitimate outcome (target unreachable or
// every candidate pruned by bounds). source == target yields exactly one
// solution with an empty path and zero cost, unless the bounds exclude it.
//
// Errors: see the package sentinels; ctx cancellation is returned as ctx.Err().
func Solve(ctx context.Context, g Graph, cost CostFunc, source, target int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	runID := uuid.NewString()
	tp := o.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	ctx, span := tp.Tracer(tracerName).Start(ctx, "pareto.Solve", trace.WithAttributes(
		attribute.String("pareto.run_id", runID),
		attribute.String("pareto.scheduler", o.Scheduler.String()),
		attribute.Int("pareto.source", source),
		attribute.Int("pareto.target", target),
	))
	defer span.End()

	start := time.Now()
	res, dim, err := solve(ctx, g, cost, source, target, &o, runID)
	rep := Report{
		RunID:     runID,
		Scheduler: o.Scheduler,
		Dimension: dim,
		Threads:   1,
		Duration:  time.Since(start),
		Err:       err,
	}
	if o.Scheduler == Parallel {
		rep.Threads = o.Threads
	}
	if res != nil {
		rep.Solutions = len(res.Solutions)
		rep.Stats = res.Stats
	}
	if o.Metrics != nil {
		o.Metrics.Observe(ctx, rep)
	}

	span.SetAttributes(
		attribute.Int("pareto.dimension", dim),
		attribute.Int("pareto.solutions", rep.Solutions),
		attribute.Int64("pareto.label_comparisons", rep.Stats.LabelComparisons),
		attribute.Int64("pareto.created_labels", rep.Stats.CreatedLabels),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.Logger.Warn("pareto: run failed",
			slog.String("run_id", runID),
			slog.String("scheduler", o.Scheduler.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	o.Logger.Debug("pareto: run finished",
		slog.String("run_id", runID),
		slog.Int("solutions", rep.Solutions),
		slog.Duration("duration", rep.Duration),
		slog.Int64("label_comparisons", rep.Stats.LabelComparisons),
		slog.Int64("created_labels", rep.Stats.CreatedLabels),
		slog.Int64("deleted_labels", rep.Stats.DeletedLabels),
		slog.Int64("pruned_by_bounds", rep.Stats.PrunedByBounds))

	return res, nil
}

// solve is Solve without the observability wrapper. It returns the resolved
// dimension even on failure when it is known.
func solve(ctx context.Context, g Graph, cost CostFunc, src, dst int, o *Options, runID string) (*Result, int, error) {
	costs, dim, err := validate(g, cost, src, dst, o)
	if err != nil {
		return nil, dim, err
	}
	if o.AutoHeuristic {
		idx, ok := g.(*core.Index)
		if !ok || idx.Dimension() != dim {
			return nil, dim, fmt.Errorf("%w: automatic lower bounds need a *core.Index graph of dimension %d", ErrIncompatibleOptions, dim)
		}
		// Exact reverse distances are admissible and consistent; no re-validation needed.
		table, err := dijkstra.LowerBounds(ctx, idx, dst)
		if err != nil {
			return nil, dim, fmt.Errorf("pareto: lower bounds: %w", err)
		}
		o.Heuristic = TableHeuristic(table)
	}

	o.Logger.Debug("pareto: run started",
		slog.String("run_id", runID),
		slog.String("scheduler", o.Scheduler.String()),
		slog.Int("dimension", dim),
		slog.Int("nodes", g.NodeCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Bool("bicriteria", o.Bicriteria),
		slog.Bool("tree_deletion", o.TreeDeletion))

	e := newEngine(g, costs, src, dst, dim, o)
	var stats Stats
	if src == dst {
		stats = e.checkRoot()
	} else {
		switch o.Scheduler {
		case Parallel:
			stats, err = e.runParallel(ctx, o.Threads)
		case LabelSetting:
			stats, err = e.runLabelSetting(ctx)
		default:
			stats, err = e.runFIFO(ctx)
		}
		if err != nil {
			return &Result{RunID: runID, Stats: stats}, dim, err
		}
	}

	res := &Result{RunID: runID, Solutions: e.solutions(), Stats: stats}
	if o.NodeFrontiers {
		res.Frontiers = e.frontiers()
	}
	// Label-setting already delivered its target labels as they closed.
	if o.OnSolution != nil && (o.Scheduler != LabelSetting || src == dst) {
		for _, s := range res.Solutions {
			o.OnSolution(s)
		}
	}

	return res, dim, nil
}
