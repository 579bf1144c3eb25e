// SPDX-License-Identifier: MIT
// Package: paretopath/metrics
//
// otel.go — run reports through an OpenTelemetry meter.

package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/katalvlaran/paretopath/pareto"
)

// meterName identifies instruments created by NewOTelSink when no meter is given.
const meterName = "github.com/katalvlaran/paretopath/metrics"

// OTelSink exports run reports through an OpenTelemetry meter.
type OTelSink struct {
	runs     metric.Int64Counter
	duration metric.Float64Histogram
	frontier metric.Int64Histogram
	counters map[string]metric.Int64Counter
}

// NewOTelSink creates the instruments on meter (the global meter provider's
// meter when nil).
func NewOTelSink(meter metric.Meter) (*OTelSink, error) {
	if meter == nil {
		meter = otel.Meter(meterName)
	}
	s := &OTelSink{counters: make(map[string]metric.Int64Counter)}

	var err error
	if s.runs, err = meter.Int64Counter("pareto.runs",
		metric.WithDescription("Total number of Pareto solver runs"),
		metric.WithUnit("{run}")); err != nil {
		return nil, fmt.Errorf("metrics: pareto.runs: %w", err)
	}
	if s.duration, err = meter.Float64Histogram("pareto.run.duration",
		metric.WithDescription("Duration of Pareto solver runs"),
		metric.WithUnit("s")); err != nil {
		return nil, fmt.Errorf("metrics: pareto.run.duration: %w", err)
	}
	if s.frontier, err = meter.Int64Histogram("pareto.frontier.size",
		metric.WithDescription("Number of Pareto-optimal solutions per run"),
		metric.WithUnit("{solution}")); err != nil {
		return nil, fmt.Errorf("metrics: pareto.frontier.size: %w", err)
	}

	for _, name := range statNames {
		c, err := meter.Int64Counter("pareto."+name, metric.WithUnit("1"))
		if err != nil {
			return nil, fmt.Errorf("metrics: pareto.%s: %w", name, err)
		}
		s.counters[name] = c
	}

	return s, nil
}

// statNames lists the engine statistics in Report order.
var statNames = []string{
	"label_comparisons",
	"deleted_labels",
	"arc_pushes",
	"recursive_deletions",
	"tree_deleted_labels",
	"pruned_by_bounds",
	"created_labels",
	"node_expansions",
}

// statValues flattens st in statNames order.
func statValues(st pareto.Stats) []int64 {
	return []int64{
		st.LabelComparisons,
		st.DeletedLabels,
		st.ArcPushes,
		st.RecursiveDeletions,
		st.TreeDeletedLabels,
		st.PrunedByBounds,
		st.CreatedLabels,
		st.NodeExpansions,
	}
}

// Observe implements pareto.MetricsSink.
func (s *OTelSink) Observe(ctx context.Context, r pareto.Report) {
	status := "success"
	if r.Err != nil {
		status = "error"
	}
	sched := attribute.String("scheduler", r.Scheduler.String())
	s.runs.Add(ctx, 1, metric.WithAttributes(sched, attribute.String("status", status)))
	s.duration.Record(ctx, r.Duration.Seconds(), metric.WithAttributes(sched))
	if r.Err == nil {
		s.frontier.Record(ctx, int64(r.Solutions), metric.WithAttributes(sched))
	}
	for i, v := range statValues(r.Stats) {
		s.counters[statNames[i]].Add(ctx, v, metric.WithAttributes(sched))
	}
}

var _ pareto.MetricsSink = (*OTelSink)(nil)
