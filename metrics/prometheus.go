// SPDX-License-Identifier: MIT
// Package: paretopath/metrics
//
// prometheus.go — run reports as Prometheus series.

package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/paretopath/pareto"
)

const subsystem = "solver"

// PrometheusSink exports run reports as Prometheus series.
type PrometheusSink struct {
	RunsTotal          *prometheus.CounterVec
	RunDuration        *prometheus.HistogramVec
	Solutions          *prometheus.HistogramVec
	LabelComparisons   *prometheus.CounterVec
	DeletedLabels      *prometheus.CounterVec
	ArcPushes          *prometheus.CounterVec
	RecursiveDeletions *prometheus.CounterVec
	TreeDeletedLabels  *prometheus.CounterVec
	PrunedByBounds     *prometheus.CounterVec
	CreatedLabels      *prometheus.CounterVec
	NodeExpansions     *prometheus.CounterVec
}

// NewPrometheusSink registers every series on reg (prometheus.DefaultRegisterer
// when nil) under the given namespace. Registration panics on duplicates, as
// promauto does.
func NewPrometheusSink(reg prometheus.Registerer, namespace string) *PrometheusSink {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	counter := func(name, help string) *prometheus.CounterVec {
		return f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		}, []string{"scheduler"})
	}

	return &PrometheusSink{
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "runs_total",
			Help:      "Total number of Pareto solver runs",
		}, []string{"scheduler", "status"}),
		RunDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "run_duration_seconds",
			Help:      "Duration of Pareto solver runs",
			Buckets:   []float64{.0001, .001, .005, .01, .05, .1, .5, 1, 5, 30, 120},
		}, []string{"scheduler"}),
		Solutions: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "frontier_size",
			Help:      "Number of Pareto-optimal solutions per run",
			Buckets:   []float64{0, 1, 2, 5, 10, 50, 100, 500, 1000, 10000},
		}, []string{"scheduler"}),
		LabelComparisons:   counter("label_comparisons_total", "Dominance tests between two labels"),
		DeletedLabels:      counter("deleted_labels_total", "Labels evicted by a dominating label"),
		ArcPushes:          counter("arc_pushes_total", "Label extensions across an edge"),
		RecursiveDeletions: counter("recursive_deletions_total", "Tree-deletion walks started"),
		TreeDeletedLabels:  counter("tree_deleted_labels_total", "Descendant labels purged by tree deletion"),
		PrunedByBounds:     counter("pruned_by_bounds_total", "Candidates dropped by the heuristic/bound filter"),
		CreatedLabels:      counter("created_labels_total", "Labels inserted into some node"),
		NodeExpansions:     counter("node_expansions_total", "Node or label expansions"),
	}
}

// Observe implements pareto.MetricsSink.
func (s *PrometheusSink) Observe(_ context.Context, r pareto.Report) {
	sched := r.Scheduler.String()
	status := "success"
	if r.Err != nil {
		status = "error"
	}
	s.RunsTotal.WithLabelValues(sched, status).Inc()
	s.RunDuration.WithLabelValues(sched).Observe(r.Duration.Seconds())
	if r.Err == nil {
		s.Solutions.WithLabelValues(sched).Observe(float64(r.Solutions))
	}

	st := r.Stats
	s.LabelComparisons.WithLabelValues(sched).Add(float64(st.LabelComparisons))
	s.DeletedLabels.WithLabelValues(sched).Add(float64(st.DeletedLabels))
	s.ArcPushes.WithLabelValues(sched).Add(float64(st.ArcPushes))
	s.RecursiveDeletions.WithLabelValues(sched).Add(float64(st.RecursiveDeletions))
	s.TreeDeletedLabels.WithLabelValues(sched).Add(float64(st.TreeDeletedLabels))
	s.PrunedByBounds.WithLabelValues(sched).Add(float64(st.PrunedByBounds))
	s.CreatedLabels.WithLabelValues(sched).Add(float64(st.CreatedLabels))
	s.NodeExpansions.WithLabelValues(sched).Add(float64(st.NodeExpansions))
}

var _ pareto.MetricsSink = (*PrometheusSink)(nil)
