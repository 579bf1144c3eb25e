// SPDX-License-Identifier: MIT
// Package: paretopath/pareto
//
// stats.go — run statistics and the metrics-sink collaborator.
//
// Counters are plain int64 increments on a per-worker struct; they are always
// collected and merged once at the end, so the hot path has no sink branches.

package pareto

import (
	"context"
	"time"
)

// Stats counts engine work. Values depend on processing order and are meant
// for benchmarking, not for correctness checks.
type Stats struct {
	LabelComparisons   int64 // dominance tests between two labels
	DeletedLabels      int64 // labels evicted because a new label dominated them
	ArcPushes          int64 // label extensions across an edge
	RecursiveDeletions int64 // tree-deletion walks started from an evicted label with successors
	TreeDeletedLabels  int64 // descendants purged by tree deletion
	PrunedByBounds     int64 // candidates dropped by the heuristic/bound filter
	CreatedLabels      int64 // labels inserted into some node
	NodeExpansions     int64 // node (FIFO/parallel) or label (label-setting) expansions
}

// add accumulates o into s.
func (s *Stats) add(o Stats) {
	s.LabelComparisons += o.LabelComparisons
	s.DeletedLabels += o.DeletedLabels
	s.ArcPushes += o.ArcPushes
	s.RecursiveDeletions += o.RecursiveDeletions
	s.TreeDeletedLabels += o.TreeDeletedLabels
	s.PrunedByBounds += o.PrunedByBounds
	s.CreatedLabels += o.CreatedLabels
	s.NodeExpansions += o.NodeExpansions
}

// Report summarizes one finished run for a MetricsSink.
type Report struct {
	RunID     string
	Scheduler Scheduler
	Dimension int
	Threads   int
	Solutions int
	Duration  time.Duration
	Stats     Stats
	Err       error
}

// MetricsSink receives one Report per Solve call, successful or not.
// Implementations live in package metrics.
type MetricsSink interface {
	Observe(ctx context.Context, r Report)
}
