// Package metrics provides pareto.MetricsSink implementations.
//
//   - PrometheusSink registers counters (one per engine statistic, labelled by
//     scheduler), a run counter labelled by status and a run-duration histogram.
//   - OTelSink records the same series through an OpenTelemetry meter.
//
// Both sinks are safe for concurrent use; a sink can be shared by many Solve calls.
package metrics
