// SPDX-License-Identifier: MIT
// Package: paretopath/config
//
// sink.go — metrics backend selection.

package config

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/katalvlaran/paretopath/metrics"
	"github.com/katalvlaran/paretopath/pareto"
)

const meterName = "github.com/katalvlaran/paretopath"

// Sink builds the configured MetricsSink. It returns nil for the "none"
// backend. A nil reg means prometheus.DefaultRegisterer; a nil mp means the
// global OpenTelemetry meter provider.
func (m MetricsConfig) Sink(reg prometheus.Registerer, mp metric.MeterProvider) (pareto.MetricsSink, error) {
	switch m.Backend {
	case "", "none":
		return nil, nil
	case "prometheus":
		return metrics.NewPrometheusSink(reg, m.Namespace), nil
	case "otel":
		if mp == nil {
			mp = otel.GetMeterProvider()
		}
		sink, err := metrics.NewOTelSink(mp.Meter(meterName))
		if err != nil {
			return nil, err
		}
		return sink, nil
	}

	return nil, fmt.Errorf("%w: unknown metrics backend %q", ErrInvalidConfig, m.Backend)
}
