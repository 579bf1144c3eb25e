package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/katalvlaran/paretopath/config"
	"github.com/katalvlaran/paretopath/metrics"
	"github.com/katalvlaran/paretopath/pareto"
	"github.com/katalvlaran/paretopath/point"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "parallel", mutate: func(c *config.Config) { c.Solver.Scheduler = "parallel"; c.Solver.Threads = 8 }},
		{name: "unknown scheduler", mutate: func(c *config.Config) { c.Solver.Scheduler = "dfs" }, wantErr: "solver.scheduler"},
		{name: "zero threads", mutate: func(c *config.Config) { c.Solver.Threads = 0 }, wantErr: "solver.threads"},
		{name: "negative epsilon", mutate: func(c *config.Config) { c.Solver.Epsilon = -1 }, wantErr: "solver.epsilon"},
		{name: "infinite epsilon", mutate: func(c *config.Config) { c.Solver.Epsilon = math.Inf(1) }, wantErr: "finite"},
		{name: "negative ceiling", mutate: func(c *config.Config) { c.Solver.Ceiling = []float64{1, -2} }, wantErr: "solver.ceiling[1]"},
		{name: "infinite ceiling ok", mutate: func(c *config.Config) { c.Solver.Ceiling = []float64{math.Inf(1), 3} }},
		{name: "bad log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, wantErr: "log.level"},
		{name: "bad log format", mutate: func(c *config.Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
		{name: "bad backend", mutate: func(c *config.Config) { c.Metrics.Backend = "statsd" }, wantErr: "metrics.backend"},
		{name: "prometheus needs namespace", mutate: func(c *config.Config) {
			c.Metrics.Backend = "prometheus"
			c.Metrics.Namespace = ""
		}, wantErr: "metrics.namespace"},
		{name: "tree deletion with parallel", mutate: func(c *config.Config) {
			c.Solver.Scheduler = "parallel"
			c.Solver.TreeDeletion = true
		}, wantErr: "tree_deletion"},
		{name: "bicriteria with label-setting", mutate: func(c *config.Config) {
			c.Solver.Scheduler = "label-setting"
			c.Solver.Bicriteria = true
		}, wantErr: "bicriteria"},
		{name: "bicriteria with 3-d ceiling", mutate: func(c *config.Config) {
			c.Solver.Bicriteria = true
			c.Solver.Ceiling = []float64{1, 2, 3}
		}, wantErr: "bicriteria"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paretopath.yaml")
	yaml := []byte(`
solver:
  scheduler: parallel
  threads: 6
  epsilon: 0.01
  keep_frontiers: true
  ceiling: [10, 20]
log:
  level: debug
  format: text
metrics:
  backend: prometheus
  namespace: routing
`)
	require.NoError(t, os.WriteFile(path, yaml, 0o600))

	t.Setenv("PARETO_SOLVER__THREADS", "3")
	t.Setenv("PARETO_LOG__LEVEL", "warn")
	t.Setenv("PARETO_SOLVER__STRICT_HEURISTIC", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "parallel", cfg.Solver.Scheduler)
	assert.Equal(t, 3, cfg.Solver.Threads, "env overrides file")
	assert.InDelta(t, 0.01, cfg.Solver.Epsilon, 1e-12)
	assert.True(t, cfg.Solver.KeepFrontiers)
	assert.True(t, cfg.Solver.StrictHeuristic)
	assert.Equal(t, []float64{10, 20}, cfg.Solver.Ceiling)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 100, cfg.Log.MaxSizeMB, "untouched default survives")
	assert.Equal(t, "prometheus", cfg.Metrics.Backend)
	assert.Equal(t, "routing", cfg.Metrics.Namespace)
}

func TestLoad_EnvCeiling(t *testing.T) {
	t.Setenv("PARETO_SOLVER__CEILING", "5, 7.5")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7.5}, cfg.Solver.Ceiling)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Setenv("PARETO_SOLVER__SCHEDULER", "bogus")
	_, err = config.Load("")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSolverOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Solver = config.SolverConfig{
		Scheduler:       "label-setting",
		Threads:         2,
		Epsilon:         0.5,
		StrictHeuristic: true,
		KeepFrontiers:   true,
		Ceiling:         []float64{4, 9},
	}
	require.NoError(t, cfg.Validate())

	opts, err := cfg.SolverOptions()
	require.NoError(t, err)

	o := pareto.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	assert.Equal(t, pareto.LabelSetting, o.Scheduler)
	assert.Equal(t, 2, o.Threads)
	assert.Equal(t, 0.5, o.Epsilon)
	assert.True(t, o.StrictHeuristic)
	assert.True(t, o.NodeFrontiers)
	assert.False(t, o.TreeDeletion)
	assert.False(t, o.Bicriteria)
	assert.Equal(t, point.Of(4, 9), o.Ceiling)
}

func TestSolverOptions_FIFOTreeDeletionBicriteria(t *testing.T) {
	cfg := config.Default()
	cfg.Solver.TreeDeletion = true
	cfg.Solver.Bicriteria = true
	require.NoError(t, cfg.Validate())

	opts, err := cfg.SolverOptions()
	require.NoError(t, err)

	o := pareto.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	assert.Equal(t, pareto.FIFO, o.Scheduler)
	assert.True(t, o.TreeDeletion)
	assert.True(t, o.Bicriteria)
	assert.Nil(t, o.Ceiling)
}

func TestMetricsConfig_Sink(t *testing.T) {
	none, err := config.MetricsConfig{Backend: "none"}.Sink(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, none)

	prom, err := config.MetricsConfig{Backend: "prometheus", Namespace: "cfgtest"}.Sink(prometheus.NewRegistry(), nil)
	require.NoError(t, err)
	assert.IsType(t, &metrics.PrometheusSink{}, prom)

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader()))
	ot, err := config.MetricsConfig{Backend: "otel"}.Sink(nil, mp)
	require.NoError(t, err)
	assert.IsType(t, &metrics.OTelSink{}, ot)

	_, err = config.MetricsConfig{Backend: "statsd"}.Sink(nil, nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
