// SPDX-License-Identifier: MIT
// Package: paretopath/config
//
// config.go — solver configuration tree, validation and conversion to
// pareto options.

package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/paretopath/pareto"
	"github.com/katalvlaran/paretopath/point"
)

// ErrInvalidConfig wraps every validation failure reported by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = newValidator()

// newValidator reports field errors by their koanf key.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Config is the root of the koanf tree.
type Config struct {
	Solver  SolverConfig  `koanf:"solver"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// SolverConfig mirrors the pareto functional options.
type SolverConfig struct {
	Scheduler       string    `koanf:"scheduler" validate:"oneof=fifo parallel label-setting"`
	Threads         int       `koanf:"threads" validate:"min=1,max=1024"`
	Epsilon         float64   `koanf:"epsilon" validate:"gte=0"`
	Bicriteria      bool      `koanf:"bicriteria"`
	TreeDeletion    bool      `koanf:"tree_deletion"`
	StrictHeuristic bool      `koanf:"strict_heuristic"`
	KeepFrontiers   bool      `koanf:"keep_frontiers"`
	Ceiling         []float64 `koanf:"ceiling" validate:"omitempty,dive,gte=0"`
}

// LogConfig selects the slog handler and an optional rotating file.
type LogConfig struct {
	Level      string `koanf:"level" validate:"oneof=debug info warn error"`
	Format     string `koanf:"format" validate:"oneof=json text"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `koanf:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `koanf:"max_age_days" validate:"gte=0"`
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig selects the run-report sink.
type MetricsConfig struct {
	Backend   string `koanf:"backend" validate:"oneof=none prometheus otel"`
	Namespace string `koanf:"namespace" validate:"required_if=Backend prometheus,excludesall=-"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			Scheduler: pareto.FIFO.String(),
			Threads:   4,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "json",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Metrics: MetricsConfig{
			Backend:   "none",
			Namespace: "paretopath",
		},
	}
}

// Validate checks struct tags and the option combinations pareto.Solve rejects.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fieldPath(fe.Namespace()), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	s := c.Solver
	if math.IsInf(s.Epsilon, 0) {
		return fmt.Errorf("%w: solver.epsilon must be finite", ErrInvalidConfig)
	}
	if s.TreeDeletion && s.Scheduler != pareto.FIFO.String() {
		return fmt.Errorf("%w: solver.tree_deletion requires the fifo scheduler", ErrInvalidConfig)
	}
	if s.Bicriteria && s.Scheduler == pareto.LabelSetting.String() {
		return fmt.Errorf("%w: solver.bicriteria is not supported by label-setting", ErrInvalidConfig)
	}
	if s.Bicriteria && len(s.Ceiling) > 0 && len(s.Ceiling) != 2 {
		return fmt.Errorf("%w: solver.bicriteria needs a 2-objective ceiling, got %d", ErrInvalidConfig, len(s.Ceiling))
	}

	return nil
}

// SolverOptions converts the solver section into pareto options.
// The config must have passed Validate.
func (c *Config) SolverOptions() ([]pareto.Option, error) {
	s := c.Solver
	sched, err := pareto.ParseScheduler(s.Scheduler)
	if err != nil {
		return nil, err
	}

	opts := []pareto.Option{
		pareto.WithScheduler(sched),
		pareto.WithThreads(s.Threads),
		pareto.WithEpsilon(s.Epsilon),
	}
	if s.Bicriteria {
		opts = append(opts, pareto.WithBicriteria())
	}
	if s.TreeDeletion {
		opts = append(opts, pareto.WithTreeDeletion())
	}
	if s.StrictHeuristic {
		opts = append(opts, pareto.WithStrictHeuristic())
	}
	if s.KeepFrontiers {
		opts = append(opts, pareto.WithNodeFrontiers())
	}
	if len(s.Ceiling) > 0 {
		opts = append(opts, pareto.WithBounds(point.Of(s.Ceiling...)))
	}

	return opts, nil
}

// fieldPath drops the root struct name: "Config.solver.threads" -> "solver.threads".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
