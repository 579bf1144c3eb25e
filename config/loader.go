// SPDX-License-Identifier: MIT
// Package: paretopath/config
//
// loader.go — layered koanf loading.
//
// Priority (lowest first):
//  1. Default()
//  2. YAML file at path (skipped when path is "")
//  3. PARETO_* environment variables; "__" separates nesting levels, so
//     PARETO_SOLVER__TREE_DELETION=true sets solver.tree_deletion.

package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks the environment variables read by Load.
	EnvPrefix = "PARETO_"
	envNest   = "__"
	delim     = "."
)

// Load builds a validated Config from defaults, an optional YAML file and
// the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(delim)

	if err := k.Load(confmap.Provider(defaultMap(), delim), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, delim, envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps PARETO_SOLVER__TREE_DELETION to solver.tree_deletion.
// Slice fields take comma-separated values.
func envKey(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	key = strings.ReplaceAll(key, envNest, delim)

	if key == "solver.ceiling" {
		return key, splitAndTrim(value)
	}

	return key, value
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// defaultMap flattens Default() into koanf keys.
func defaultMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"solver.scheduler":        d.Solver.Scheduler,
		"solver.threads":          d.Solver.Threads,
		"solver.epsilon":          d.Solver.Epsilon,
		"solver.bicriteria":       d.Solver.Bicriteria,
		"solver.tree_deletion":    d.Solver.TreeDeletion,
		"solver.strict_heuristic": d.Solver.StrictHeuristic,
		"solver.keep_frontiers":   d.Solver.KeepFrontiers,

		"log.level":        d.Log.Level,
		"log.format":       d.Log.Format,
		"log.file":         d.Log.File,
		"log.max_size_mb":  d.Log.MaxSizeMB,
		"log.max_backups":  d.Log.MaxBackups,
		"log.max_age_days": d.Log.MaxAgeDays,
		"log.compress":     d.Log.Compress,

		"metrics.backend":   d.Metrics.Backend,
		"metrics.namespace": d.Metrics.Namespace,
	}
}
