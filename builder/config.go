// SPDX-License-Identifier: MIT
// Package: paretopath/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn   = DefaultIDFn        ("0","1","2",...)
//   • rng    = nil                (no randomness unless seeded)
//   • dim    = DefaultDimension   (bicriteria)
//   • costFn = DefaultCostFn      (all-ones vector)

package builder

import (
	"math/rand"
)

// DefaultDimension is the number of objectives drawn when WithDimension is not used.
const DefaultDimension = 2

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn   IDFn
	rng    *rand.Rand // nil means no randomness
	dim    int
	costFn CostFn
}

// newBuilderConfig applies opts over the defaults; later options win.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		dim:    DefaultDimension,
		costFn: DefaultCostFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
