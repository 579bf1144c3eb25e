// SPDX-License-Identifier: MIT
// Package: paretopath/builder
//
// cost_fn.go — edge cost distributions.
//
// Every CostFn returns a fresh d-dimensional, finite, non-negative vector.
// With a nil RNG the stochastic generators fall back to DefaultCostFn so that
// unseeded builds stay deterministic.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/paretopath/point"
)

// DefaultEdgeCost is the per-objective value of DefaultCostFn.
const DefaultEdgeCost = 1.0

// CostFn produces one edge cost vector of dimension dim.
type CostFn func(rng *rand.Rand, dim int) point.Point

// DefaultCostFn returns the all-ones vector.
func DefaultCostFn(_ *rand.Rand, dim int) point.Point {
	return point.Fill(dim, DefaultEdgeCost)
}

// ConstantCostFn returns a CostFn that always yields a copy of c.
// Panics if c is empty, negative or non-finite. The dim argument must equal
// len(c); a mismatch surfaces as core.ErrCostDimension when the edge is added.
func ConstantCostFn(c point.Point) CostFn {
	if len(c) == 0 || !c.IsFinite() || !c.IsNonNegative() {
		panic(fmt.Sprintf("ConstantCostFn: cost must be finite and non-negative, got %s", c))
	}
	c = c.Clone()

	return func(_ *rand.Rand, _ int) point.Point { return c.Clone() }
}

// UniformCostFn samples every objective independently from [min, max).
// Panics unless 0 ≤ min ≤ max.
func UniformCostFn(min, max float64) CostFn {
	if !(min >= 0) || !(max >= min) || math.IsInf(max, 0) {
		panic(fmt.Sprintf("UniformCostFn: require 0 ≤ min ≤ max < Inf, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand, dim int) point.Point {
		if rng == nil {
			return DefaultCostFn(nil, dim)
		}
		p := point.New(dim)
		for i := range p {
			p[i] = min + rng.Float64()*(max-min)
		}
		return p
	}
}

// IntCostFn samples every objective independently from the integers in
// [min, max]. Small integer ranges produce many equal and tied costs, which
// is what dominance edge cases need. Panics unless 0 ≤ min ≤ max.
func IntCostFn(min, max int) CostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntCostFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand, dim int) point.Point {
		if rng == nil {
			return DefaultCostFn(nil, dim)
		}
		p := point.New(dim)
		for i := range p {
			p[i] = float64(min + rng.Intn(max-min+1))
		}
		return p
	}
}

// AntiCorrelatedCostFn draws costs whose objectives trade off against each
// other: the vector sums to roughly total, split at random. Such graphs have
// large Pareto frontiers. Panics if total ≤ 0.
func AntiCorrelatedCostFn(total float64) CostFn {
	if !(total > 0) || math.IsInf(total, 0) {
		panic(fmt.Sprintf("AntiCorrelatedCostFn: total must be positive and finite, got %g", total))
	}

	return func(rng *rand.Rand, dim int) point.Point {
		if rng == nil {
			return DefaultCostFn(nil, dim)
		}
		p := point.New(dim)
		var sum float64
		for i := range p {
			p[i] = rng.ExpFloat64()
			sum += p[i]
		}
		for i := range p {
			p[i] = math.Round(p[i] / sum * total)
		}
		return p
	}
}

// WithConstantCost sets every edge cost to c.
func WithConstantCost(c point.Point) BuilderOption {
	return WithCostFn(ConstantCostFn(c))
}

// WithUniformCost draws each objective from U[min,max).
func WithUniformCost(min, max float64) BuilderOption {
	return WithCostFn(UniformCostFn(min, max))
}

// WithIntCost draws each objective from the integers in [min,max].
func WithIntCost(min, max int) BuilderOption {
	return WithCostFn(IntCostFn(min, max))
}

// WithAntiCorrelatedCost draws trade-off costs summing to about total.
func WithAntiCorrelatedCost(total float64) BuilderOption {
	return WithCostFn(AntiCorrelatedCostFn(total))
}
