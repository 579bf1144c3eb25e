// SPDX-License-Identifier: MIT
// Package: paretopath/pareto
//
// filter.go — heuristic/bound filter applied to freshly built candidates.
//
// With y_i = cost_i + h(v, i) (h ≡ 0 without a heuristic) a candidate at v
// is dropped when:
//   • some h(v, i) is +Inf (target unreachable from v);
//   • y_i > ceiling_i + ε for some i;
//   • linear bounds are present and none satisfies Σ a_i·y_i + a_d ≤ ε.
//
// Admissibility of h is what keeps the frontier complete; it is checked at
// the target during validation, and along every edge in strict mode.

package pareto

import (
	"math"

	"github.com/katalvlaran/paretopath/point"
)

// filter holds the pruning configuration. A nil *filter keeps everything.
type filter struct {
	h       Heuristic
	ceiling point.Point
	bounds  []point.Point
	eps     float64
	dim     int
}

// newFilter returns nil when no pruning is configured.
func newFilter(o *Options, dim int) *filter {
	if o.Heuristic == nil && o.Ceiling == nil && len(o.LinearBounds) == 0 {
		return nil
	}

	return &filter{h: o.Heuristic, ceiling: o.Ceiling, bounds: o.LinearBounds, eps: o.Epsilon, dim: dim}
}

// keep reports whether a candidate with the given cost at node v survives.
// buf must have length dim; it is scratch owned by the calling worker.
func (f *filter) keep(v int, cost point.Point, buf []float64) bool {
	for i := 0; i < f.dim; i++ {
		y := cost[i]
		if f.h != nil {
			h := f.h(v, i)
			if math.IsInf(h, 1) || math.IsNaN(h) {
				return false
			}
			y += h
		}
		if f.ceiling != nil && y > f.ceiling[i]+f.eps {
			return false
		}
		buf[i] = y
	}
	if len(f.bounds) == 0 {
		return true
	}
	for _, b := range f.bounds {
		s := b[f.dim]
		for i := 0; i < f.dim; i++ {
			s += b[i] * buf[i]
		}
		if s <= f.eps {
			return true
		}
	}

	return false
}
