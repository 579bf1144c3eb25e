// SPDX-License-Identifier: MIT
// Package: paretopath/pareto
//
// validate.go — eager precondition checks.
//
// A wrong input never yields a silently wrong frontier: dimension, edge
// costs, node ranges, bounds, heuristic admissibility at the target and
// option combinations are all checked before the first label is built.
// Validation order:
//   1. ErrNilGraph, ErrNilCost
//   2. ErrNodeOutOfRange
//   3. ErrBadEpsilon, ErrBadThreads, ErrIncompatibleOptions
//   4. ErrBadDimension, ErrCostDimension, ErrNegativeCost (O(E·d) scan)
//   5. ErrBadBound
//   6. ErrInadmissibleHeuristic (O(V·d)), ErrInconsistentHeuristic (strict, O(E·d))

package pareto

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paretopath/point"
)

// validate checks the run inputs and returns the copied edge costs and the
// dimension. Once resolved, the dimension is returned on failure too.
func validate(g Graph, cost CostFunc, src, dst int, o *Options) ([]point.Point, int, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if cost == nil {
		return nil, 0, ErrNilCost
	}
	n := g.NodeCount()
	if src < 0 || src >= n {
		return nil, 0, fmt.Errorf("%w: source %d, %d nodes", ErrNodeOutOfRange, src, n)
	}
	if dst < 0 || dst >= n {
		return nil, 0, fmt.Errorf("%w: target %d, %d nodes", ErrNodeOutOfRange, dst, n)
	}
	if err := validateOptions(o); err != nil {
		return nil, 0, err
	}

	dim, costs, err := validateCosts(g, cost, o)
	if err != nil {
		return nil, dim, err
	}
	if o.Bicriteria && dim != 2 {
		return nil, dim, fmt.Errorf("%w: bicriteria merge needs 2 objectives, have %d", ErrIncompatibleOptions, dim)
	}
	if err = validateBounds(o, dim); err != nil {
		return nil, dim, err
	}
	if o.Heuristic != nil {
		if err = validateHeuristic(g, costs, dst, dim, o); err != nil {
			return nil, dim, err
		}
	}

	return costs, dim, nil
}

// validateOptions rejects tolerance, thread and scheduler combinations the engine cannot honor.
func validateOptions(o *Options) error {
	if !(o.Epsilon >= 0) || math.IsInf(o.Epsilon, 1) {
		return fmt.Errorf("%w: %g", ErrBadEpsilon, o.Epsilon)
	}
	if o.Scheduler == Parallel && o.Threads < 1 {
		return fmt.Errorf("%w: %d", ErrBadThreads, o.Threads)
	}
	if o.Logger == nil {
		return fmt.Errorf("%w: nil logger", ErrIncompatibleOptions)
	}
	switch o.Scheduler {
	case FIFO:
	case Parallel:
		if o.TreeDeletion {
			return fmt.Errorf("%w: tree deletion writes across neighborhoods and cannot run in parallel", ErrIncompatibleOptions)
		}
	case LabelSetting:
		if o.TreeDeletion || o.Bicriteria {
			return fmt.Errorf("%w: label-setting supports neither tree deletion nor the bicriteria merge", ErrIncompatibleOptions)
		}
	default:
		return fmt.Errorf("%w: unknown scheduler %d", ErrIncompatibleOptions, int(o.Scheduler))
	}
	if o.AutoHeuristic && o.Heuristic != nil {
		return fmt.Errorf("%w: explicit heuristic together with automatic lower bounds", ErrIncompatibleOptions)
	}

	return nil
}

// validateCosts resolves the dimension and copies every edge cost.
// Without WithDimension the first edge decides; an edgeless graph falls back
// to the ceiling's dimension.
func validateCosts(g Graph, cost CostFunc, o *Options) (int, []point.Point, error) {
	m := g.EdgeCount()
	dim := o.Dimension
	if dim == 0 {
		switch {
		case m > 0:
			dim = len(cost(0))
		case o.Ceiling != nil:
			dim = len(o.Ceiling)
		}
	}
	if dim < 1 {
		return 0, nil, fmt.Errorf("%w: got %d", ErrBadDimension, dim)
	}

	costs := make([]point.Point, m)
	for e := 0; e < m; e++ {
		c := cost(e)
		if len(c) != dim {
			return dim, nil, fmt.Errorf("%w: edge %d has %d components, want %d", ErrCostDimension, e, len(c), dim)
		}
		if !c.IsFinite() || !c.IsNonNegative() {
			return dim, nil, fmt.Errorf("%w: edge %d cost=%s", ErrNegativeCost, e, c)
		}
		costs[e] = c.Clone()
	}

	return dim, costs, nil
}

// validateBounds checks ceiling and linear bound shapes.
func validateBounds(o *Options, dim int) error {
	if o.Ceiling != nil {
		if len(o.Ceiling) != dim {
			return fmt.Errorf("%w: ceiling has %d components, want %d", ErrBadBound, len(o.Ceiling), dim)
		}
		for _, v := range o.Ceiling {
			if math.IsNaN(v) {
				return fmt.Errorf("%w: ceiling=%s", ErrBadBound, o.Ceiling)
			}
		}
	}
	for i, b := range o.LinearBounds {
		if len(b) != dim+1 {
			return fmt.Errorf("%w: linear bound %d has %d components, want %d", ErrBadBound, i, len(b), dim+1)
		}
		if !b.IsFinite() {
			return fmt.Errorf("%w: linear bound %d=%s", ErrBadBound, i, b)
		}
	}

	return nil
}

// validateHeuristic checks admissibility at the target, NaN-freedom
// everywhere and, in strict mode, consistency on every usable edge.
func validateHeuristic(g Graph, costs []point.Point, dst, dim int, o *Options) error {
	h := o.Heuristic
	for i := 0; i < dim; i++ {
		if v := h(dst, i); math.IsNaN(v) || v > o.Epsilon {
			return fmt.Errorf("%w: h(target, %d)=%g", ErrInadmissibleHeuristic, i, v)
		}
	}
	n := g.NodeCount()
	for u := 0; u < n; u++ {
		for i := 0; i < dim; i++ {
			if math.IsNaN(h(u, i)) {
				return fmt.Errorf("%w: h(%d, %d) is NaN", ErrInadmissibleHeuristic, u, i)
			}
		}
	}
	if !o.StrictHeuristic {
		return nil
	}
	for u := 0; u < n; u++ {
		for _, e := range g.Incident(u) {
			from, to := g.Endpoints(e)
			v := to
			if from != u {
				if o.Directed {
					continue
				}
				v = from
			}
			if v == u {
				continue
			}
			for i := 0; i < dim; i++ {
				hu, hv := h(u, i), h(v, i)
				if math.IsInf(hv, 1) {
					continue
				}
				if hu > costs[e][i]+hv+o.Epsilon {
					return fmt.Errorf("%w: edge %d (%d→%d) objective %d: h=%g > %g+%g",
						ErrInconsistentHeuristic, e, u, v, i, hu, costs[e][i], hv)
				}
			}
		}
	}

	return nil
}
