// SPDX-License-Identifier: MIT
// Package: paretopath/builder
//
// api.go - public entry point and constructor declarations.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs, options, seed and constructor order give identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/paretopath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors must validate parameters before mutating g and
// must draw edge costs only through cfg.costFn so that seeds stay meaningful.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
//
// If gopts fixes a dimension through core.WithDimension it must agree with
// the builder's WithDimension, otherwise the first edge fails with
// core.ErrCostDimension.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Path(n)                 n ≥ 2; edges i-1 → i.
// Grid(rows, cols)        rows, cols ≥ 1; IDs "r,c"; right and bottom neighbors.
// RandomSparse(n, p)      n ≥ 1, 0 ≤ p ≤ 1; Bernoulli trial per admissible pair.
// Layered(layers, width, p)
//                         "s" → layer 0 → ... → layer L-1 → "t"; IDs "l:i".
//
// Each factory emits edges in a documented stable order and draws one cost
// vector per emitted edge (mirrored arcs share the cost of their original).

// addEdge draws a cost and inserts u→v, mirroring it when mirror is true.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string, mirror bool) error {
	c := cfg.costFn(cfg.rng, cfg.dim)
	if _, err := g.AddEdge(u, v, c); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, c=%s): %w", method, u, v, c, err)
	}
	if mirror {
		if _, err := g.AddEdge(v, u, c); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, c=%s): %w", method, v, u, c, err)
		}
	}

	return nil
}

// addVertices inserts cfg.idFn(0..n-1) in ascending order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}
