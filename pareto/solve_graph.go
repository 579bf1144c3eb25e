// SPDX-License-Identifier: MIT
// Package: paretopath/pareto
//
// solve_graph.go — string-keyed convenience entry point over *core.Graph.

package pareto

import (
	"context"
	"fmt"

	"github.com/katalvlaran/paretopath/core"
	"github.com/katalvlaran/paretopath/point"
)

// GraphSolution is a Solution expressed with core.Graph identifiers.
type GraphSolution struct {
	Edges    []string    // edge IDs, source→target
	Vertices []string    // visited vertex IDs, source first, target last
	Cost     point.Point
}

// GraphResult is the outcome of SolveGraph.
type GraphResult struct {
	RunID     string
	Solutions []GraphSolution
	Stats     Stats
	Frontiers map[string][]point.Point // only with WithNodeFrontiers
}

// SolveGraph snapshots g with core.Graph.Index and runs Solve between two
// vertex IDs. The snapshot already lists only traversable edges per vertex,
// so the run is configured undirected and with the graph's dimension; opts
// are applied afterwards and may override both.
//
// Hooks registered with WithOnSolution receive index-based Solutions; use
// the returned GraphResult for vertex and edge IDs.
func SolveGraph(ctx context.Context, g *core.Graph, source, target string, opts ...Option) (*GraphResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	idx := g.Index()
	s, ok := idx.NodeOf(source)
	if !ok {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	t, ok := idx.NodeOf(target)
	if !ok {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}

	base := make([]Option, 0, len(opts)+2)
	base = append(base, WithDirected(false))
	if d := idx.Dimension(); d > 0 {
		base = append(base, WithDimension(d))
	}
	res, err := Solve(ctx, idx, idx.Cost, s, t, append(base, opts...)...)
	if err != nil {
		return nil, err
	}

	out := &GraphResult{RunID: res.RunID, Stats: res.Stats, Solutions: make([]GraphSolution, len(res.Solutions))}
	for i, sol := range res.Solutions {
		gs := GraphSolution{
			Edges:    make([]string, len(sol.Path)),
			Vertices: make([]string, 0, len(sol.Path)+1),
			Cost:     sol.Cost,
		}
		cur := s
		gs.Vertices = append(gs.Vertices, idx.VertexID(cur))
		for j, e := range sol.Path {
			gs.Edges[j] = idx.EdgeID(e)
			cur = idx.Other(e, cur)
			gs.Vertices = append(gs.Vertices, idx.VertexID(cur))
		}
		out.Solutions[i] = gs
	}
	if res.Frontiers != nil {
		out.Frontiers = make(map[string][]point.Point, len(res.Frontiers))
		for n, f := range res.Frontiers {
			out.Frontiers[idx.VertexID(n)] = f
		}
	}

	return out, nil
}
