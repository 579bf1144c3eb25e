// SPDX-License-Identifier: MIT
// Package: paretopath/builder
//
// impl_layered.go - implementation of Layered(layers, width, p) constructor.
//
// Model:
//   - A source "s", `layers` layers of `width` vertices each, and a sink "t".
//   - "s" links to every vertex of layer 0; every vertex of the last layer
//     links to "t".
//   - Vertex (l, i) always links to (l+1, i); every other pair (l, i) → (l+1, j)
//     is added with probability p. Every vertex therefore lies on an s–t route.
//
// Contract:
//   - layers ≥ 1 and width ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability); rng required when 0 < p < 1.
//   - Vertex IDs are "l:i"; cfg.idFn is not consulted.
//   - Edges are always added s→layer→t; the graph should be directed for the
//     layering to constrain routes.
//
// Complexity: O(layers·width²) trials.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/paretopath/core"
)

const (
	methodLayered = "Layered"
	minLayers     = 1
	minWidth      = 1

	// LayeredSource and LayeredSink are the fixed endpoint IDs of Layered.
	LayeredSource = "s"
	LayeredSink   = "t"
)

// LayerID formats the i-th vertex of layer l as "l:i".
func LayerID(l, i int) string {
	return strconv.Itoa(l) + ":" + strconv.Itoa(i)
}

// Layered returns a Constructor for a layered DAG between LayeredSource and
// LayeredSink. Route count grows as width^layers for p = 1.
func Layered(layers, width int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if layers < minLayers || width < minWidth {
			return fmt.Errorf("%s: layers=%d, width=%d (min %d, %d): %w",
				methodLayered, layers, width, minLayers, minWidth, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodLayered, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodLayered, ErrNeedRandSource)
		}

		ids := []string{LayeredSource}
		for l := 0; l < layers; l++ {
			for i := 0; i < width; i++ {
				ids = append(ids, LayerID(l, i))
			}
		}
		ids = append(ids, LayeredSink)
		for _, id := range ids {
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodLayered, id, err)
			}
		}

		for i := 0; i < width; i++ {
			if err := addEdge(g, cfg, methodLayered, LayeredSource, LayerID(0, i), false); err != nil {
				return err
			}
		}
		for l := 0; l+1 < layers; l++ {
			for i := 0; i < width; i++ {
				for j := 0; j < width; j++ {
					if i != j && !trial(cfg, p) {
						continue
					}
					if err := addEdge(g, cfg, methodLayered, LayerID(l, i), LayerID(l+1, j), false); err != nil {
						return err
					}
				}
			}
		}
		for i := 0; i < width; i++ {
			if err := addEdge(g, cfg, methodLayered, LayerID(layers-1, i), LayeredSink, false); err != nil {
				return err
			}
		}

		return nil
	}
}
