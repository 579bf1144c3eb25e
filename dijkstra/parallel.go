package dijkstra

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// forEachObjective runs fn(k) for k in [0, d) concurrently and returns the
// first error. The context passed to fn is cancelled once any call fails.
func forEachObjective(ctx context.Context, d int, fn func(ctx context.Context, k int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for k := 0; k < d; k++ {
		g.Go(func() error { return fn(gctx, k) })
	}

	return g.Wait()
}
