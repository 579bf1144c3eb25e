// SPDX-License-Identifier: MIT

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paretopath/core"
)

func TestIndex_Numbering(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge(VertexB, VertexC, Cost35)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexA, VertexB, Cost12)
	require.NoError(t, err)

	idx := g.Index()
	require.Equal(t, 3, idx.NodeCount())
	require.Equal(t, 2, idx.EdgeCount())
	require.Equal(t, 2, idx.Dimension())

	a, ok := idx.NodeOf(VertexA)
	require.True(t, ok)
	require.Equal(t, 0, a)
	require.Equal(t, VertexC, idx.VertexID(2))

	// Edge 0 is e1 (B→C), edge 1 is e2 (A→B).
	require.Equal(t, "e1", idx.EdgeID(0))
	u, v := idx.Endpoints(0)
	require.Equal(t, 1, u)
	require.Equal(t, 2, v)
	require.Equal(t, Cost35, idx.Cost(0))

	require.Equal(t, []int{1}, idx.Incident(a))
	require.Equal(t, []int{0}, idx.Incident(1))
	require.Empty(t, idx.Incident(2))
	require.Equal(t, []int{0}, idx.Inbound(2))
	require.True(t, idx.EdgeDirected(0))

	_, ok = idx.NodeOf("missing")
	require.False(t, ok)
}

func TestIndex_UndirectedIncidence(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(VertexA, VertexB, Cost11)
	require.NoError(t, err)

	idx := g.Index()
	require.Equal(t, []int{0}, idx.Incident(0))
	require.Equal(t, []int{0}, idx.Incident(1))
	require.Equal(t, []int{0}, idx.Inbound(0))
	require.Equal(t, 1, idx.Other(0, 0))
	require.Equal(t, 0, idx.Other(0, 1))
}

func TestGraph_ConcurrentAddsAndIndex(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	var wg sync.WaitGroup
	errs := make(chan error, NConcurrentAdds)
	for i := 0; i < NConcurrentAdds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.AddEdge(VertexA, VertexB, Cost11); err != nil {
				errs <- err
			}
		}()
	}
	for i := 0; i < NReaders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Index()
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, NConcurrentAdds, g.Index().EdgeCount())
}
