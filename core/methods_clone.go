// File: methods_clone.go
// Role: Deep copy of a graph instance.

package core

import "sync/atomic"

// Clone returns a deep copy: configuration, vertices, edges (costs copied) and
// adjacency. The edge ID sequence carries over so future AddEdge calls on the
// clone never collide.
//
// Complexity: O(V + E·d).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := NewGraph(WithDirected(g.directed))
	c.allowMulti, c.allowLoops, c.allowMixed, c.dim = g.allowMulti, g.allowLoops, g.allowMixed, g.dim
	atomic.StoreUint64(&c.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, v := range g.vertices {
		c.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		c.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	for eid, e := range g.edges {
		ce := *e
		ce.Cost = e.Cost.Clone()
		c.edges[eid] = &ce
	}
	for from, tos := range g.adjacencyList {
		for to, set := range tos {
			ensureAdjacency(c, from, to)
			for eid := range set {
				c.adjacencyList[from][to][eid] = struct{}{}
			}
		}
	}

	return c
}
