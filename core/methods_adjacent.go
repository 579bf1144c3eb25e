// File: methods_adjacent.go
// Role: Neighborhood API and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by natural Edge.ID order.

package core

import "sort"

// Neighbors returns the edges that can be traversed out of id:
// directed edges with e.From == id, and every incident undirected edge once.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e == nil {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessEdgeID(out[i].ID, out[j].ID) })

	return out, nil
}

// ensureAdjacency creates the adjacencyList[from][to] bucket. Caller holds muEdgeAdj.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e (and its mirror) and drops empty buckets. Caller holds muEdgeAdj.
func removeAdjacency(g *Graph, e *Edge) {
	unlink := func(a, b string) {
		inner := g.adjacencyList[a][b]
		if inner == nil {
			return
		}
		delete(inner, e.ID)
		if len(inner) == 0 {
			delete(g.adjacencyList[a], b)
		}
	}
	unlink(e.From, e.To)
	if !e.Directed {
		unlink(e.To, e.From)
	}
}
