// SPDX-License-Identifier: MIT
// File: index.go
// Role: Dense integer snapshot of a Graph for solver hot loops.
//
// Numbering:
//   - Node i is the i-th vertex of Vertices() (lex asc).
//   - Edge j is the j-th edge of Edges() (natural ID order).
//
// Incidence policy (matches Neighbors):
//   - Incident(n) lists edges traversable out of n: directed edges with From==n,
//     undirected edges at either endpoint. The head is the endpoint != n
//     (for undirected edges stored as From==n, that is To).
//   - Inbound(n) lists edges traversable into n.
//
// The snapshot is immutable and safe for concurrent readers; later mutations
// of the Graph are not reflected.

package core

import "github.com/katalvlaran/paretopath/point"

// Index is an immutable dense view of a Graph.
type Index struct {
	dim      int
	vertices []string
	pos      map[string]int
	edgeIDs  []string
	from, to []int
	directed []bool
	costs    []point.Point
	out, in  [][]int
}

// Index builds a dense snapshot of g.
//
// Complexity: O(V log V + E log E + E·d).
func (g *Graph) Index() *Index {
	vertices := g.Vertices()
	pos := make(map[string]int, len(vertices))
	for i, id := range vertices {
		pos[id] = i
	}
	// Edges added after the vertex snapshot may reference unseen vertices.
	all := g.Edges()
	edges := all[:0]
	for _, e := range all {
		_, okU := pos[e.From]
		_, okV := pos[e.To]
		if okU && okV {
			edges = append(edges, e)
		}
	}

	idx := &Index{
		dim:      g.Dimension(),
		vertices: vertices,
		pos:      pos,
		edgeIDs:  make([]string, len(edges)),
		from:     make([]int, len(edges)),
		to:       make([]int, len(edges)),
		directed: make([]bool, len(edges)),
		costs:    make([]point.Point, len(edges)),
		out:      make([][]int, len(vertices)),
		in:       make([][]int, len(vertices)),
	}
	for j, e := range edges {
		u, v := pos[e.From], pos[e.To]
		idx.edgeIDs[j] = e.ID
		idx.from[j], idx.to[j] = u, v
		idx.directed[j] = e.Directed
		idx.costs[j] = e.Cost.Clone()

		idx.out[u] = append(idx.out[u], j)
		idx.in[v] = append(idx.in[v], j)
		if !e.Directed && u != v {
			idx.out[v] = append(idx.out[v], j)
			idx.in[u] = append(idx.in[u], j)
		}
	}

	return idx
}

// Dimension returns the cost dimension of the snapshot (0 for an edgeless graph).
func (x *Index) Dimension() int { return x.dim }

// NodeCount returns |V|.
func (x *Index) NodeCount() int { return len(x.vertices) }

// EdgeCount returns |E|.
func (x *Index) EdgeCount() int { return len(x.edgeIDs) }

// Incident returns the edges traversable out of node n. Read-only.
func (x *Index) Incident(n int) []int { return x.out[n] }

// Inbound returns the edges traversable into node n. Read-only.
func (x *Index) Inbound(n int) []int { return x.in[n] }

// Endpoints returns the stored (From, To) node indices of edge e.
func (x *Index) Endpoints(e int) (int, int) { return x.from[e], x.to[e] }

// Other returns the endpoint of e opposite to n.
func (x *Index) Other(e, n int) int {
	if x.from[e] == n {
		return x.to[e]
	}

	return x.from[e]
}

// EdgeDirected reports whether edge e is one-way.
func (x *Index) EdgeDirected(e int) bool { return x.directed[e] }

// Cost returns the cost vector of edge e. Read-only.
func (x *Index) Cost(e int) point.Point { return x.costs[e] }

// NodeOf maps a vertex ID to its index.
func (x *Index) NodeOf(id string) (int, bool) {
	n, ok := x.pos[id]

	return n, ok
}

// VertexID maps a node index back to its vertex ID.
func (x *Index) VertexID(n int) string { return x.vertices[n] }

// EdgeID maps an edge index back to its edge ID.
func (x *Index) EdgeID(e int) string { return x.edgeIDs[e] }
