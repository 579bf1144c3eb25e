// Package core provides a thread-safe in-memory Graph whose edges carry
// vector-valued costs, plus Index, the dense integer snapshot that the
// Pareto search engine and the scalar shortest-path helpers consume.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Fixed cost dimension d (WithDimension, or inferred from the first edge)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string, cost point.Point, opts ...EdgeOption) (edgeID string, err error)
//	RemoveEdge(edgeID string) error    // O(1)
//	HasEdge(from, to string) bool      // O(1)
//	GetEdge(edgeID string) (*Edge, error)
//
//	// Query (deterministic order)
//	Neighbors(id string) ([]*Edge, error)   // traversable edges out of id, by Edge.ID
//	Vertices() []string                      // lex asc
//	Edges() []*Edge                          // by Edge.ID (numeric suffix order)
//
//	// Snapshot
//	Index() *Index                           // O(V log V + E log E)
//
// Edge IDs are ordered “naturally” (e2 before e10) everywhere an order is
// promised, so Index edge numbering follows insertion order.
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadCost              – empty cost vector
//	ErrCostDimension        – cost dimension differs from the graph dimension
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed mode
package core
