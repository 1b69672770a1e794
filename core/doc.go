// Package core provides a thread-safe in-memory Graph for undirected,
// unweighted graphs whose vertices are identified by unique labels.
//
// The Graph G = (V,E) keeps:
//
//   - An insertion-ordered vertex sequence. A vertex's position in it is its
//     Index, a dense and stable 0..V-1 key that index-based algorithms (BFS
//     distance tables, subset DPs) use directly. Vertices are never removed,
//     so indices never shift.
//   - A label → Vertex map for O(1) lookup and deduplication.
//   - An insertion-ordered edge catalog with atomic Edge.ID generation
//     ("e1", "e2", …) and a caller-supplied Edge.Name.
//   - Nested adjacency adjacencyList[from][to][edgeID], mirrored for both
//     endpoints, so edge lookup by endpoint pair is O(1).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj), always acquired in that order.
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints; each one is
//	    tracked. Otherwise a second AddEdge(a,b) → ErrMultiEdgeNotAllowed and
//	    the graph is left unchanged.
//
//	– WithLoops()
//	    Permits self-loops (a == b); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                 // O(1), ErrDuplicateVertex if present
//	HasVertex(id string) bool                  // O(1)
//	Vertex(id string) (*Vertex, error)         // O(1)
//	IndexOf(id string) (int, bool)             // O(1)
//	VertexAt(i int) (string, bool)             // O(1)
//
//	// Edge lifecycle
//	AddEdge(src, dst, name string) (edgeID string, err error) // O(1)†, creates endpoints
//	HasEdge(a, b string) bool                  // O(1)
//	EdgeBetween(a, b string) (*Edge, error)    // O(1)†
//	EdgesBetween(a, b string) []*Edge          // all parallel edges
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)      // sorted by creation order
//	NeighborIDs(id string) ([]string, error)   // unique, sorted
//	NeighborIndices(id string) ([]int, error)  // unique, sorted
//	AdjacencyIndex() [][]int                   // whole-graph index snapshot
//	Vertices() []string                        // insertion order
//	Edges() []*Edge                            // insertion order
//
// Edge identity is symmetric: Edge.Key() is the endpoint pair in canonical
// (lexicographic) order, and Edge.Equal compares Name and Key, so an edge
// A→B named "x" equals B→A named "x".
//
//	† amortized constant time.
package core
