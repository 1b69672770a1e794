// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: configuration, vertices (with
// their indices), edges, and adjacency.
//
// Solvers treat their input as read-only; callers that keep mutating a
// graph while solves run elsewhere should hand each solve a Clone.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	return copyGraph(g, func(string) bool { return true })
}
