// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	AllowsMulti bool // parallel edges permitted
	AllowsLoops bool // self-loops permitted

	VertexCount int
	EdgeCount   int
	LoopCount   int // edges with From == To
	// ParallelCount is the number of edges that share their endpoint pair
	// with an earlier edge.
	ParallelCount int
	// IsolatedCount is the number of vertices with no incident edge.
	IsolatedCount int
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
//
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
// If false, a second AddEdge between the same pair returns ErrMultiEdgeNotAllowed.
//
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Stats produces a deterministic snapshot of configuration flags and counts.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, snapshot flags and vertex count.
//   - Stage 2: Under muEdgeAdj.RLock, scan the edge catalog and adjacency once.
//
// The two phases never hold both locks, so a concurrent mutation may land
// between them; each phase is internally consistent.
//
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.order),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	seen := make(map[[2]string]struct{}, len(g.edges))
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		if e.From == e.To {
			stats.LoopCount++
		}
		k := e.Key()
		if _, dup := seen[k]; dup {
			stats.ParallelCount++
			continue
		}
		seen[k] = struct{}{}
	}
	for _, nbrs := range g.adjacencyList {
		if len(nbrs) == 0 {
			stats.IsolatedCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
