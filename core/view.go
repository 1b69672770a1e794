// File: view.go
// Role: Non-mutating graph views (copying topology, optionally filtered).
// Determinism:
//   - Preserves vertex labels, relative vertex order, edge IDs and names.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the set keep of vertex labels:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both kept. The input graph is not mutated.
//
// Kept vertices receive fresh dense indices in the same relative order they
// had in g.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	return copyGraph(g, func(id string) bool { return keep[id] })
}

// copyGraph copies configuration, the vertices accepted by keep, and every
// edge with both endpoints accepted.
func copyGraph(g *Graph, keep func(id string) bool) *Graph {
	g.muVert.RLock()
	opts := make([]GraphOption, 0, 2)
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)
	for _, v := range g.order {
		if !keep(v.ID) {
			continue
		}
		nv := &Vertex{ID: v.ID, Index: len(out.order)}
		out.vertices[v.ID] = nv
		out.order = append(out.order, nv)
		out.adjacencyList[v.ID] = make(map[string]map[string]struct{})
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	// Carry the ID counter so future AddEdge calls on the copy cannot collide
	// with copied IDs, even when some edges were filtered out.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		if _, ok := out.vertices[e.From]; !ok {
			continue
		}
		if _, ok := out.vertices[e.To]; !ok {
			continue
		}
		ne := &Edge{ID: e.ID, Name: e.Name, From: e.From, To: e.To}
		out.edges[eid] = ne
		out.edgeOrder = append(out.edgeOrder, eid)
		ensureAdjacency(out, ne.From, ne.To)
		out.adjacencyList[ne.From][ne.To][eid] = struct{}{}
		if ne.From != ne.To {
			ensureAdjacency(out, ne.To, ne.From)
			out.adjacencyList[ne.To][ne.From][eid] = struct{}{}
		}
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}
