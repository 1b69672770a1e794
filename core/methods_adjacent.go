// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, NeighborIndices) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by edge creation sequence.
//   - NeighborIDs() returns unique labels sorted lex asc.
//   - NeighborIndices() returns unique vertex indices sorted asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the appropriate write locks by mutating code.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns all edges incident to the given vertex, sorted by edge
// creation order. A self-loop appears once; parallel edges appear once each.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			if e := g.edges[eid]; !e.IsNil() {
				out = append(out, e)
			}
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique labels adjacent to id, sorted lexicographically.
// A vertex with a self-loop lists itself.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(k log k) for k unique neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	ids := make([]string, 0, len(g.adjacencyList[id]))
	for to, bucket := range g.adjacencyList[id] {
		if len(bucket) > 0 {
			ids = append(ids, to)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// NeighborIndices returns the stable indices of the vertices adjacent to id,
// in ascending order. It is the allocation-light surface used by index-based
// algorithms.
func (g *Graph) NeighborIndices(id string) ([]int, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	out := make([]int, 0, len(g.adjacencyList[id]))
	for to, bucket := range g.adjacencyList[id] {
		if len(bucket) > 0 {
			out = append(out, g.vertices[to].Index)
		}
	}
	sort.Ints(out)

	return out, nil
}

// AdjacencyIndex returns a snapshot of the graph as index-based adjacency:
// adj[i] lists the sorted neighbor indices of the vertex at insertion index i.
// Algorithms that sweep the whole graph repeatedly take one snapshot instead
// of locking per vertex.
//
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyIndex() [][]int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	adj := make([][]int, len(g.order))
	for i, v := range g.order {
		row := make([]int, 0, len(g.adjacencyList[v.ID]))
		for to, bucket := range g.adjacencyList[v.ID] {
			if len(bucket) > 0 {
				row = append(row, g.vertices[to].Index)
			}
		}
		sort.Ints(row)
		adj[i] = row
	}

	return adj
}

// ensureAdjacency makes adjacencyList[from] non-nil and, when to != "",
// adjacencyList[from][to] as well. Caller holds muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if _, ok := g.adjacencyList[from]; !ok {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if to == "" {
		return
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}
