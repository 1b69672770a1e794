// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns labels in insertion order; IndexOf/VertexAt agree with it.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import "fmt"

// AddVertex inserts a new vertex with the given label.
//
// Unlike AddEdge, which resolves endpoints idempotently, an explicit
// AddVertex of an existing label fails and leaves the graph unchanged.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrDuplicateVertex: if the label already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}
	g.insertVertex(id)

	return nil
}

// ensureVertex returns the vertex for id, creating it on first reference.
// Caller must not hold any graph lock.
func (g *Graph) ensureVertex(id string) *Vertex {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if v, ok := g.vertices[id]; ok {
		return v
	}

	return g.insertVertex(id)
}

// insertVertex registers a fresh vertex. Caller holds muVert write lock.
func (g *Graph) insertVertex(id string) *Vertex {
	v := &Vertex{ID: id, Index: len(g.order)}
	g.vertices[id] = v
	g.order = append(g.order, v)

	// Bootstrap adjacency bucket so edge methods can rely on its presence.
	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id, "")
	g.muEdgeAdj.Unlock()

	return v
}

// HasVertex reports whether the vertex label exists (empty label ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex record for id.
// The returned pointer refers to the live catalog entry; treat it as read-only.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return v, nil
}

// IndexOf returns the stable insertion index of id.
func (g *Graph) IndexOf(id string) (int, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return -1, false
	}

	return v.Index, true
}

// VertexAt returns the label stored at insertion index i.
func (g *Graph) VertexAt(i int) (string, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if i < 0 || i >= len(g.order) {
		return "", false
	}

	return g.order[i].ID, true
}

// Vertices returns all vertex labels in insertion order.
// The returned slice is a fresh copy.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, len(g.order))
	for i, v := range g.order {
		ids[i] = v.ID
	}

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.order)
}

// Degree returns the number of edges incident to id.
// A self-loop contributes 2, following the usual graph-theory convention.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	deg := 0
	for to, bucket := range g.adjacencyList[id] {
		if to == id {
			deg += 2 * len(bucket)
			continue
		}
		deg += len(bucket)
	}

	return deg, nil
}
