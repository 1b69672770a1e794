// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeBetween/EdgesBetween/GetEdge/Edges/EdgeCount,
//       plus symmetric edge identity (Key/Equal/Other) and nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - EdgesBetween() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge between src and dst named name and
// returns its ID. Both endpoints are resolved or created on demand, so an
// existing label never produces ErrDuplicateVertex here.
//
// Steps:
//  1. Validate labels and the loop constraint.
//  2. Ensure both endpoints exist (idempotent).
//  3. Lock muEdgeAdj, check the multi-edge constraint.
//  4. Generate eid atomically, store the edge, link adjacency in both directions.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, dst, name string) (string, error) {
	// 1) Input validation
	if src == "" || dst == "" {
		return "", ErrEmptyVertexID
	}
	if src == dst && !g.allowLoops {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, src)
	}

	// 2) Ensure vertices exist
	g.ensureVertex(src)
	g.ensureVertex(dst)

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacencyList[src][dst]; len(inner) > 0 {
			return "", fmt.Errorf("%w: %q-%q", ErrMultiEdgeNotAllowed, src, dst)
		}
	}

	// 4) Store and link adjacency
	eid := nextEdgeID(g)
	if name == "" {
		name = eid
	}
	e := &Edge{ID: eid, Name: name, From: src, To: dst}
	g.edges[eid] = e
	g.edgeOrder = append(g.edgeOrder, eid)

	ensureAdjacency(g, src, dst)
	g.adjacencyList[src][dst][eid] = struct{}{}
	if src != dst {
		ensureAdjacency(g, dst, src)
		g.adjacencyList[dst][src][eid] = struct{}{}
	}

	return eid, nil
}

// HasEdge reports whether at least one edge connects a and b.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[a][b]) > 0
}

// EdgeBetween returns the edge connecting a and b. In a multigraph the edge
// with the lowest ID is returned; use EdgesBetween for all of them.
//
// Errors:
//   - ErrEdgeNotFound if a and b are not directly connected.
//
// Complexity: O(k log k) for k parallel edges, O(1) otherwise.
func (g *Graph) EdgeBetween(a, b string) (*Edge, error) {
	edges := g.EdgesBetween(a, b)
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: %q-%q", ErrEdgeNotFound, a, b)
	}

	return edges[0], nil
}

// EdgesBetween returns every edge connecting a and b, sorted by numeric edge ID.
// The result is empty (not nil-error) when the vertices are not adjacent.
func (g *Graph) EdgesBetween(a, b string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket := g.adjacencyList[a][b]
	out := make([]*Edge, 0, len(bucket))
	for eid := range bucket {
		if e := g.edges[eid]; e != nil {
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out
}

// GetEdge returns the edge with the given ID.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEdgeNotFound, edgeID)
	}

	return e, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, g.edges[eid])
	}

	return out
}

// EdgeCount returns the total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Key returns the canonical unordered endpoint pair of e, smaller label first.
func (e *Edge) Key() [2]string {
	if e.To < e.From {
		return [2]string{e.To, e.From}
	}

	return [2]string{e.From, e.To}
}

// Equal reports whether e and o describe the same named connection.
// Orientation is ignored: A→B "x" equals B→A "x".
func (e *Edge) Equal(o *Edge) bool {
	if e == nil || o == nil {
		return e == o
	}

	return e.Name == o.Name && e.Key() == o.Key()
}

// Other returns the endpoint of e opposite to id, or "" when id is not an endpoint.
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// IsNil reports whether the receiver is nil.
func (e *Edge) IsNil() bool { return e == nil }

// String implements fmt.Stringer.
func (e *Edge) String() string {
	return e.Name + "(" + e.From + " - " + e.To + ")"
}

// nextEdgeID generates the next edge identifier without fmt allocations.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq extracts the numeric part of an edge ID; non-conforming IDs sort last.
func edgeSeq(id string) uint64 {
	if len(id) < 2 || id[0] != edgeIDPrefix {
		return ^uint64(0)
	}
	n, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return ^uint64(0)
	}

	return n
}

// sortEdges orders edges by creation sequence so that "e10" follows "e9".
func sortEdges(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool {
		si, sj := edgeSeq(edges[i].ID), edgeSeq(edges[j].ID)
		if si != sj {
			return si < sj
		}
		return edges[i].ID < edges[j].ID
	})
}
