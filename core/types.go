// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building and querying
// undirected, unweighted graphs keyed by vertex label.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be built and read across
// goroutines with minimal contention.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex label is the empty string.
//	ErrDuplicateVertex     - explicit AddVertex of a label that already exists.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex label is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates an explicit AddVertex for a label already present.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph. Index is the position
// of the vertex in the graph's insertion order and never changes, because
// vertices are never removed.
type Vertex struct {
	// ID is the unique label of this Vertex.
	ID string

	// Index is the stable insertion position, 0..V-1.
	Index int
}

// IsNil reports whether the receiver is nil; safe on typed-nil values.
func (v *Vertex) IsNil() bool { return v == nil }

// Edge represents a named, undirected connection between two vertices.
//
// From/To record the creation order only; traversal treats the edge as
// symmetric, and so do Key and Equal.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// Name is the caller-supplied edge name. Defaults to ID when empty.
	Name string

	// From is the first endpoint given to AddEdge.
	From string

	// To is the second endpoint given to AddEdge.
	To string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same pair of vertices.
// Every parallel edge is kept and reported by EdgesBetween.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// The graph is undirected and unweighted. Vertices are kept in insertion
// order so that algorithms can address them by a dense, stable index.
// muVert protects the vertex catalog; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, order
	muEdgeAdj sync.RWMutex // guards edges, edgeOrder, adjacencyList

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // label → Vertex
	order      []*Vertex          // insertion order; order[i].Index == i
	edges      map[string]*Edge   // edge ID → Edge
	edgeOrder  []string           // edge IDs in insertion order

	// adjacencyList[from][to][edgeID] = struct{}{}, mirrored for both endpoints.
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the graph has no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
