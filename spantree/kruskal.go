package spantree

import (
	"errors"

	"github.com/katalvlaran/lvsteiner/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("spantree: graph is nil")

	// ErrDisconnected indicates that no spanning tree exists because the
	// graph has more than one connected component.
	ErrDisconnected = errors.New("spantree: graph is disconnected")
)

// Kruskal returns the edges of a spanning tree of g.
//
// Graphs with zero or one vertex yield an empty tree. Self-loops and all but
// the first of a group of parallel edges are never selected.
//
// Steps:
//  1. Index vertices by their stable insertion index.
//  2. Walk g.Edges() in ID order; union endpoints that are still apart.
//  3. Stop at |V|-1 edges; fewer means ErrDisconnected.
func Kruskal(g *core.Graph) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	if n <= 1 {
		return []core.Edge{}, nil
	}

	ds := newDisjointSet(n)
	tree := make([]core.Edge, 0, n-1)
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		u, okU := g.IndexOf(e.From)
		v, okV := g.IndexOf(e.To)
		if !okU || !okV {
			continue
		}
		if ds.union(u, v) {
			tree = append(tree, *e)
			if len(tree) == n-1 {
				break
			}
		}
	}

	if len(tree) < n-1 {
		return nil, ErrDisconnected
	}

	return tree, nil
}

// disjointSet is a union-find over 0..n-1 with path compression and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

// find walks to the root, halving the path as it goes.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}
	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}
	return true
}
