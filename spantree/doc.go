// Package spantree extracts a spanning tree from an unweighted, undirected
// core.Graph.
//
// The Steiner solver returns a vertex set; the induced subgraph on that set
// may contain more edges than the tree needs (chords between tree vertices,
// parallel edges). Kruskal keeps exactly |V|-1 of them.
//
// Determinism
//
//	Edges are scanned in creation order (edge ID sequence), so for a given
//	graph the same tree is always produced.
//
// Complexity: O(E·α(V)) time, O(V) memory. No sorting is needed because
// every edge has unit weight.
package spantree
