// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvsteiner/core"
)

// BenchmarkAddEdge measures adding edges in a star that keeps growing.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i), "")
	}
}

// BenchmarkNeighborIDs measures neighbor retrieval on a 1000-leaf star.
func BenchmarkNeighborIDs(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_, _ = g.AddEdge("Center", fmt.Sprintf("Node%d", i), "")
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.NeighborIDs("Center")
	}
}

// BenchmarkAdjacencyIndex measures the whole-graph index snapshot on a 50×50 grid.
func BenchmarkAdjacencyIndex(b *testing.B) {
	g := core.NewGraph()
	const n = 50
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c+1 < n {
				_, _ = g.AddEdge(fmt.Sprintf("%d,%d", r, c), fmt.Sprintf("%d,%d", r, c+1), "")
			}
			if r+1 < n {
				_, _ = g.AddEdge(fmt.Sprintf("%d,%d", r, c), fmt.Sprintf("%d,%d", r+1, c), "")
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AdjacencyIndex()
	}
}
