package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/bfs"
	"github.com/katalvlaran/lvsteiner/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid.
func ExampleBFS_gridTraversal() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), "")
			}
			if i+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), "")
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleShortestPath finds the fewest-hop route when a longer competing route exists.
func ExampleShortestPath() {
	g := core.NewGraph()
	// Route 1: A–B–C–D–K (4 hops)
	_, _ = g.AddEdge("A", "B", "")
	_, _ = g.AddEdge("B", "C", "")
	_, _ = g.AddEdge("C", "D", "")
	_, _ = g.AddEdge("D", "K", "")
	// Route 2: A–E–F–K (3 hops)
	_, _ = g.AddEdge("A", "E", "")
	_, _ = g.AddEdge("E", "F", "")
	_, _ = g.AddEdge("F", "K", "")

	path, err := bfs.ShortestPath(g, "A", "K")
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [A E F K]
}

// ExampleDistances prints hop counts in vertex insertion order.
func ExampleDistances() {
	g := core.NewGraph()
	_, _ = g.AddEdge("hub", "x", "")
	_, _ = g.AddEdge("x", "y", "")
	_ = g.AddVertex("island")

	dist, _ := bfs.Distances(g, "hub")
	for i, d := range dist {
		id, _ := g.VertexAt(i)
		fmt.Printf("%s=%d\n", id, d)
	}
	// Output:
	// hub=0
	// x=1
	// y=2
	// island=-1
}

// ExampleBFS_depthLimitOnChain applies WithMaxDepth to a chain of 10 vertices.
func ExampleBFS_depthLimitOnChain() {
	g := core.NewGraph()
	for i := 0; i < 9; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), "")
	}

	res, err := bfs.BFS(g, "v0", bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [v0 v1 v2]
}
