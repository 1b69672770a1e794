package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()

	// Adding edges creates the endpoints on demand.
	_, _ = g.AddEdge("A", "B", "AB_Connection")
	_, _ = g.AddEdge("A", "F", "AF_Connection")
	_, _ = g.AddEdge("B", "C", "BC_Connection")

	fmt.Println("Vertices:", g.Vertices())
	nbrs, _ := g.NeighborIDs("A")
	fmt.Println("Neighbors of A:", nbrs)
	e, _ := g.EdgeBetween("B", "A")
	fmt.Println("Edge B-A:", e.Name)

	// Explicit creation of an existing label fails.
	err := g.AddVertex("C")
	fmt.Println("duplicate:", errors.Is(err, core.ErrDuplicateVertex))

	// Output:
	// Vertices: [A B F C]
	// Neighbors of A: [B F]
	// Edge B-A: AB_Connection
	// duplicate: true
}
