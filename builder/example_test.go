package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/builder"
)

// ExampleBuildGraph builds a labelled 4-cycle.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDPrefix("c")},
		builder.Cycle(4),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Vertices())
	fmt.Println(g.EdgeCount())
	// Output:
	// [c0 c1 c2 c3]
	// 4
}
