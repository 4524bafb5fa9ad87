package builder_test

import (
	"fmt"

	"github.com/katalvlaran/bbtsp/builder"
)

// ExampleBuildGraph builds a weighted 4-cycle.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithConstantWeight(2)},
		builder.Cycle(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Nodes(), g.EdgeCount()/2, g.TotalWeight()/2)
	// Output:
	// [1 2 3 4] 4 8
}
