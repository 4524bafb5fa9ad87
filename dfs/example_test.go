package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/bbtsp/core"
	"github.com/katalvlaran/bbtsp/dfs"
)

// ExampleCycleThrough finds the square inside a 1-tree with a pendant node.
func ExampleCycleThrough() {
	g := core.NewGraph()
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(3, 4, 1)
	_ = g.AddEdge(4, 5, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(1, 3, 1)

	cycle, _ := dfs.CycleThrough(g, 1)
	for _, e := range cycle {
		fmt.Printf("%d-%d ", e.U, e.V)
	}
	fmt.Println()

	// Output:
	// 3-1 2-3 1-2
}
