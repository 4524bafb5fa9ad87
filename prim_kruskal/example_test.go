package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/bbtsp/core"
	"github.com/katalvlaran/bbtsp/prim_kruskal"
)

// ExampleMSTWithConstraints forces the heavy diagonal of a square into the
// tree and forbids its cheapest side.
func ExampleMSTWithConstraints() {
	g := core.NewGraph()
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 3, 2)
	_ = g.AddEdge(3, 4, 3)
	_ = g.AddEdge(4, 1, 4)
	_ = g.AddEdge(1, 3, 9)

	tree, _ := prim_kruskal.MSTWithConstraints(g,
		core.NewEdgeSet(core.Edge{U: 1, V: 3, Weight: 9}),
		core.NewEdgeSet(core.Edge{U: 1, V: 2}))
	for _, e := range tree {
		fmt.Println(e)
	}

	// Output:
	// (1, 3|9)
	// (2, 3|2)
	// (3, 4|3)
}

func ExampleKruskal() {
	g := core.NewGraph()
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 3, 2)
	_ = g.AddEdge(1, 3, 4)

	_, total, _ := prim_kruskal.Kruskal(g)
	fmt.Println("total:", total)

	// Output:
	// total: 3
}
