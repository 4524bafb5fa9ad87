// Package bbtsp solves the symmetric Travelling Salesman Problem exactly
// with a concurrent Branch-and-Bound over Held–Karp 1-tree bounds.
//
// The module is organised as small packages, one concern each:
//
//	core/         undirected weighted Graph, Edge, EdgeSet
//	unionfind/    disjoint-set forest used by Kruskal
//	prim_kruskal/ MST and constrained MST (fixed/excluded edges)
//	dfs/          iterative DFS parent map, 1-tree cycle trace
//	tsp/          Subproblem, Branch, work queues, Engine, Solution, Exact
//	builder/      deterministic instance constructors
//	tsplib/       TSPLIB .tsp reader/writer and TOUR output
//	cmd/bbtsp     command line front end (see internal/cli)
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddEdge(1, 2, 10) // ...
//	eng, _ := tsp.NewEngine(g, tsp.WithWorkers(4))
//	sol, _ := eng.Solve(ctx)
//	fmt.Println(sol)
//
//	go install github.com/katalvlaran/bbtsp/cmd/bbtsp@latest
package bbtsp
