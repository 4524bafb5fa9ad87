// Package tsp solves the symmetric Travelling Salesman Problem exactly with a
// concurrent Branch-and-Bound over Held–Karp 1-tree relaxations.
//
// Pipeline:
//
//	Engine.Solve(ctx)
//	  ├─ degree check on a private clone of the graph (UnsolvableError or drop)
//	  ├─ root Subproblem: 1-tree with no constraints, pushed on the work queue
//	  └─ worker pool (errgroup), each worker looping:
//	       Pop(ctx, 100ms) → evaluate → push children → Done
//	       on an empty poll with an idle queue: flip completion, close queue
//
// Subproblem
//
//	Built eagerly from (base graph, target, fixed, excluded, depth):
//	constrained Kruskal forest over V\{target}, then two target edges.
//	Bound = ⌊Σ directional one-tree weights⌋ / 2 (integer division).
//	Feasible  ⇔ one-tree spans every node with exactly |V| edges.
//	Hamiltonian ⇔ every one-tree node has degree 2.
//
// Branching
//
//	The unique cycle through the target is traced with dfs.CycleThrough.
//	For each cycle edge e_k not already fixed, in trace order, one child is
//	created with excluded ∪ {e_k} and fixed ∪ {e_1..e_{k-1}} (the non-fixed
//	edges already processed). The children partition the parent's tours.
//
// Queue policies
//
//	BestFS: gods binary heap, bound ascending, Hamiltonian first on ties.
//	DFS:    gods array stack, last in first out.
//
// Evaluation of a popped subproblem:
//
//	infeasible                           → infeasible-closed
//	Hamiltonian, bound < best            → Offer; optimal-closed if it won
//	not Hamiltonian, bound < best        → branch; branched +1, generated +k
//	otherwise                            → bound-pruned
//
// Quiescence
//
//	With WithStrictQuiescence(true) (default) the queue counts subproblems
//	popped but not yet marked Done; idle means empty and none in flight.
//	With false, idle means empty, which may end the search while a sibling
//	is still about to enqueue children.
//
// Errors:
//
//	ErrUnsolvable (*UnsolvableError)  node with fewer than two edges
//	ErrInvalidWorkers, ErrUnknownPolicy, ErrRootNotFound, ErrGraphNil
//	ErrSolutionFinalized              mutation after Finalize
//	ErrNoTour                         Path on a Pending/Infeasible solution
//	ErrWorkerFault                    panic inside a worker
package tsp
