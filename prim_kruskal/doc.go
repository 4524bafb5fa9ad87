// Package prim_kruskal computes minimum spanning trees over an undirected,
// weighted *core.Graph. It is the bounding workhorse of the branch-and-bound
// solver: every subproblem's 1-tree is a constrained Kruskal forest over all
// nodes but the target, plus two target edges.
//
// Algorithms Provided
//
//   - MST(g) ([]core.Edge, error)
//     Plain Kruskal: stable sort of all adjacency entries by weight, then a
//     sweep that accepts an edge iff its endpoints lie in different
//     partitions. Returns a spanning forest; it never fails on a
//     disconnected graph.
//
//   - MSTWithConstraints(g, mandatory, forbidden) ([]core.Edge, error)
//     Force-unions every mandatory edge first (emitted unconditionally, in
//     set order), then sweeps the sorted edges skipping members of either
//     set in either direction.
//
//   - Kruskal(g) ([]core.Edge, float64, error)
//     Strict wrapper around MST: ErrDisconnected unless the forest spans.
//
//   - Prim(g, root) ([]core.Edge, float64, error)
//     Min-heap growth from root. Used as an independent cross-check of
//     Kruskal in tests and by Compute.
//
// Determinism
//
//	core.Graph.AllEdges walks sources in ascending ID order and each list in
//	insertion order; the stable sort keeps that order among equal weights.
//	Each undirected edge is seen twice, and the second sighting is always
//	rejected as same-partition.
//
// Complexity
//
//	Kruskal: O(E log E + E·α(V)). Prim: O(E log V). Memory O(V + E).
//
// Errors
//
//	ErrInvalidGraph  - nil or directed graph.
//	ErrDisconnected  - strict variants only, no spanning tree exists.
//	core.ErrNodeNotFound - Prim root or a mandatory endpoint is absent.
package prim_kruskal
