// Package builder assembles deterministic TSP instances on core.Graph.
//
// A build is one call:
//
//	g, err := builder.BuildGraph(gopts, bopts, cons...)
//
// gopts configure the core.Graph (direction), bopts resolve into a private
// builderConfig (seeded RNG, node numbering, edge weights, coordinate box)
// and each Constructor adds nodes and edges in a fixed, documented order.
//
// Constructors:
//   - Complete(n):         K_n, every pair once (i<j).
//   - Cycle(n):            C_n, edges i→i+1 and n→1 (n ≥ 3).
//   - Path(n):             P_n, edges i→i+1 (n ≥ 2).
//   - RandomSparse(n, p):  G(n,p); each pair kept with probability p.
//   - EuclideanPoints(n):  n random points with coordinates, complete graph
//     weighted by the rounded Euclidean distance.
//
// Weight functions (WeightFn): DefaultWeightFn, ConstantWeightFn,
// UniformWeightFn, IntegerWeightFn. The search in package tsp computes
// integer bounds, so IntegerWeightFn is the usual choice for instances fed
// to it.
//
// Determinism: equal options, equal seed and equal constructor order give
// identical graphs. Option constructors panic on meaningless input;
// Constructors never panic and return sentinel errors.
package builder
