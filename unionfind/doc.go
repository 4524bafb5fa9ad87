// Package unionfind implements a disjoint-set forest over arbitrary comparable
// keys, used by the constrained Kruskal MST to track partitions.
//
// Representation:
//
//	Records live in an arena (parallel slices indexed by int). Index 0 is a
//	reserved sentinel: a record whose parent is the sentinel is a root. Keys
//	are mapped to arena indices on MakeSet, so "never registered" (no index)
//	is distinct from "is a root" (parent == sentinel).
//
// Operations:
//
//	MakeSet(keys...)   register each distinct key once, height 0
//	Find(x)            root key of x; full path compression
//	Union(x, y)        merge by height; on equal heights y's root becomes the
//	                   parent and its height grows by one
//	Connected(x, y)    Find(x) == Find(y)
//	Clone()            independent copy (slice copies, no pointers)
//
// Path compression does not lower stored heights, so heights are upper
// bounds on tree depth, as in classic union-by-rank.
//
// Complexity: amortized near-constant per Find/Union. Memory: O(n).
//
// Concurrency: a DisjointSet is not safe for concurrent use. Each MST run
// builds its own.
package unionfind
