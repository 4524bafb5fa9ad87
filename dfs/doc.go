// Package dfs provides the depth-first machinery the branch-and-bound
// solver uses to locate the single cycle of a 1-tree.
//
// What:
//
//   - ParentMap: a depth-first walk from a start node that records, for each
//     node it enters, the node it came from. An edge cur→v is followed iff v
//     has no parent yet and v is not cur's own parent. The start node itself
//     acquires a parent only when the walk closes a cycle back to it.
//   - CycleThrough: follows ParentMap links from the start node until they
//     return to it and reports the edges of that cycle, last edge first.
//
// The walk is iterative. Each stack frame holds a node and the index of the
// next adjacency entry to examine, so the order in which entries are tested
// (and therefore the resulting map) is exactly that of the recursive
// formulation, without its stack-depth limit.
//
// Complexity:
//
//   - ParentMap:    Time O(V + E), Memory O(V)
//   - CycleThrough: Time O(V + E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start node not in graph
//   - ErrNoCycle              the walk never returned to the start node
package dfs
