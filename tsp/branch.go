package tsp

import (
	"fmt"

	"github.com/katalvlaran/bbtsp/dfs"
)

// Branch splits sp along the cycle of its 1-tree that passes through the
// target. For the k-th cycle edge not already fixed, the child excludes it
// and fixes every non-fixed cycle edge handled before it. Children are
// returned in cycle-trace order, each with its 1-tree already built.
//
// A tour consistent with sp omits at least one cycle edge; the first such
// edge in trace order identifies the single child that keeps the tour.
//
// Errors:
//   - dfs.ErrNoCycle if the 1-tree has no cycle through the target, which
//     only happens for infeasible subproblems.
//   - Any NewSubproblem error.
func Branch(sp *Subproblem) ([]*Subproblem, error) {
	cycle, err := dfs.CycleThrough(sp.oneTree, sp.target)
	if err != nil {
		return nil, fmt.Errorf("Branch: %w", err)
	}

	prefix := sp.fixed.Clone()
	children := make([]*Subproblem, 0, len(cycle))
	for _, e := range cycle {
		if sp.fixed.Contains(e) {
			continue
		}
		excluded := sp.excluded.Clone()
		excluded.Add(e)
		child, err := NewSubproblem(sp.base, sp.target, prefix.Clone(), excluded, sp.depth+1)
		if err != nil {
			return nil, fmt.Errorf("Branch: child excluding %v: %w", e, err)
		}
		children = append(children, child)
		prefix.Add(e)
	}

	return children, nil
}
