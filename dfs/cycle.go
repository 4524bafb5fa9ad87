package dfs

import (
	"fmt"

	"github.com/katalvlaran/bbtsp/core"
)

// CycleThrough returns the edges of the cycle through start discovered by
// ParentMap. Edges are listed walking parent links backwards from start:
// the first edge enters start, the last one leaves it. Each edge is oriented
// parent→child and carries the weight stored in g.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound.
//   - ErrNoCycle if start never acquires a parent, or the parent chain does
//     not lead back to start within |V| steps.
//
// Complexity: O(V + E).
func CycleThrough(g *core.Graph, start int) ([]core.Edge, error) {
	parent, err := ParentMap(g, start)
	if err != nil {
		return nil, err
	}

	var cycle []core.Edge
	to := start
	for steps := 0; steps <= len(parent); steps++ {
		from, ok := parent[to]
		if !ok {
			return nil, ErrNoCycle
		}
		e, ok := g.Edge(from, to)
		if !ok {
			return nil, fmt.Errorf("dfs: CycleThrough: edge %d→%d: %w", from, to, core.ErrEdgeNotFound)
		}
		cycle = append(cycle, e)
		if from == start {
			return cycle, nil
		}
		to = from
	}

	return nil, ErrNoCycle
}
