package dfs

import (
	"fmt"

	"github.com/katalvlaran/bbtsp/core"
)

// ParentMap walks g depth-first from start and returns child → parent links.
//
// Steps:
//  1. Push a frame for start.
//  2. For the top frame, advance through its adjacency entries. For entry
//     cur→v, if v has no parent and parent[cur] != v, record parent[v] = cur
//     and push a frame for v.
//  3. Pop a frame once its entries are exhausted.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound.
func ParentMap(g *core.Graph, start int) (map[int]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, ErrStartVertexNotFound
	}

	parent := make(map[int]int, g.NodeCount())
	open := func(id int) (*frame, error) {
		out, err := g.EdgesOf(id)
		if err != nil {
			return nil, fmt.Errorf("dfs: EdgesOf(%d): %w", id, err)
		}
		f := &frame{node: id, edges: make([]int, len(out))}
		for i, e := range out {
			f.edges[i] = e.V
		}

		return f, nil
	}

	root, err := open(start)
	if err != nil {
		return nil, err
	}
	stack := []*frame{root}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.edges) {
			stack = stack[:len(stack)-1]
			continue
		}
		v := top.edges[top.next]
		top.next++

		if _, seen := parent[v]; seen {
			continue
		}
		if p, ok := parent[top.node]; ok && p == v {
			continue
		}
		parent[v] = top.node
		child, err := open(v)
		if err != nil {
			return nil, err
		}
		stack = append(stack, child)
	}

	return parent, nil
}
