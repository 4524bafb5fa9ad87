package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/bbtsp/core"
)

// Prim grows a minimum spanning tree from root.
//
// Steps:
//  1. Mark root visited; push its edges.
//  2. Pop the lightest edge; skip it if its far end is visited, otherwise
//     accept it and push the far end's edges to unvisited nodes.
//  3. Stop at |V|-1 edges or an empty heap.
//
// Errors:
//   - ErrInvalidGraph if g is nil or directed.
//   - core.ErrNodeNotFound if root is absent.
//   - ErrDisconnected if the tree does not reach every node.
//
// Complexity: O(E log V).
func Prim(g *core.Graph, root int) ([]core.Edge, float64, error) {
	if g == nil || g.Directed() {
		return nil, 0, ErrInvalidGraph
	}
	if !g.HasNode(root) {
		return nil, 0, core.ErrNodeNotFound
	}
	n := g.NodeCount()

	visited := make(map[int]bool, n)
	tree := make([]core.Edge, 0, n-1)
	pq := &edgeHeap{}
	var total float64

	push := func(u int) error {
		out, err := g.EdgesOf(u)
		if err != nil {
			return err
		}
		for _, e := range out {
			if !visited[e.V] {
				heap.Push(pq, e)
			}
		}

		return nil
	}

	visited[root] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 && len(tree) < n-1 {
		e := heap.Pop(pq).(core.Edge)
		if visited[e.V] {
			continue
		}
		visited[e.V] = true
		tree = append(tree, e)
		total += e.Weight
		if err := push(e.V); err != nil {
			return nil, 0, err
		}
	}
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// edgeHeap is a min-heap of edges by weight.
type edgeHeap []core.Edge

func (h edgeHeap) Len() int           { return len(h) }
func (h edgeHeap) Less(i, j int) bool { return h[i].Weight < h[j].Weight }
func (h edgeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *edgeHeap) Push(x any) { *h = append(*h, x.(core.Edge)) }

func (h *edgeHeap) Pop() any {
	old := *h
	e := old[len(old)-1]
	*h = old[:len(old)-1]

	return e
}
