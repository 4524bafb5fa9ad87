// File: methods_clone.go
// Role: Cloning and textual rendering.
//
// Concurrency:
//   - Read lock for snapshotting; the source graph is never mutated.
package core

import (
	"fmt"
	"strings"
)

// Clone returns a deep copy of the Graph: direction mode, nodes (with
// coordinates) and adjacency lists in the same order. The clone shares no
// memory with g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithDirected(g.directed))
	var (
		id   int
		n    *Node
		list []Adjacency
	)
	for id, n = range g.nodes {
		cp := *n
		clone.nodes[id] = &cp
	}
	for id, list = range g.adj {
		if list == nil {
			clone.adj[id] = nil
			continue
		}
		clone.adj[id] = append(make([]Adjacency, 0, len(list)), list...)
	}

	return clone
}

// String renders every stored entry as "(u, v, w)" followed by the total
// weight of distinct edges.
func (g *Graph) String() string {
	var (
		sb    strings.Builder
		total float64
	)
	edges := g.AllEdges()
	for _, e := range edges {
		fmt.Fprintf(&sb, "(%d, %d, %g) ", e.U, e.V, e.Weight)
		total += e.Weight
	}
	if !g.Directed() {
		total /= 2
	}
	fmt.Fprintf(&sb, "\nTotal weight: %g", total)

	return sb.String()
}
