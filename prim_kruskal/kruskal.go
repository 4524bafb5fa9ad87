package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bbtsp/core"
	"github.com/katalvlaran/bbtsp/unionfind"
)

// MST returns a minimum spanning forest of g.
//
// Steps:
//  1. Collect every adjacency entry (both directions of each edge).
//  2. Stable-sort ascending by weight.
//  3. Register all nodes in a fresh DisjointSet.
//  4. Sweep: accept an edge iff Union merges two partitions; stop once a
//     single partition remains.
//
// Complexity: O(E log E + E·α(V)).
func MST(g *core.Graph) ([]core.Edge, error) {
	return MSTWithConstraints(g, nil, nil)
}

// MSTWithConstraints returns a minimum spanning forest of g that contains
// every mandatory edge and no forbidden edge.
//
// Mandatory edges are emitted first, in set order, whatever their weight and
// even if they close a cycle among themselves. The sweep then skips every
// entry present in either set, in either direction.
//
// Errors:
//   - ErrInvalidGraph if g is nil or directed.
//   - core.ErrNodeNotFound if a mandatory endpoint is absent from g.
func MSTWithConstraints(g *core.Graph, mandatory, forbidden *core.EdgeSet) ([]core.Edge, error) {
	if g == nil || g.Directed() {
		return nil, ErrInvalidGraph
	}

	ids := g.Nodes()
	dsu := unionfind.New[int](len(ids))
	dsu.MakeSet(ids...)

	edges := g.AllEdges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	tree := make([]core.Edge, 0, len(ids))
	parts := len(ids)
	for _, e := range mandatory.Edges() {
		merged, err := dsu.Union(e.U, e.V)
		if err != nil {
			return nil, fmt.Errorf("MSTWithConstraints: mandatory %v: %w", e, core.ErrNodeNotFound)
		}
		if merged {
			parts--
		}
		tree = append(tree, e)
	}

	for _, e := range edges {
		if parts <= 1 {
			break
		}
		if mandatory.Contains(e) || forbidden.Contains(e) {
			continue
		}
		merged, err := dsu.Union(e.U, e.V)
		if err != nil {
			// AllEdges only yields registered endpoints.
			return nil, fmt.Errorf("MSTWithConstraints: %w", err)
		}
		if merged {
			parts--
			tree = append(tree, e)
		}
	}

	return tree, nil
}

// Kruskal is MST that insists on a spanning tree.
//
// Errors:
//   - ErrInvalidGraph if g is nil or directed.
//   - ErrDisconnected if g is empty or the forest has more than one tree.
func Kruskal(g *core.Graph) ([]core.Edge, float64, error) {
	tree, err := MST(g)
	if err != nil {
		return nil, 0, err
	}
	n := g.NodeCount()
	if n == 0 || len(tree) != n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, sumWeights(tree), nil
}

func sumWeights(edges []core.Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
