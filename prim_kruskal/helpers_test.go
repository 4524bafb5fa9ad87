package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/bbtsp/core"
	"github.com/stretchr/testify/require"
)

// randomGraph returns an undirected graph on nodes 1..n. Each pair is
// joined with probability p and an integer weight in [1,20]; a path
// 1-2-...-n is always present so the graph is connected.
func randomGraph(t testing.TB, rng *rand.Rand, n int, p float64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 1; i <= n; i++ {
		g.AddNode(i)
	}
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1, float64(1+rng.Intn(20))))
	}
	for i := 1; i <= n; i++ {
		for j := i + 2; j <= n; j++ {
			if rng.Float64() < p {
				require.NoError(t, g.AddEdge(i, j, float64(1+rng.Intn(20))))
			}
		}
	}

	return g
}

// uniqueEdges returns each undirected edge once.
func uniqueEdges(g *core.Graph) []core.Edge {
	var out []core.Edge
	for _, e := range g.AllEdges() {
		if e.U < e.V {
			out = append(out, e)
		}
	}

	return out
}

// bruteForceMST enumerates every (n-1)-subset of edges and returns the
// lowest weight of those forming a spanning tree that keeps all of
// mandatory and none of forbidden. ok is false if none exists.
func bruteForceMST(g *core.Graph, mandatory, forbidden *core.EdgeSet) (best float64, ok bool) {
	nodes := g.Nodes()
	edges := uniqueEdges(g)
	k := len(nodes) - 1
	best = math.Inf(1)

	var pick []core.Edge
	var rec func(start int)
	rec = func(start int) {
		if len(pick) == k {
			if w, tree := spanningWeight(nodes, pick, mandatory, forbidden); tree && w < best {
				best = w
				ok = true
			}
			return
		}
		for i := start; i < len(edges); i++ {
			pick = append(pick, edges[i])
			rec(i + 1)
			pick = pick[:len(pick)-1]
		}
	}
	rec(0)

	return best, ok
}

func spanningWeight(nodes []int, pick []core.Edge, mandatory, forbidden *core.EdgeSet) (float64, bool) {
	chosen := core.NewEdgeSet(pick...)
	for _, m := range mandatory.Edges() {
		if !chosen.Contains(m) {
			return 0, false
		}
	}
	parent := make(map[int]int, len(nodes))
	for _, v := range nodes {
		parent[v] = v
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	var w float64
	for _, e := range pick {
		if forbidden.Contains(e) {
			return 0, false
		}
		a, b := find(e.U), find(e.V)
		if a == b {
			return 0, false
		}
		parent[a] = b
		w += e.Weight
	}

	return w, true
}

func weightOf(edges []core.Edge) float64 {
	var w float64
	for _, e := range edges {
		w += e.Weight
	}

	return w
}
