package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bbtsp/builder"
	"github.com/katalvlaran/bbtsp/core"
	"github.com/katalvlaran/bbtsp/tsp"
)

// fourCities is the classic K4 instance; its optimum 1-2-4-3-1 costs 80.
func fourCities(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []core.Edge{
		{U: 1, V: 2, Weight: 10},
		{U: 1, V: 3, Weight: 15},
		{U: 1, V: 4, Weight: 20},
		{U: 2, V: 3, Weight: 35},
		{U: 2, V: 4, Weight: 25},
		{U: 3, V: 4, Weight: 30},
	} {
		require.NoError(t, g.AddEdge(e.U, e.V, e.Weight))
	}

	return g
}

// ring returns the cycle 1-2-...-n-1 where edge (i, i+1) weighs i.
func ring(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 1; i <= n; i++ {
		next := i%n + 1
		require.NoError(t, g.AddEdge(i, next, float64(i)))
	}

	return g
}

// bowtie is two triangles sharing node 3: every degree is ≥2 but no
// Hamiltonian cycle exists.
func bowtie(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][3]int{{1, 2, 1}, {2, 3, 1}, {3, 1, 1}, {3, 4, 1}, {4, 5, 1}, {5, 3, 1}} {
		require.NoError(t, g.AddEdge(e[0], e[1], float64(e[2])))
	}

	return g
}

// randomComplete returns K_n with integer weights in [1,100].
func randomComplete(t testing.TB, n int, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.IntegerWeightFn(1, 100))},
		builder.Complete(n))
	require.NoError(t, err)

	return g
}

// randomSparse returns G(n, p) with integer weights in [1,50].
func randomSparse(t testing.TB, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.IntegerWeightFn(1, 50))},
		builder.RandomSparse(n, p))
	require.NoError(t, err)

	return g
}

// tour is one Hamiltonian cycle as a set of undirected edges.
type tour struct {
	edges map[core.EdgeKey]bool
	cost  float64
}

// allTours enumerates the Hamiltonian cycles of g, each once regardless of
// direction. Feasible for n ≤ 8.
func allTours(g *core.Graph) []tour {
	ids := g.Nodes()
	if len(ids) < 3 {
		return nil
	}
	var out []tour
	perm := []int{ids[0]}
	used := map[int]bool{ids[0]: true}

	var rec func()
	rec = func() {
		if len(perm) == len(ids) {
			// second < last removes the mirrored duplicate.
			if perm[1] > perm[len(perm)-1] {
				return
			}
			t := tour{edges: make(map[core.EdgeKey]bool, len(ids))}
			for i := range perm {
				u, v := perm[i], perm[(i+1)%len(perm)]
				e, ok := g.Edge(u, v)
				if !ok {
					return
				}
				t.edges[e.Key()] = true
				t.cost += e.Weight
			}
			out = append(out, t)
			return
		}
		for _, id := range ids {
			if used[id] {
				continue
			}
			used[id] = true
			perm = append(perm, id)
			rec()
			perm = perm[:len(perm)-1]
			used[id] = false
		}
	}
	rec()

	return out
}

// cheapest returns the lowest tour cost, ok=false if there is no tour.
func cheapest(tours []tour) (best float64, ok bool) {
	for i, t := range tours {
		if i == 0 || t.cost < best {
			best = t.cost
		}
	}

	return best, len(tours) > 0
}

// consistent reports whether t uses every fixed and no excluded edge of sp.
func consistent(t tour, sp *tsp.Subproblem) bool {
	for _, e := range sp.Fixed() {
		if !t.edges[e.Key()] {
			return false
		}
	}
	for _, e := range sp.Excluded() {
		if t.edges[e.Key()] {
			return false
		}
	}

	return true
}
