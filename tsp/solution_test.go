package tsp_test

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bbtsp/core"
	"github.com/katalvlaran/bbtsp/tsp"
)

func TestSolution_Pending(t *testing.T) {
	s := tsp.NewSolution()

	assert.Equal(t, tsp.Pending, s.State())
	assert.Equal(t, math.MaxInt, s.Cost())
	assert.Nil(t, s.Tour())
	assert.Equal(t, "Solution not found yet.", s.String())

	_, err := s.Path()
	assert.ErrorIs(t, err, tsp.ErrNoTour)
}

func TestSolution_OfferKeepsTheBest(t *testing.T) {
	s := tsp.NewSolution()
	g := ring(t, 4)

	won, err := s.Offer(g, 15)
	require.NoError(t, err)
	assert.True(t, won)
	assert.Equal(t, tsp.Feasible, s.State())

	won, err = s.Offer(g, 20)
	require.NoError(t, err)
	assert.False(t, won)

	won, err = s.Offer(g, 15)
	require.NoError(t, err)
	assert.False(t, won, "ties do not replace the incumbent")

	won, err = s.Offer(g, 10)
	require.NoError(t, err)
	assert.True(t, won)
	assert.Equal(t, 10, s.Cost())
	assert.True(t, strings.HasPrefix(s.String(), "Solvable, best cost: 10. Path:\n"), s.String())
}

func TestSolution_FinalizeTransitions(t *testing.T) {
	t.Run("feasible resolves", func(t *testing.T) {
		s := tsp.NewSolution()
		_, err := s.Offer(ring(t, 3), 6)
		require.NoError(t, err)

		require.NoError(t, s.Finalize())
		assert.Equal(t, tsp.Resolved, s.State())
		assert.True(t, s.State().Terminal())
		assert.True(t, strings.HasPrefix(s.String(), "Optimal solution found, cost: 6. Path:\n"))
	})

	t.Run("pending becomes infeasible", func(t *testing.T) {
		s := tsp.NewSolution()
		require.NoError(t, s.Finalize())
		assert.Equal(t, tsp.Infeasible, s.State())
		assert.Equal(t, "Unsolvable. No solution.", s.String())
		_, err := s.Path()
		assert.ErrorIs(t, err, tsp.ErrNoTour)
	})
}

func TestSolution_MutationsAfterFinalize(t *testing.T) {
	s := tsp.NewSolution()
	require.NoError(t, s.Finalize())

	assert.ErrorIs(t, s.Finalize(), tsp.ErrSolutionFinalized)
	_, err := s.Offer(ring(t, 3), 1)
	assert.ErrorIs(t, err, tsp.ErrSolutionFinalized)

	for name, add := range map[string]func(int) error{
		"generated":  s.AddGenerated,
		"branched":   s.AddBranched,
		"pruned":     s.AddBoundPruned,
		"infeasible": s.AddInfeasible,
		"optimal":    s.AddOptimalClosed,
	} {
		assert.ErrorIs(t, add(1), tsp.ErrSolutionFinalized, name)
	}
	assert.Equal(t, 0, s.Generated())
}

func TestSolution_Counters(t *testing.T) {
	s := tsp.NewSolution()
	require.NoError(t, s.AddGenerated(6))
	require.NoError(t, s.AddBranched(1))
	require.NoError(t, s.AddBoundPruned(2))
	require.NoError(t, s.AddInfeasible(1))
	require.NoError(t, s.AddOptimalClosed(1))

	assert.Equal(t, 4, s.ClosedNodes())
	assert.Equal(t, 1, s.ActiveNodes())

	st := s.Stats()
	assert.Equal(t, 6, st.Generated)
	assert.Equal(t, 1, st.Active)
	assert.Equal(t, tsp.Pending, st.State)

	want := "Throughout the search process, 6 nodes were generated. Among them:\n" +
		"- 1 served as branching points, creating new paths;\n" +
		"- 1 were terminated as candidate solutions;\n" +
		"- 2 were pruned due to boundary limitations;\n" +
		"- 1 were discarded for being infeasible.\n"
	assert.Equal(t, want, s.Statistics())
}

func TestSolution_PathWalksFromSmallestNode(t *testing.T) {
	s := tsp.NewSolution()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(3, 4, 1))
	require.NoError(t, g.AddEdge(4, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))
	_, err := s.Offer(g, 4)
	require.NoError(t, err)

	path, err := s.Path()
	require.NoError(t, err)
	require.Len(t, path, 4)
	assert.Equal(t, []int{1, 2, 4, 3, 1}, tsp.TourOrder(path))
	for i := 1; i < len(path); i++ {
		assert.Equal(t, path[i-1].V, path[i].U)
	}
}

func TestSolution_PathRejectsSubtours(t *testing.T) {
	s := tsp.NewSolution()
	g := core.NewGraph()
	for _, tri := range [][3]int{{1, 2, 3}, {4, 5, 6}} {
		require.NoError(t, g.AddEdge(tri[0], tri[1], 1))
		require.NoError(t, g.AddEdge(tri[1], tri[2], 1))
		require.NoError(t, g.AddEdge(tri[2], tri[0], 1))
	}
	_, err := s.Offer(g, 6)
	require.NoError(t, err)

	_, err = s.Path()
	assert.ErrorIs(t, err, tsp.ErrNotHamiltonian)
	assert.Contains(t, s.String(), "Path unavailable")
}

func TestSolution_ConcurrentOffers(t *testing.T) {
	s := tsp.NewSolution()
	g := ring(t, 3)

	var wg sync.WaitGroup
	for c := 100; c > 0; c-- {
		wg.Add(1)
		go func(cost int) {
			defer wg.Done()
			_, err := s.Offer(g, cost)
			assert.NoError(t, err)
			assert.NoError(t, s.AddGenerated(1))
		}(c)
	}
	wg.Wait()

	assert.Equal(t, 1, s.Cost())
	assert.Equal(t, 100, s.Generated())
	assert.Equal(t, tsp.Feasible, s.State())
}
