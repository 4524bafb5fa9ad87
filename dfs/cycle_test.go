package dfs_test

import (
	"testing"

	"github.com/katalvlaran/bbtsp/core"
	"github.com/katalvlaran/bbtsp/dfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oneTree returns a 1-tree rooted at 1: spanning tree 2-3, 3-4, 3-5 over
// the other nodes, plus root edges 1-2 and 1-4.
func oneTree(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(2, 3, 23))
	require.NoError(t, g.AddEdge(3, 4, 34))
	require.NoError(t, g.AddEdge(3, 5, 35))
	require.NoError(t, g.AddEdge(1, 2, 12))
	require.NoError(t, g.AddEdge(1, 4, 14))

	return g
}

func TestParentMap_OneTree(t *testing.T) {
	parent, err := dfs.ParentMap(oneTree(t), 1)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{2: 1, 3: 2, 4: 3, 1: 4, 5: 3}, parent)
}

func TestCycleThrough_OneTree(t *testing.T) {
	cycle, err := dfs.CycleThrough(oneTree(t), 1)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{U: 4, V: 1, Weight: 14},
		{U: 3, V: 4, Weight: 34},
		{U: 2, V: 3, Weight: 23},
		{U: 1, V: 2, Weight: 12},
	}, cycle)
}

func TestCycleThrough_Triangle(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 2))
	require.NoError(t, g.AddEdge(3, 1, 3))

	cycle, err := dfs.CycleThrough(g, 1)
	require.NoError(t, err)
	require.Len(t, cycle, 3)
	assert.Equal(t, core.Edge{U: 3, V: 1, Weight: 3}, cycle[0])
	assert.Equal(t, core.Edge{U: 1, V: 2, Weight: 1}, cycle[2])
}

func TestCycleThrough_Tree(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	_, err := dfs.CycleThrough(g, 1)
	assert.ErrorIs(t, err, dfs.ErrNoCycle)
}

func TestCycleThrough_CycleAwayFromStart(t *testing.T) {
	// 1 hangs off triangle 2-3-4; no cycle returns to 1.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 4, 1))
	require.NoError(t, g.AddEdge(4, 2, 1))

	_, err := dfs.CycleThrough(g, 1)
	assert.ErrorIs(t, err, dfs.ErrNoCycle)
}

func TestErrors(t *testing.T) {
	_, err := dfs.ParentMap(nil, 1)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.CycleThrough(core.NewGraph(), 1)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

// TestCycleThrough_LongRing would overflow a naive recursive walk with
// deep enough input; the iterative walk handles it in constant stack.
func TestCycleThrough_LongRing(t *testing.T) {
	const n = 20000
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}
	require.NoError(t, g.AddEdge(n, 1, 1))

	cycle, err := dfs.CycleThrough(g, 1)
	require.NoError(t, err)
	assert.Len(t, cycle, n)
}
