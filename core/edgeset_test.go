package core_test

import (
	"testing"

	"github.com/katalvlaran/bbtsp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeSet_DirectionInsensitive(t *testing.T) {
	s := core.NewEdgeSet(core.Edge{U: 1, V: 2, Weight: 5})

	assert.True(t, s.Contains(core.Edge{U: 2, V: 1}))
	assert.False(t, s.Add(core.Edge{U: 2, V: 1, Weight: 5}))
	assert.True(t, s.Add(core.Edge{U: 2, V: 3, Weight: 1}))
	assert.Equal(t, 2, s.Len())
}

func TestEdgeSet_OrderAndIncidence(t *testing.T) {
	s := core.NewEdgeSet(
		core.Edge{U: 3, V: 1, Weight: 1},
		core.Edge{U: 2, V: 4, Weight: 2},
		core.Edge{U: 1, V: 4, Weight: 3},
	)

	require.Len(t, s.Edges(), 3)
	assert.Equal(t, 3, s.Edges()[0].U)

	in := s.IncidentTo(1)
	require.Len(t, in, 2)
	assert.Equal(t, 1.0, in[0].Weight)
	assert.Equal(t, 3.0, in[1].Weight)

	out := s.NotIncidentTo(1)
	require.Len(t, out, 1)
	assert.Equal(t, core.EdgeKey{A: 2, B: 4}, out[0].Key())
}

func TestEdgeSet_CloneIsIndependent(t *testing.T) {
	s := core.NewEdgeSet(core.Edge{U: 1, V: 2})
	cp := s.Clone()
	cp.Add(core.Edge{U: 5, V: 6})

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, cp.Len())
	assert.False(t, s.Contains(core.Edge{U: 6, V: 5}))
}

func TestEdgeSet_Intersects(t *testing.T) {
	a := core.NewEdgeSet(core.Edge{U: 1, V: 2}, core.Edge{U: 2, V: 3})
	b := core.NewEdgeSet(core.Edge{U: 3, V: 2})
	c := core.NewEdgeSet(core.Edge{U: 4, V: 5})

	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))
	assert.False(t, a.Intersects(core.NewEdgeSet()))

	var nilSet *core.EdgeSet
	assert.False(t, nilSet.Contains(core.Edge{U: 1, V: 2}))
	assert.Equal(t, 0, nilSet.Len())
	assert.Equal(t, 0, nilSet.Clone().Len())
}
