package tsplib

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/bbtsp/core"
)

// Graph materialises the complete undirected graph on nodes 1..Dimension.
// Coordinates are attached to the nodes when the instance has them. For a
// FULL_MATRIX instance the upper triangle wins.
//
// Complexity: O(n²).
func (p *Problem) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	for i := 1; i <= p.Dimension; i++ {
		if len(p.Coords) == p.Dimension {
			c := p.Coords[i-1]
			g.AddNode(i, core.WithCoords(c.X, c.Y))
			continue
		}
		g.AddNode(i)
	}
	for i := 1; i <= p.Dimension; i++ {
		for j := i + 1; j <= p.Dimension; j++ {
			w, err := p.Distance(i, j)
			if err != nil {
				return nil, err
			}
			if err = g.AddEdge(i, j, w); err != nil {
				return nil, errors.Wrapf(err, "tsplib: edge %d-%d", i, j)
			}
		}
	}

	return g, nil
}

// FromGraph describes g as a TSPLIB problem. Nodes are renumbered 1..n in
// ascending ID order. When every node carries coordinates the result is an
// EUC_2D instance, otherwise an EXPLICIT FULL_MATRIX one built from the
// edge weights.
//
// Errors:
//   - ErrMissingData if g is empty, or an explicit instance lacks an edge.
func FromGraph(name string, g *core.Graph) (*Problem, error) {
	ids := g.Nodes()
	n := len(ids)
	if n == 0 {
		return nil, errors.Wrap(ErrMissingData, "empty graph")
	}
	p := &Problem{Name: name, Dimension: n}

	coords := make([]Coord, n)
	withCoords := true
	for i, id := range ids {
		node, err := g.Node(id)
		if err != nil {
			return nil, errors.Wrapf(err, "tsplib: node %d", id)
		}
		if !node.HasCoords {
			withCoords = false
			break
		}
		coords[i] = Coord{ID: i + 1, X: node.X, Y: node.Y}
	}
	if withCoords {
		p.WeightType, p.Coords = Euc2D, coords
		return p, nil
	}

	index := make(map[int]int, n)
	for i, id := range ids {
		index[id] = i
	}
	p.WeightType, p.Format = Explicit, FullMatrix
	p.Weights = make([][]float64, n)
	for i := range p.Weights {
		p.Weights[i] = make([]float64, n)
	}
	for i, u := range ids {
		out, err := g.EdgesOf(u)
		if err != nil {
			return nil, errors.Wrapf(err, "tsplib: node %d", u)
		}
		if len(out) != n-1 {
			return nil, errors.Wrapf(ErrMissingData, "node %d has %d of %d edges", u, len(out), n-1)
		}
		sort.Slice(out, func(a, b int) bool { return out[a].V < out[b].V })
		for _, e := range out {
			p.Weights[i][index[e.V]] = e.Weight
		}
	}

	return p, nil
}
