package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/bbtsp/core"
)

// ErrInvalidGraph indicates a nil or directed graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil undirected graph")

// ErrDisconnected indicates that no spanning tree covers every node.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// Method selects the algorithm used by Compute.
type Method int

const (
	// MethodKruskal sorts all edges and sweeps with union-find.
	MethodKruskal Method = iota
	// MethodPrim grows a tree from Options.Root with a min-heap.
	MethodPrim
)

// Options configures Compute.
type Options struct {
	Method Method
	// Root is Prim's start node; ignored by Kruskal. Zero value means the
	// smallest node ID.
	Root    int
	hasRoot bool
}

// Option mutates Options.
type Option func(*Options)

// WithMethod selects the algorithm.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets Prim's start node.
func WithRoot(root int) Option {
	return func(o *Options) {
		o.Root = root
		o.hasRoot = true
	}
}

// Compute runs the selected strict MST algorithm and returns the tree and
// its total weight.
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := Options{Method: MethodKruskal}
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		if g == nil {
			return nil, 0, ErrInvalidGraph
		}
		root := o.Root
		if !o.hasRoot {
			ids := g.Nodes()
			if len(ids) == 0 {
				return nil, 0, ErrDisconnected
			}
			root = ids[0]
		}

		return Prim(g, root)
	default:
		return nil, 0, ErrInvalidGraph
	}
}
