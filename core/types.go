// Package core defines the Graph, Node, Edge and Adjacency types, the
// functional options used to configure them, and the package sentinel errors.
//
// Errors:
//
//	ErrNodeNotFound   - requested node does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrEdgeExists     - edge is already stored.
//	ErrLoopNotAllowed - self-loop requested.
//	ErrBadWeight      - weight is NaN.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates a second insertion of an already stored edge.
	// In undirected graphs either orientation counts as "already stored".
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrLoopNotAllowed indicates a self-loop (u == v) was requested.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a NaN weight.
	ErrBadWeight = errors.New("core: bad edge weight")
)

// Node is a graph vertex. Coordinates are opaque to every algorithm in this
// module; they travel with the node so that reports can show them.
type Node struct {
	// ID uniquely identifies the node within its Graph.
	ID int

	// X, Y are optional coordinates; valid only when HasCoords is true.
	X, Y      float64
	HasCoords bool
}

// Edge is a weighted pair of node IDs.
//
// Identity ignores direction: Edge{1,2,w} and Edge{2,1,w} denote the same
// undirected edge (see Key, Equal). The stored orientation matters only for
// walks, where V is the "next" node.
type Edge struct {
	U, V   int
	Weight float64
}

// EdgeKey is the canonical, direction-free identity of an edge (A <= B).
type EdgeKey struct {
	A, B int
}

// Key returns the canonical unordered key of e.
// Complexity: O(1).
func (e Edge) Key() EdgeKey {
	if e.U <= e.V {
		return EdgeKey{A: e.U, B: e.V}
	}

	return EdgeKey{A: e.V, B: e.U}
}

// Reverse returns the same edge seen from the other endpoint.
func (e Edge) Reverse() Edge {
	return Edge{U: e.V, V: e.U, Weight: e.Weight}
}

// Equal reports whether e and o join the same pair of nodes, in either direction.
func (e Edge) Equal(o Edge) bool {
	return e.Key() == o.Key()
}

// IncidentTo reports whether id is one of the endpoints of e.
func (e Edge) IncidentTo(id int) bool {
	return e.U == id || e.V == id
}

// Other returns the endpoint of e opposite to id. The result is undefined
// when id is not incident to e.
func (e Edge) Other(id int) int {
	if e.U == id {
		return e.V
	}

	return e.U
}

// String renders the edge as "(u, v|w)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d|%g)", e.U, e.V, e.Weight)
}

// Adjacency is one entry of a node's adjacency list.
type Adjacency struct {
	To     int
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
// Graphs are undirected by default.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// NodeOption configures a node when it is first added.
type NodeOption func(n *Node)

// WithCoords attaches opaque coordinates to a node.
func WithCoords(x, y float64) NodeOption {
	return func(n *Node) {
		n.X, n.Y = x, y
		n.HasCoords = true
	}
}

// Graph is the weighted adjacency structure shared by the solvers.
//
// mu guards nodes and adjacency. Adjacency lists keep insertion order, which
// makes edge enumeration (and therefore every tie-break built on top of it)
// reproducible.
type Graph struct {
	mu sync.RWMutex

	directed bool

	nodes map[int]*Node
	adj   map[int][]Adjacency
}

// NewGraph creates an empty Graph. By default the graph is undirected.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[int]*Node),
		adj:   make(map[int][]Adjacency),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
