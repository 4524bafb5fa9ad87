package dfs

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start node does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrNoCycle indicates that no cycle passes through the start node.
	ErrNoCycle = errors.New("dfs: no cycle through start vertex")
)

// frame is one level of the explicit DFS stack.
type frame struct {
	node  int
	edges []int // neighbor IDs in adjacency order
	next  int   // index into edges of the next entry to test
}
