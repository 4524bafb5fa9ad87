// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns IDs sorted ascending.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import "sort"

// AddNode inserts a node if missing. Adding an existing node is a no-op and
// leaves its coordinates untouched.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int, opts ...NodeOption) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(id, opts...)
}

// addNodeLocked is AddNode without locking; caller holds mu for writing.
func (g *Graph) addNodeLocked(id int, opts ...NodeOption) {
	if _, exists := g.nodes[id]; exists {
		return
	}
	n := &Node{ID: id}
	for _, opt := range opts {
		opt(n)
	}
	g.nodes[id] = n
	g.adj[id] = nil
}

// HasNode reports whether id is present.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node record for id.
//
// Errors:
//   - ErrNodeNotFound if id is absent.
func (g *Graph) Node(id int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return *n, nil
}

// RemoveNode deletes id together with its adjacency list, then purges id
// from every other node's list.
//
// Errors:
//   - ErrNodeNotFound if id is absent.
//
// Complexity: O(V·deg) - every remaining list is scanned once.
func (g *Graph) RemoveNode(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; !exists {
		return ErrNodeNotFound
	}
	delete(g.nodes, id)
	delete(g.adj, id)

	// Purge (u,id) entries from all other lists; filter in place.
	var (
		u    int
		list []Adjacency
	)
	for u, list = range g.adj {
		kept := list[:0]
		for _, a := range list {
			if a.To != id {
				kept = append(kept, a)
			}
		}
		g.adj[u] = kept
	}

	return nil
}

// Degree returns the number of adjacency entries stored for id
// (out-degree in directed graphs).
//
// Errors:
//   - ErrNodeNotFound if id is absent.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return 0, ErrNodeNotFound
	}

	return len(g.adj[id]), nil
}

// Nodes returns all node IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedIDsLocked()
}

func (g *Graph) sortedIDsLocked() []int {
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
