// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/InsertEdge/RemoveEdge/HasEdge/Edge,
//       EdgesOf/AllEdges/EdgeCount/TotalWeight and the duplicate diagnostic.
//
// Determinism:
//   - EdgesOf(u) follows adjacency insertion order.
//   - AllEdges() walks sources in ascending ID order, each in insertion order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import (
	"math"
	"sort"
)

// AddEdge stores the edge u→v with weight w (and v→u when undirected).
// Missing endpoints are created.
//
// Steps:
//  1. Reject loops (ErrLoopNotAllowed) and NaN weights (ErrBadWeight).
//  2. Ensure both endpoints exist.
//  3. Reject (u,v) already present, and (v,u) too when undirected (ErrEdgeExists).
//  4. Append to adjacency[u]; mirror into adjacency[v] when undirected.
//
// Complexity: O(deg(u) + deg(v)) for the duplicate scan.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if u == v {
		return ErrLoopNotAllowed
	}
	if math.IsNaN(w) {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(u)
	g.addNodeLocked(v)

	return g.addEdgeLocked(u, v, w)
}

// addEdgeLocked performs steps 3-4 of AddEdge; caller holds mu for writing
// and guarantees both endpoints exist.
func (g *Graph) addEdgeLocked(u, v int, w float64) error {
	if indexOf(g.adj[u], v) >= 0 {
		return ErrEdgeExists
	}
	if !g.directed && indexOf(g.adj[v], u) >= 0 {
		return ErrEdgeExists
	}

	g.adj[u] = append(g.adj[u], Adjacency{To: v, Weight: w})
	if !g.directed {
		g.adj[v] = append(g.adj[v], Adjacency{To: u, Weight: w})
	}

	return nil
}

// InsertEdge stores e like AddEdge, but both endpoints must already exist.
//
// Errors:
//   - ErrNodeNotFound if e.U or e.V is absent.
//   - Any AddEdge error.
func (g *Graph) InsertEdge(e Edge) error {
	if e.U == e.V {
		return ErrLoopNotAllowed
	}
	if math.IsNaN(e.Weight) {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[e.U]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes[e.V]; !ok {
		return ErrNodeNotFound
	}

	return g.addEdgeLocked(e.U, e.V, e.Weight)
}

// RemoveEdge deletes u→v (and v→u when undirected).
//
// Errors:
//   - ErrNodeNotFound if an endpoint is absent.
//   - ErrEdgeNotFound if u→v is not stored.
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[u]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes[v]; !ok {
		return ErrNodeNotFound
	}
	i := indexOf(g.adj[u], v)
	if i < 0 {
		return ErrEdgeNotFound
	}
	g.adj[u] = append(g.adj[u][:i], g.adj[u][i+1:]...)
	if !g.directed {
		if j := indexOf(g.adj[v], u); j >= 0 {
			g.adj[v] = append(g.adj[v][:j], g.adj[v][j+1:]...)
		}
	}

	return nil
}

// HasEdge reports whether u→v is stored.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return indexOf(g.adj[u], v) >= 0
}

// Edge returns the stored edge u→v.
// Complexity: O(deg(u)).
func (g *Graph) Edge(u, v int) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i := indexOf(g.adj[u], v)
	if i < 0 {
		return Edge{}, false
	}

	return Edge{U: u, V: v, Weight: g.adj[u][i].Weight}, true
}

// EdgesOf returns the edges leaving id, oriented id→neighbor, in adjacency order.
//
// Errors:
//   - ErrNodeNotFound if id is absent.
func (g *Graph) EdgesOf(id int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}
	list := g.adj[id]
	out := make([]Edge, len(list))
	for i, a := range list {
		out[i] = Edge{U: id, V: a.To, Weight: a.Weight}
	}

	return out, nil
}

// AllEdges returns every stored adjacency entry as an oriented edge.
// Undirected edges appear once per direction.
//
// Complexity: O(V log V + E).
func (g *Graph) AllEdges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCountLocked())
	for _, u := range g.sortedIDsLocked() {
		for _, a := range g.adj[u] {
			out = append(out, Edge{U: u, V: a.To, Weight: a.Weight})
		}
	}

	return out
}

// EdgeCount returns the number of stored adjacency entries; an undirected
// edge counts twice.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCountLocked()
}

func (g *Graph) edgeCountLocked() int {
	m := 0
	for _, list := range g.adj {
		m += len(list)
	}

	return m
}

// TotalWeight sums the weights of all stored adjacency entries; an undirected
// edge is counted twice.
func (g *Graph) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sum float64
	for _, list := range g.adj {
		for _, a := range list {
			sum += a.Weight
		}
	}

	return sum
}

// FindDuplicateEdges reports node pairs stored more often than the direction
// mode allows: more than once per unordered pair in directed graphs (u→v and
// v→u both present) and more than twice in undirected graphs. Each offending
// pair is reported once, oriented from the smaller ID, sorted by key.
//
// The public mutators never create such pairs in undirected graphs; the
// diagnostic exists for graphs assembled from external data.
//
// Complexity: O(E log E).
func (g *Graph) FindDuplicateEdges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	allowed := 2
	if g.directed {
		allowed = 1
	}
	seen := make(map[EdgeKey]int)
	weight := make(map[EdgeKey]float64)
	var (
		u    int
		list []Adjacency
	)
	for u, list = range g.adj {
		for _, a := range list {
			k := Edge{U: u, V: a.To}.Key()
			seen[k]++
			weight[k] = a.Weight
		}
	}

	var dups []Edge
	for k, c := range seen {
		if c > allowed {
			dups = append(dups, Edge{U: k.A, V: k.B, Weight: weight[k]})
		}
	}
	sort.Slice(dups, func(i, j int) bool {
		if dups[i].U != dups[j].U {
			return dups[i].U < dups[j].U
		}

		return dups[i].V < dups[j].V
	})

	return dups
}

// indexOf returns the position of the entry pointing to v, or -1.
func indexOf(list []Adjacency, v int) int {
	for i, a := range list {
		if a.To == v {
			return i
		}
	}

	return -1
}
