// Package core provides the weighted graph model used by every solver in
// bbtsp: an adjacency-list Graph keyed by integer node IDs, the Edge value
// type with direction-insensitive identity, and EdgeSet, an ordered set of
// edges used to express branching constraints.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - float64 weights (NaN is rejected with ErrBadWeight)
//   - Optional opaque node coordinates (WithCoords), carried but never read here
//   - Ordered adjacency: adjacency[u] keeps insertion order, so edge
//     enumeration is reproducible for a fixed construction sequence
//   - A single sync.RWMutex; concurrent readers (workers sharing one base
//     graph) never contend with each other
//
// Undirected invariant:
//
//	(u,v) is stored with weight w  ⇔  (v,u) is stored with weight w
//
// Every undirected edge therefore appears twice in AllEdges() and EdgeCount()
// counts stored directions. Callers needing a canonical edge set dedupe with
// Edge.Key() or EdgeSet.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id int, opts ...NodeOption)   // O(1), idempotent
//	HasNode(id int) bool                  // O(1)
//	RemoveNode(id int) error              // O(V·deg): purges every incident entry
//
//	// Edge lifecycle
//	AddEdge(u, v int, w float64) error    // O(deg(u)+deg(v)); duplicate → ErrEdgeExists
//	InsertEdge(e Edge) error              // as AddEdge, but endpoints must exist
//	RemoveEdge(u, v int) error            // O(deg(u)+deg(v))
//
//	// Query
//	Degree(id int) (int, error)           // O(1)
//	EdgesOf(id int) ([]Edge, error)       // O(deg)
//	AllEdges() []Edge                     // O(V log V + E), ascending source ID
//	Edge(u, v int) (Edge, bool)           // O(deg(u))
//	Nodes() []int                         // O(V log V), ascending
//	Clone() *Graph                        // O(V + E), no aliasing
//	FindDuplicateEdges() []Edge           // diagnostic, O(E)
//
// Errors:
//
//	ErrNodeNotFound  – operation referenced an absent node
//	ErrEdgeNotFound  – operation referenced an absent edge
//	ErrEdgeExists    – edge already stored (either direction when undirected)
//	ErrLoopNotAllowed – self-loop u == v
//	ErrBadWeight     – NaN weight
package core
