// File: edgeset.go
// Role: Ordered, direction-insensitive edge set used for fixed/excluded
//       branching constraints.
//
// Determinism:
//   - Edges() returns edges in first-insertion order.
//
// Concurrency:
//   - EdgeSet is not synchronized. Sets handed to a subproblem are treated
//     as read-only afterwards; derive new sets with Clone.
package core

// EdgeSet is a set of edges keyed by EdgeKey, so that (u,v) and (v,u)
// are the same member. Insertion order is kept.
type EdgeSet struct {
	index map[EdgeKey]int
	edges []Edge
}

// NewEdgeSet returns a set holding edges (duplicates collapse to the first).
// Complexity: O(len(edges)).
func NewEdgeSet(edges ...Edge) *EdgeSet {
	s := &EdgeSet{
		index: make(map[EdgeKey]int, len(edges)),
		edges: make([]Edge, 0, len(edges)),
	}
	for _, e := range edges {
		s.Add(e)
	}

	return s
}

// Add inserts e and reports whether it was absent.
func (s *EdgeSet) Add(e Edge) bool {
	k := e.Key()
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.edges)
	s.edges = append(s.edges, e)

	return true
}

// Contains reports whether e, in either direction, is a member.
// A nil set contains nothing.
func (s *EdgeSet) Contains(e Edge) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[e.Key()]

	return ok
}

// Len returns the number of members.
func (s *EdgeSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.edges)
}

// Edges returns a copy of the members in insertion order.
func (s *EdgeSet) Edges() []Edge {
	if s == nil {
		return nil
	}

	return append([]Edge(nil), s.edges...)
}

// IncidentTo returns the members touching id, in insertion order.
func (s *EdgeSet) IncidentTo(id int) []Edge {
	if s == nil {
		return nil
	}
	var out []Edge
	for _, e := range s.edges {
		if e.IncidentTo(id) {
			out = append(out, e)
		}
	}

	return out
}

// NotIncidentTo returns the members not touching id, in insertion order.
func (s *EdgeSet) NotIncidentTo(id int) []Edge {
	if s == nil {
		return nil
	}
	var out []Edge
	for _, e := range s.edges {
		if !e.IncidentTo(id) {
			out = append(out, e)
		}
	}

	return out
}

// Intersects reports whether s and o share a member.
func (s *EdgeSet) Intersects(o *EdgeSet) bool {
	if s.Len() == 0 || o.Len() == 0 {
		return false
	}
	small, large := s, o
	if small.Len() > large.Len() {
		small, large = large, small
	}
	for _, e := range small.edges {
		if large.Contains(e) {
			return true
		}
	}

	return false
}

// Clone returns an independent copy of s. Cloning nil yields an empty set.
func (s *EdgeSet) Clone() *EdgeSet {
	if s == nil {
		return NewEdgeSet()
	}
	cp := &EdgeSet{
		index: make(map[EdgeKey]int, len(s.index)),
		edges: append(make([]Edge, 0, len(s.edges)+1), s.edges...),
	}
	for k, i := range s.index {
		cp.index[k] = i
	}

	return cp
}
