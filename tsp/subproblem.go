package tsp

import (
	"fmt"

	"github.com/katalvlaran/bbtsp/core"
	"github.com/katalvlaran/bbtsp/prim_kruskal"
)

// Subproblem is one node of the branch-and-bound tree: the base graph under
// a set of fixed and excluded edges, together with its 1-tree relaxation.
// All derived fields are computed in NewSubproblem; a Subproblem is
// immutable afterwards and safe to share between goroutines.
type Subproblem struct {
	base     *core.Graph
	target   int
	fixed    *core.EdgeSet
	excluded *core.EdgeSet
	depth    int

	oneTree     *core.Graph
	bound       int
	feasible    bool
	hamiltonian bool
}

// NewRootSubproblem returns the unconstrained subproblem at depth 0.
func NewRootSubproblem(base *core.Graph, target int) (*Subproblem, error) {
	return NewSubproblem(base, target, nil, nil, 0)
}

// NewSubproblem builds the 1-tree for base under fixed/excluded and derives
// its bound, feasibility and Hamiltonian flags.
//
// Steps:
//  1. Clone base and delete target.
//  2. Constrained Kruskal on the clone: mandatory = fixed edges not touching
//     target, forbidden = excluded.
//  3. One-tree = forest edges plus target as a node.
//  4. If the one-tree already holds every base node, add two target edges:
//     ≥2 fixed target edges → the two lightest of them;
//     exactly 1 → it, plus the lightest non-excluded target edge of base
//     other than it;
//     0 → the two lightest non-excluded target edges of base.
//     Scans keep the first edge seen among equal weights.
//  5. Bound, flags.
//
// The sets are owned by the Subproblem afterwards; callers must not modify
// them.
//
// Errors:
//   - ErrGraphNil, ErrRootNotFound (target absent), ErrConflictingConstraints.
//
// Complexity: O(E log E + V·deg) per call.
func NewSubproblem(base *core.Graph, target int, fixed, excluded *core.EdgeSet, depth int) (*Subproblem, error) {
	if base == nil {
		return nil, ErrGraphNil
	}
	if !base.HasNode(target) {
		return nil, fmt.Errorf("NewSubproblem: target %d: %w", target, ErrRootNotFound)
	}
	if fixed == nil {
		fixed = core.NewEdgeSet()
	}
	if excluded == nil {
		excluded = core.NewEdgeSet()
	}
	if fixed.Intersects(excluded) {
		return nil, ErrConflictingConstraints
	}

	sp := &Subproblem{
		base:     base,
		target:   target,
		fixed:    fixed,
		excluded: excluded,
		depth:    depth,
	}
	tree, err := sp.buildOneTree()
	if err != nil {
		return nil, err
	}
	sp.oneTree = tree
	sp.bound = oneTreeBound(tree)
	sp.hamiltonian = isHamiltonian(tree)
	sp.feasible = tree.NodeCount() == base.NodeCount() &&
		tree.EdgeCount()/2 == base.NodeCount()

	return sp, nil
}

func (sp *Subproblem) buildOneTree() (*core.Graph, error) {
	rest := sp.base.Clone()
	if err := rest.RemoveNode(sp.target); err != nil {
		return nil, fmt.Errorf("buildOneTree: %w", err)
	}
	mandatory := core.NewEdgeSet(sp.fixed.NotIncidentTo(sp.target)...)
	forest, err := prim_kruskal.MSTWithConstraints(rest, mandatory, sp.excluded)
	if err != nil {
		return nil, fmt.Errorf("buildOneTree: %w", err)
	}

	tree := core.NewGraph()
	for _, e := range forest {
		if err = tree.AddEdge(e.U, e.V, e.Weight); err != nil {
			return nil, fmt.Errorf("buildOneTree: %w", err)
		}
	}
	tree.AddNode(sp.target)

	if tree.NodeCount() != sp.base.NodeCount() {
		return tree, nil
	}
	first, second, ok := sp.targetEdges()
	if !ok {
		return tree, nil
	}
	for _, e := range []core.Edge{first, second} {
		if err = tree.InsertEdge(e); err != nil {
			return nil, fmt.Errorf("buildOneTree: target edge %v: %w", e, err)
		}
	}

	return tree, nil
}

// targetEdges picks the two edges that reconnect the target.
func (sp *Subproblem) targetEdges() (first, second core.Edge, ok bool) {
	forced := sp.fixed.IncidentTo(sp.target)
	switch {
	case len(forced) >= 2:
		first, second = twoLightest(forced)
		return first, second, true
	case len(forced) == 1:
		first = forced[0]
		second, ok = sp.lightestTargetEdge(&first)
		return first, second, ok
	default:
		if first, ok = sp.lightestTargetEdge(nil); !ok {
			return first, second, false
		}
		second, ok = sp.lightestTargetEdge(&first)
		return first, second, ok
	}
}

// lightestTargetEdge scans the base graph's target edges in enumeration
// order and returns the lightest one that is neither excluded nor skip.
func (sp *Subproblem) lightestTargetEdge(skip *core.Edge) (core.Edge, bool) {
	var (
		best  core.Edge
		found bool
	)
	for _, e := range sp.base.AllEdges() {
		if !e.IncidentTo(sp.target) || sp.excluded.Contains(e) {
			continue
		}
		if skip != nil && skip.Equal(e) {
			continue
		}
		if !found || e.Weight < best.Weight {
			best, found = e, true
		}
	}

	return best, found
}

// twoLightest returns the lightest and second-lightest of edges (len ≥ 2),
// earliest first among equal weights.
func twoLightest(edges []core.Edge) (core.Edge, core.Edge) {
	a, b := edges[0], edges[1]
	if b.Weight < a.Weight {
		a, b = b, a
	}
	for _, e := range edges[2:] {
		switch {
		case e.Weight < a.Weight:
			a, b = e, a
		case e.Weight < b.Weight:
			b = e
		}
	}

	return a, b
}

// oneTreeBound halves the directional weight sum after truncating it.
func oneTreeBound(tree *core.Graph) int {
	return int(tree.TotalWeight()) / 2
}

// isHamiltonian reports whether every node of g has degree exactly 2.
func isHamiltonian(g *core.Graph) bool {
	for _, id := range g.Nodes() {
		if d, err := g.Degree(id); err != nil || d != 2 {
			return false
		}
	}

	return true
}

// Bound is the 1-tree lower bound.
func (sp *Subproblem) Bound() int { return sp.bound }

// Feasible reports whether the 1-tree spans every node with |V| edges.
func (sp *Subproblem) Feasible() bool { return sp.feasible }

// Hamiltonian reports whether the 1-tree is itself a tour.
func (sp *Subproblem) Hamiltonian() bool { return sp.hamiltonian }

// OneTree returns the relaxation graph. It must not be modified.
func (sp *Subproblem) OneTree() *core.Graph { return sp.oneTree }

// Base returns the graph the subproblem constrains.
func (sp *Subproblem) Base() *core.Graph { return sp.base }

// Target returns the 1-tree root.
func (sp *Subproblem) Target() int { return sp.target }

// Depth returns the distance from the root subproblem.
func (sp *Subproblem) Depth() int { return sp.depth }

// Fixed returns a copy of the edges every tour in this branch must use.
func (sp *Subproblem) Fixed() []core.Edge { return sp.fixed.Edges() }

// Excluded returns a copy of the edges no tour in this branch may use.
func (sp *Subproblem) Excluded() []core.Edge { return sp.excluded.Edges() }

// String summarises the subproblem for debugging.
func (sp *Subproblem) String() string {
	return fmt.Sprintf("subproblem{depth=%d bound=%d feasible=%t hamiltonian=%t fixed=%v excluded=%v}",
		sp.depth, sp.bound, sp.feasible, sp.hamiltonian, sp.fixed.Edges(), sp.excluded.Edges())
}
