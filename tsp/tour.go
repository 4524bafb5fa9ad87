package tsp

import (
	"fmt"

	"github.com/katalvlaran/bbtsp/core"
)

// TourOrder turns a closed edge walk into its node sequence, first node
// repeated at the end. An empty walk yields nil.
func TourOrder(path []core.Edge) []int {
	if len(path) == 0 {
		return nil
	}
	order := make([]int, 0, len(path)+1)
	order = append(order, path[0].U)
	for _, e := range path {
		order = append(order, e.V)
	}

	return order
}

// ValidateTour checks that order is a closed Hamiltonian cycle of g
// (order[0] == order[len-1], every node exactly once otherwise, every hop
// an edge of g) and returns its cost.
//
// Errors:
//   - ErrGraphNil, ErrNotHamiltonian, core.ErrEdgeNotFound.
//
// Complexity: O(n·deg).
func ValidateTour(g *core.Graph, order []int) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	n := g.NodeCount()
	if len(order) != n+1 || n == 0 || order[0] != order[n] {
		return 0, ErrNotHamiltonian
	}

	seen := make(map[int]bool, n)
	for _, id := range order[:n] {
		if seen[id] || !g.HasNode(id) {
			return 0, ErrNotHamiltonian
		}
		seen[id] = true
	}

	var cost float64
	for i := 0; i < n; i++ {
		u, v := order[i], order[i+1]
		e, ok := g.Edge(u, v)
		if !ok {
			return 0, fmt.Errorf("ValidateTour: hop %d→%d: %w", u, v, core.ErrEdgeNotFound)
		}
		cost += e.Weight
	}

	return cost, nil
}
