package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bbtsp/core"
)

// MaxExactNodes caps Exact; its tables grow as n·2ⁿ.
const MaxExactNodes = 16

// ExactResult is an optimal closed tour found by Exact.
type ExactResult struct {
	// Tour lists node IDs starting and ending at the smallest ID.
	Tour []int
	Cost float64
}

// Exact solves g by Held–Karp dynamic programming. It is the reference the
// branch-and-bound result can be checked against on small instances.
//
// dp[mask][j] is the cheapest path that starts at node 0 (the smallest ID),
// visits exactly the nodes in mask and ends at j. Absent edges cost +Inf.
//
// Errors:
//   - ErrGraphNil.
//   - ErrTooLarge when |V| > MaxExactNodes.
//   - ErrNoTour when |V| < 3 or no Hamiltonian cycle exists.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
func Exact(g *core.Graph) (ExactResult, error) {
	if g == nil {
		return ExactResult{}, ErrGraphNil
	}
	ids := g.Nodes()
	n := len(ids)
	if n > MaxExactNodes {
		return ExactResult{}, fmt.Errorf("Exact: %d nodes: %w", n, ErrTooLarge)
	}
	if n < 3 {
		return ExactResult{}, fmt.Errorf("Exact: %d nodes: %w", n, ErrNoTour)
	}

	inf := math.Inf(1)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = inf
			}
		}
	}
	pos := make(map[int]int, n)
	for i, id := range ids {
		pos[id] = i
	}
	for _, e := range g.AllEdges() {
		dist[pos[e.U]][pos[e.V]] = e.Weight
	}

	full := 1<<n - 1
	dp := make([][]float64, full+1)
	parent := make([][]int, full+1)
	for mask := range dp {
		dp[mask] = make([]float64, n)
		parent[mask] = make([]int, n)
		for j := range dp[mask] {
			dp[mask][j] = inf
			parent[mask][j] = -1
		}
	}
	dp[1][0] = 0

	for mask := 1; mask <= full; mask += 2 { // masks containing node 0
		for j := 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ (1 << j)
			for k := 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dist[k][j], 1) {
					continue
				}
				if c := dp[prev][k] + dist[k][j]; c < dp[mask][j] {
					dp[mask][j] = c
					parent[mask][j] = k
				}
			}
		}
	}

	best, last := inf, -1
	for j := 1; j < n; j++ {
		if c := dp[full][j] + dist[j][0]; c < best {
			best, last = c, j
		}
	}
	if last < 0 {
		return ExactResult{}, ErrNoTour
	}

	tour := make([]int, n+1)
	tour[0], tour[n] = ids[0], ids[0]
	mask, j := full, last
	for i := n - 1; i >= 1; i-- {
		tour[i] = ids[j]
		p := parent[mask][j]
		mask ^= 1 << j
		j = p
	}

	return ExactResult{Tour: tour, Cost: best}, nil
}
