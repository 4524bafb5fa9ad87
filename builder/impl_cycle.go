// SPDX-License-Identifier: MIT
// Package: bbtsp/builder
//
// impl_cycle.go - Cycle(n) and Path(n).
//
// Contract:
//   - Cycle: n ≥ 3; edges i→i+1 for i=0..n-2, then n-1→0.
//   - Path:  n ≥ 2; edges i→i+1 for i=0..n-2.
//   - Weights drawn in emission order.

package builder

import "github.com/katalvlaran/bbtsp/core"

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle returns a Constructor that builds C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}

		return chain(g, cfg, methodCycle, n, true)
	}
}

// Path returns a Constructor that builds P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}

		return chain(g, cfg, methodPath, n, false)
	}
}

func chain(g *core.Graph, cfg builderConfig, method string, n int, closed bool) error {
	ids := addNodes(g, cfg, n)
	for i := 0; i+1 < n; i++ {
		if err := addEdge(g, method, ids[i], ids[i+1], cfg.weight()); err != nil {
			return err
		}
	}
	if closed {
		return addEdge(g, method, ids[n-1], ids[0], cfg.weight())
	}

	return nil
}
