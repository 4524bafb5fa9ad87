// SPDX-License-Identifier: MIT
// Package: bbtsp/builder
//
// impl_complete.go - Complete(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Nodes cfg.idFn(0..n-1) in index order.
//   - Each unordered pair {i,j}, i<j, emitted once in lexicographic order
//     with weight cfg.weightFn(cfg.rng).
//
// Complexity: O(n²).

package builder

import "github.com/katalvlaran/bbtsp/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		ids := addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, ids[i], ids[j], cfg.weight()); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
