// SPDX-License-Identifier: MIT
// Package: bbtsp/builder
//
// impl_euclidean.go - EuclideanPoints(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); cfg.rng required (else ErrNeedRandSource).
//   - Node i gets (x, y) drawn in that order from [coordMin, coordMax).
//   - Complete graph; weight(i,j) = round(‖p_i − p_j‖), the TSPLIB EUC_2D
//     rule. cfg.weightFn is not consulted.
//
// Complexity: O(n²).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bbtsp/core"
)

const (
	methodEuclidean   = "EuclideanPoints"
	minEuclideanNodes = 1
)

// EuclideanPoints returns a Constructor placing n random points in the
// configured box and joining every pair.
func EuclideanPoints(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodEuclidean, n, minEuclideanNodes); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodEuclidean, ErrNeedRandSource)
		}

		ids := make([]int, n)
		xs := make([]float64, n)
		ys := make([]float64, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			xs[i] = cfg.coord()
			ys[i] = cfg.coord()
			g.AddNode(ids[i], core.WithCoords(xs[i], ys[i]))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				w := math.Round(math.Hypot(xs[i]-xs[j], ys[i]-ys[j]))
				if err := addEdge(g, methodEuclidean, ids[i], ids[j], w); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
