// SPDX-License-Identifier: MIT
// Package: bbtsp/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
//
// Contract:
//   - BuildGraph creates g, resolves cfg once and runs cons in order.
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Constructors return sentinel errors; they never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bbtsp/core"
)

// Constructor applies one deterministic mutation to g using cfg.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph from gopts, resolves bopts and applies
// cons in order. The first failing constructor aborts the build; its error
// is wrapped as "BuildGraph: %w".
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Whatever the constructors return (ErrTooFewVertices, ...).
//
// Complexity: O(len(bopts)) + Σ cost(cons).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge adds u-v with weight w and, on a directed graph, v→u as well, so
// every constructor yields a symmetric instance.
func addEdge(g *core.Graph, method string, u, v int, w float64) error {
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}
	if g.Directed() {
		if err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w: %w", method, v, u, w, ErrConstructFailed, err)
		}
	}

	return nil
}

// addNodes adds n nodes with IDs cfg.idFn(0..n-1) and returns the IDs.
func addNodes(g *core.Graph, cfg builderConfig, n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		g.AddNode(ids[i])
	}

	return ids
}
