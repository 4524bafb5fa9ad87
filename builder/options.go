// SPDX-License-Identifier: MIT
// Package: bbtsp/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; the
// Constructors themselves never panic.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches r. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithConstantWeight is WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithFirstID numbers nodes first, first+1, ... instead of 1, 2, ...
func WithFirstID(first int) BuilderOption {
	return func(c *builderConfig) {
		c.idFn = func(i int) int { return first + i }
	}
}

// WithIDScheme maps construction index i (0-based) to a node ID. The scheme
// must be injective. Panics on nil.
func WithIDScheme(fn func(int) int) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithCoordRange sets the box [min, max) that EuclideanPoints samples from.
// Panics unless min < max and both are finite.
func WithCoordRange(min, max float64) BuilderOption {
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) || min >= max {
		panic(fmt.Sprintf("builder: WithCoordRange(%g, %g)", min, max))
	}

	return func(c *builderConfig) {
		c.coordMin, c.coordMax = min, max
	}
}
