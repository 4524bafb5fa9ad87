// SPDX-License-Identifier: MIT
// Package: bbtsp/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn     = i+1        (nodes 1..n, the TSPLIB numbering)
//   - rng      = nil        (pure unless seeded)
//   - weightFn = DefaultWeightFn
//   - coords   = [0, 1000)  on both axes

package builder

import "math/rand"

const (
	defaultFirstID  = 1
	defaultCoordMin = 0.0
	defaultCoordMax = 1000.0
)

// builderConfig holds every knob a Constructor reads. It is passed by value.
type builderConfig struct {
	idFn     func(int) int
	rng      *rand.Rand
	weightFn WeightFn
	coordMin float64
	coordMax float64
}

// newBuilderConfig applies opts over the defaults, last one wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     func(i int) int { return defaultFirstID + i },
		weightFn: DefaultWeightFn,
		coordMin: defaultCoordMin,
		coordMax: defaultCoordMax,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}

// coord draws one coordinate uniformly from [coordMin, coordMax).
// Caller guarantees rng != nil.
func (c builderConfig) coord() float64 {
	return c.coordMin + c.rng.Float64()*(c.coordMax-c.coordMin)
}
