// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// config.go - resolved configuration shared by all constructors.

package builder

import "math/rand"

// builderConfig is immutable once resolved by newBuilderConfig.
type builderConfig struct {
	// idFn maps a vertex index to its label.
	idFn IDFn

	// rng drives stochastic constructors; nil unless WithSeed/WithRand is given.
	rng *rand.Rand
}

// newBuilderConfig applies opts over the defaults: decimal IDs, no RNG.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
