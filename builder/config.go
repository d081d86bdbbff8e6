// SPDX-License-Identifier: MIT
// Package: roundplan/builder
//
// config.go - internal configuration and deterministic defaults.
//
//   - builderConfig is the single source of truth for builder knobs.
//   - Defaults are deterministic: rng = nil (pure unless seeded).
//   - newBuilderConfig applies options in order (later overrides earlier).

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
