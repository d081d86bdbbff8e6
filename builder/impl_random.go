// SPDX-License-Identifier: MIT
// Package: roundplan/builder
//
// impl_random.go - RandomSparse(n, p) and RandomOutDegree(n, m) constructors.
//
// Contract:
//   - cfg.rng must be non-nil whenever a draw is needed (ErrNeedRandSource).
//   - Stable trial order: i asc, then j asc; identical graphs for a fixed seed.

package builder

import "fmt"

// RandomSparse returns a Constructor for an Erdős–Rényi-like block: each
// unordered pair {i,j} is linked independently with probability p.
// p ∈ {0,1} needs no RNG.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, MinRandomNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := b.block(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == MaxProbability:
					b.link(base+i, base+j)
				case p == MinProbability:
				case cfg.rng.Float64() < p:
					b.link(base+i, base+j)
				}
			}
		}

		return nil
	}
}

// RandomOutDegree returns a Constructor where every vertex i links to m
// distinct peers drawn uniformly from the other n-1 vertices. A pair drawn
// from both ends is kept once, so degrees are at least m.
// Complexity: O(n²) for the per-vertex shuffles.
func RandomOutDegree(n, m int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomOutDegree, n, MinPathNodes, ErrTooFewVertices)
		}
		if m < 1 || m > n-1 {
			return fmt.Errorf("%s: m=%d not in [1,%d]: %w", methodRandomOutDegree, m, n-1, ErrInvalidDegree)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomOutDegree, ErrNeedRandSource)
		}

		base := b.block(n)
		peers := make([]int, 0, n-1)
		for i := 0; i < n; i++ {
			peers = peers[:0]
			for j := 0; j < n; j++ {
				if j != i {
					peers = append(peers, j)
				}
			}
			cfg.rng.Shuffle(len(peers), func(a, c int) { peers[a], peers[c] = peers[c], peers[a] })
			for _, j := range peers[:m] {
				b.link(base+i, base+j)
			}
		}

		return nil
	}
}
