// SPDX-License-Identifier: MIT
// Package: roundplan/builder
//
// impl_basic.go - Isolated, Path, Cycle, Star and Wheel constructors.
//
// Contract (all):
//   - Validate size first; ErrTooFewVertices below the documented minimum.
//   - Reserve one block of fresh vertices; emit edges in increasing index order.
//
// Complexity: O(n) vertices + O(n) edges; O(1) extra space.

package builder

import "fmt"

// Isolated returns a Constructor that lays out n vertices with no edges.
func Isolated(n int) Constructor {
	return func(b *Blueprint, _ builderConfig) error {
		if n < MinIsolatedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodIsolated, n, MinIsolatedNodes, ErrTooFewVertices)
		}
		b.block(n)

		return nil
	}
}

// Path returns a Constructor that builds the simple path P_n: 0–1–…–(n-1).
func Path(n int) Constructor {
	return func(b *Blueprint, _ builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		base := b.block(n)
		for i := 1; i < n; i++ {
			b.link(base+i-1, base+i)
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the ring C_n: a path plus (n-1)–0.
func Cycle(n int) Constructor {
	return func(b *Blueprint, _ builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		base := b.block(n)
		for i := 1; i < n; i++ {
			b.link(base+i-1, base+i)
		}
		b.link(base+n-1, base)

		return nil
	}
}

// Star returns a Constructor for a star of n vertices: the first vertex of
// the block is the center, the other n-1 are leaves.
func Star(n int) Constructor {
	return func(b *Blueprint, _ builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		center := b.block(n)
		for i := 1; i < n; i++ {
			b.link(center, center+i)
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: the first vertex is the hub and the
// remaining n-1 form a rim cycle, each spoke joining hub and rim vertex.
func Wheel(n int) Constructor {
	return func(b *Blueprint, _ builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		hub := b.block(n)
		rim := n - 1
		for i := 1; i <= rim; i++ {
			next := i%rim + 1
			b.link(hub+i, hub+next)
		}
		for i := 1; i <= rim; i++ {
			b.link(hub, hub+i)
		}

		return nil
	}
}
