// SPDX-License-Identifier: MIT
// Package: roundplan/builder
//
// impl_complete.go - Complete, CompleteBipartite and Grid constructors.
//
// Determinism: pairs are emitted in lexicographic (i,j) order.

package builder

import "fmt"

// Complete returns a Constructor that builds K_n.
// Complexity: O(n) vertices + O(n²) edges.
func Complete(n int) Constructor {
	return func(b *Blueprint, _ builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		base := b.block(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				b.link(base+i, base+j)
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2}: the first
// n1 vertices form the left side, the next n2 the right side.
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *Blueprint, _ builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w", methodCompleteBipartite, n1, n2, MinPartition, ErrTooFewVertices)
		}
		left := b.block(n1 + n2)
		right := left + n1
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				b.link(left+i, right+j)
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols lattice in row-major order;
// vertex (r,c) is block index r*cols+c and links right and down.
// Complexity: O(rows·cols) vertices and edges.
func Grid(rows, cols int) Constructor {
	return func(b *Blueprint, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: %dx%d < min=%d: %w", methodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		base := b.block(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				at := base + r*cols + c
				if c+1 < cols {
					b.link(at, at+1)
				}
				if r+1 < rows {
					b.link(at, at+cols)
				}
			}
		}

		return nil
	}
}
