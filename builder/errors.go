// SPDX-License-Identifier: MIT
// Package: roundplan/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w (method tag + parameters).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, partition)
// is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidDegree indicates an out-degree outside [1, n-1] for RandomOutDegree.
var ErrInvalidDegree = errors.New("builder: invalid degree")

// ErrConstructFailed indicates a nil constructor or an edge referencing a
// vertex that has not been laid out.
var ErrConstructFailed = errors.New("builder: construction failed")
