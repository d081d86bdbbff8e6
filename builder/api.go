// SPDX-License-Identifier: MIT
// Package: roundplan/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order against a Blueprint, then materializes a network.Graph.
//   - Topology factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roundplan/network"
)

// Constructor lays out one topology block on b. Constructors MUST validate
// parameters before touching b and return sentinel errors, never panic.
type Constructor func(b *Blueprint, cfg builderConfig) error

// Blueprint accumulates vertices and edges before the fixed-size graph exists.
type Blueprint struct {
	n     int
	edges [][2]int
	seen  map[[2]int]struct{}
}

// VertexCount returns the number of vertices laid out so far.
func (b *Blueprint) VertexCount() int { return b.n }

// EdgeCount returns the number of distinct edges laid out so far.
func (b *Blueprint) EdgeCount() int { return len(b.edges) }

// block reserves k fresh vertices and returns the global index of the first.
func (b *Blueprint) block(k int) int {
	base := b.n
	b.n += k

	return base
}

// link records the undirected edge {u,v} once; repeats are ignored.
func (b *Blueprint) link(u, v int) {
	if u > v {
		u, v = v, u
	}
	key := [2]int{u, v}
	if _, dup := b.seen[key]; dup {
		return
	}
	b.seen[key] = struct{}{}
	b.edges = append(b.edges, [2]int{u, v})
}

// BuildGraph resolves the builder configuration from bopts, applies every
// constructor in order as a disjoint block and returns the resulting graph.
// Any constructor error is wrapped with "BuildGraph: %w".
//
// Complexity: Σ cost of each constructor + O(V + E) to materialize.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*network.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	b := &Blueprint{seen: make(map[[2]int]struct{})}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := network.New(b.n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	for _, e := range b.edges {
		if err = g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Edge links two vertices that earlier constructors laid out, by global
// 0-based index. Self-loops are rejected.
func Edge(u, v int) Constructor {
	return func(b *Blueprint, _ builderConfig) error {
		if u < 0 || v < 0 || u >= b.n || v >= b.n || u == v {
			return fmt.Errorf("%s: (%d,%d) with %d vertices: %w", methodEdge, u, v, b.n, ErrConstructFailed)
		}
		b.link(u, v)

		return nil
	}
}
