package rounds_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundplan/builder"
	"github.com/katalvlaran/roundplan/network"
)

// graphOf builds an n-vertex graph from 1-based id pairs.
func graphOf(t testing.TB, n int, pairs ...[2]int) *network.Graph {
	t.Helper()
	g, err := network.New(n)
	require.NoError(t, err)
	for _, p := range pairs {
		require.NoError(t, g.AddEdgeByID(p[0], p[1]))
	}
	return g
}

// built materializes builder constructors with a fixed seed.
func built(t testing.TB, seed int64, cons ...builder.Constructor) *network.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, cons...)
	require.NoError(t, err)
	return g
}

// colorable exhaustively checks whether g admits a proper allocation in
// {1..k}. Only meant for tiny graphs.
func colorable(g *network.Graph, k int) bool {
	n := g.VertexCount()
	if n == 0 {
		return true
	}
	if k < 1 {
		return false
	}
	edges := g.Edges()
	alloc := make([]int, n)
	for i := range alloc {
		alloc[i] = 1
	}
	for {
		ok := true
		for _, e := range edges {
			if alloc[e[0]] == alloc[e[1]] {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
		// odometer increment over {1..k}^n
		i := 0
		for i < n && alloc[i] == k {
			alloc[i] = 1
			i++
		}
		if i == n {
			return false
		}
		alloc[i]++
	}
}

// chromatic returns the smallest k accepted by colorable.
func chromatic(g *network.Graph) int {
	for k := 0; ; k++ {
		if colorable(g, k) {
			return k
		}
	}
}

// requireProper fails unless every edge joins two distinct nonzero rounds.
func requireProper(t testing.TB, g *network.Graph, alloc []int) {
	t.Helper()
	require.Len(t, alloc, g.VertexCount())
	for i, r := range alloc {
		require.Positive(t, r, "server %d unassigned", i+1)
	}
	for _, e := range g.Edges() {
		require.NotEqual(t, alloc[e[0]], alloc[e[1]], "servers %d and %d share a round", e[0]+1, e[1]+1)
	}
}
