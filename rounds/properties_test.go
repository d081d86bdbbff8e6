package rounds_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundplan/builder"
	"github.com/katalvlaran/roundplan/network"
	"github.com/katalvlaran/roundplan/rounds"
)

// smallRandom yields seeded random graphs small enough for brute force.
func smallRandom(t *testing.T) map[string]*network.Graph {
	t.Helper()
	out := make(map[string]*network.Graph)
	for seed := int64(1); seed <= 12; seed++ {
		n := 3 + int(seed%6)
		p := 0.2 + 0.06*float64(seed%10)
		out[fmt.Sprintf("sparse/n=%d/seed=%d", n, seed)] = built(t, seed, builder.RandomSparse(n, p))
	}
	for seed := int64(1); seed <= 4; seed++ {
		out[fmt.Sprintf("outdegree/seed=%d", seed)] = built(t, seed, builder.RandomOutDegree(7, 2))
	}
	return out
}

func TestProperties_ExactIsOptimal(t *testing.T) {
	for name, g := range smallRandom(t) {
		g := g
		t.Run(name, func(t *testing.T) {
			res, err := rounds.Minimum(g)
			require.NoError(t, err)
			requireProper(t, g, res.Allocation)
			assert.Equal(t, chromatic(g), res.Rounds)
			assert.False(t, colorable(g, res.Rounds-1), "a cheaper allocation exists")
			assert.Equal(t, res.Rounds, g.MaxRound())
		})
	}
}

func TestProperties_GreedyIsUpperBound(t *testing.T) {
	for name, g := range smallRandom(t) {
		g := g
		t.Run(name, func(t *testing.T) {
			cmp, err := rounds.Compare(g)
			require.NoError(t, err)
			requireProper(t, g, cmp.Greedy.Allocation)
			requireProper(t, g, cmp.Exact.Allocation)
			assert.GreaterOrEqual(t, cmp.Greedy.Rounds, cmp.Exact.Rounds)
			assert.GreaterOrEqual(t, cmp.Gap, 0)
		})
	}
}

func TestProperties_AddingEdgeIsMonotone(t *testing.T) {
	g := built(t, 5, builder.RandomSparse(7, 0.3))
	prev, err := rounds.Minimum(g)
	require.NoError(t, err)

	n := g.VertexCount()
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			require.NoError(t, g.AddEdge(u, v))
			res, err := rounds.Minimum(g)
			require.NoError(t, err)
			require.GreaterOrEqual(t, res.Rounds, prev.Rounds, "adding %d-%d lowered the minimum", u, v)
			prev = res
		}
	}
	assert.Equal(t, n, prev.Rounds, "the closure is complete")
}

func TestProperties_DisjointUnionIsMax(t *testing.T) {
	parts := []builder.Constructor{
		builder.Cycle(5),
		builder.Complete(4),
		builder.Path(6),
		builder.Wheel(6),
		builder.Isolated(2),
	}
	for i, a := range parts {
		for j, b := range parts {
			ga := built(t, 1, a)
			gb := built(t, 1, b)
			gu := built(t, 1, a, b)

			ra, err := rounds.Minimum(ga)
			require.NoError(t, err)
			rb, err := rounds.Minimum(gb)
			require.NoError(t, err)
			for _, opts := range [][]rounds.Option{nil, {rounds.WithComponents()}} {
				ru, err := rounds.Minimum(gu, opts...)
				require.NoError(t, err)
				assert.Equal(t, max(ra.Rounds, rb.Rounds), ru.Rounds, "parts %d+%d", i, j)
			}
		}
	}
}
