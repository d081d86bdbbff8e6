package rounds

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/roundplan/network"
)

// Greedy allocates rounds with first-fit coloring in vertex index order and
// leaves the allocation on g.
//
// For each vertex it collects the rounds held by neighbors that are already
// scheduled (only earlier vertices can be), then takes the smallest round in
// 1..roundsUsed missing from that set; if every such round is taken it opens
// round roundsUsed+1. The result is conflict-free but not necessarily
// minimal; quality depends on the fixed vertex order.
//
// Errors: ErrNilGraph, ErrOptionViolation, ErrRoundLimit (WithMaxRounds),
// ctx.Err(). On error every round on g is reset.
//
// Complexity: O(V + Σ deg(v)·log deg(v)) time, O(max deg) extra memory.
func Greedy(g *network.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	o, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}

	g.ResetRounds()

	var (
		roundsUsed int
		taken      = redblacktree.NewWithIntComparator()
	)
	for i, v := range g.Vertices() {
		if (i+1)%cancelCheckInterval == 0 {
			if err := o.Ctx.Err(); err != nil {
				g.ResetRounds()
				return Result{}, err
			}
		}

		taken.Clear()
		for j, d := 0, v.Degree(); j < d; j++ {
			if u := v.Neighbor(j); u.Assigned() {
				taken.Put(u.Round(), struct{}{})
			}
		}

		r := firstFree(taken)
		if r > roundsUsed {
			roundsUsed++
			r = roundsUsed
		}
		if o.MaxRounds > 0 && roundsUsed > o.MaxRounds {
			g.ResetRounds()
			return Result{}, fmt.Errorf("%w: server %d needs round %d", ErrRoundLimit, v.ID(), roundsUsed)
		}
		v.SetRound(r)
	}

	o.Logger.Debug("greedy allocation found", "rounds", roundsUsed, "servers", g.VertexCount())

	return Result{Algorithm: AlgoGreedy, Rounds: roundsUsed, Allocation: g.Rounds()}, nil
}

// firstFree returns the smallest positive round absent from taken.
// Keys are iterated in ascending order, so the first gap is the answer.
func firstFree(taken *redblacktree.Tree) int {
	want := 1
	it := taken.Iterator()
	for it.Next() {
		if it.Key().(int) != want {
			break
		}
		want++
	}

	return want
}
