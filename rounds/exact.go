package rounds

import (
	"context"
	"fmt"

	"github.com/katalvlaran/roundplan/bfs"
	"github.com/katalvlaran/roundplan/network"
)

// Minimum finds the smallest number of rounds k for which every server can
// be scheduled in {1..k} without two adjacent servers sharing a round, and
// leaves a witnessing allocation on g.
//
// The search tests k = 1, 2, … in increasing order; each test is a bounded
// backtracking pass over the vertices in index order (see Feasible). k never
// exceeds V, since V distinct rounds always work for a simple graph. An empty
// graph needs 0 rounds.
//
// Errors: ErrNilGraph, ErrOptionViolation, ErrRoundLimit (no fit within
// WithMaxRounds), ErrUnschedulable (self-loop), or ctx.Err(). On error every
// round on g is reset.
//
// Complexity: O(Σ_{k ≤ χ} k^(V+1)) time worst case, O(V) extra memory.
func Minimum(g *network.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	o, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}

	g.ResetRounds()

	groups, err := searchGroups(g, o)
	if err != nil {
		return Result{}, err
	}

	best := 0
	for _, order := range groups {
		k, err := minimumFor(g, order, o)
		if err != nil {
			g.ResetRounds()
			return Result{}, err
		}
		if k > best {
			best = k
		}
	}

	o.Logger.Debug("exact allocation found", "rounds", best, "servers", g.VertexCount(), "components", len(groups))

	return Result{Algorithm: AlgoExact, Rounds: best, Allocation: g.Rounds()}, nil
}

// Feasible runs one bounded backtracking search: it reports whether every
// server fits in rounds {1..k}. On success g holds the allocation found;
// otherwise every round on g is reset.
//
// At vertex i the search tries rounds r = 1..k in increasing order, keeping
// the first r that no already scheduled neighbor holds, then moves to i+1.
// When no r fits it clears vertex i and resumes vertex i-1 from its next
// candidate. Reaching i == V is success; backing out past vertex 0 is failure.
//
// Errors: ErrNilGraph, ErrInvalidBound (k < 1), ErrOptionViolation, ctx.Err().
func Feasible(g *network.Graph, k int, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if k < 1 {
		return false, fmt.Errorf("Feasible(k=%d): %w", k, ErrInvalidBound)
	}
	o, err := resolve(opts)
	if err != nil {
		return false, err
	}

	g.ResetRounds()

	groups, err := searchGroups(g, o)
	if err != nil {
		return false, err
	}
	for _, order := range groups {
		ok, err := newBacktracker(g, order, o.Ctx).run(k)
		if err != nil || !ok {
			g.ResetRounds()
			return false, err
		}
	}

	return true, nil
}

// searchGroups returns the vertex orders searched independently: the whole
// graph in index order, or one ascending order per connected component.
func searchGroups(g *network.Graph, o Options) ([][]int, error) {
	n := g.VertexCount()
	if n == 0 {
		return nil, nil
	}
	if o.Components {
		comps, err := bfs.Components(g, bfs.WithContext(o.Ctx))
		if err != nil {
			return nil, fmt.Errorf("rounds: split components: %w", err)
		}

		return comps, nil
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	return [][]int{order}, nil
}

// minimumFor tests k = 1..limit over one vertex order.
func minimumFor(g *network.Graph, order []int, o Options) (int, error) {
	limit := len(order)
	capped := o.MaxRounds > 0 && o.MaxRounds < limit
	if capped {
		limit = o.MaxRounds
	}

	bt := newBacktracker(g, order, o.Ctx)
	for k := 1; k <= limit; k++ {
		ok, err := bt.run(k)
		if err != nil {
			return 0, err
		}
		o.OnAttempt(k, ok)
		o.Logger.Debug("exact attempt", "rounds", k, "feasible", ok, "servers", len(order), "steps", bt.steps)
		if ok {
			return k, nil
		}
	}

	if capped {
		return 0, fmt.Errorf("%w: more than %d rounds needed", ErrRoundLimit, o.MaxRounds)
	}

	return 0, ErrUnschedulable
}

// backtracker owns the search state over one vertex order.
// The partial assignment lives in the vertices' round fields; the vertex at
// depth i resumes from its current round + 1, which is its candidate cursor.
type backtracker struct {
	order []*network.Vertex
	ctx   context.Context
	steps int
}

func newBacktracker(g *network.Graph, order []int, ctx context.Context) *backtracker {
	vs := make([]*network.Vertex, len(order))
	for i, idx := range order {
		vs[i] = g.Vertex(idx)
	}

	return &backtracker{order: vs, ctx: ctx}
}

// run searches for an allocation in {1..k}. Vertices outside the order are
// left alone; vertices inside it end up assigned (true) or reset (false).
func (b *backtracker) run(k int) (bool, error) {
	for _, v := range b.order {
		v.ResetRound()
	}

	i := 0
	for i >= 0 && i < len(b.order) {
		b.steps++
		if b.steps%cancelCheckInterval == 0 {
			if err := b.ctx.Err(); err != nil {
				return false, err
			}
		}

		v := b.order[i]
		if b.advance(v, k) {
			i++
			continue
		}
		v.ResetRound()
		i--
	}

	return i == len(b.order), nil
}

// advance moves v to its next round in (current, k] that is valid against
// its scheduled neighbors. It reports false when none is left.
func (b *backtracker) advance(v *network.Vertex, k int) bool {
	for r := v.Round() + 1; r <= k; r++ {
		v.SetRound(r)
		if IsVertexValid(v) {
			return true
		}
	}

	return false
}
