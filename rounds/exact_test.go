package rounds_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/roundplan/builder"
	"github.com/katalvlaran/roundplan/rounds"
)

// ExactSuite exercises Minimum and Feasible on known topologies.
type ExactSuite struct {
	suite.Suite
}

func (s *ExactSuite) minimum(cons ...builder.Constructor) rounds.Result {
	g := built(s.T(), 1, cons...)
	res, err := rounds.Minimum(g)
	require.NoError(s.T(), err)
	requireProper(s.T(), g, res.Allocation)
	require.Equal(s.T(), g.Rounds(), res.Allocation, "allocation must stay on the graph")
	require.Equal(s.T(), rounds.AlgoExact, res.Algorithm)
	return res
}

// TestTriangle checks K3 needs three rounds.
func (s *ExactSuite) TestTriangle() {
	g := graphOf(s.T(), 3, [2]int{1, 2}, [2]int{2, 3}, [2]int{1, 3})
	res, err := rounds.Minimum(g)
	require.NoError(s.T(), err)
	s.Equal(3, res.Rounds)
	requireProper(s.T(), g, res.Allocation)
}

// TestPath checks P4 is bipartite.
func (s *ExactSuite) TestPath() {
	g := graphOf(s.T(), 4, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})
	res, err := rounds.Minimum(g)
	require.NoError(s.T(), err)
	s.Equal(2, res.Rounds)
	s.Equal([]int{1, 2, 1, 2}, res.Allocation)
}

// TestStar checks a center with four leaves needs two rounds.
func (s *ExactSuite) TestStar() {
	s.Equal(2, s.minimum(builder.Star(5)).Rounds)
}

// TestEdgeless checks that isolated servers share one round.
func (s *ExactSuite) TestEdgeless() {
	res := s.minimum(builder.Isolated(5))
	s.Equal(1, res.Rounds)
	s.Equal([]int{1, 1, 1, 1, 1}, res.Allocation)
}

// TestComplete checks K4 needs four rounds.
func (s *ExactSuite) TestComplete() {
	s.Equal(4, s.minimum(builder.Complete(4)).Rounds)
}

// TestOddCycleAndWheel covers the classic 3- and 4-chromatic cases.
func (s *ExactSuite) TestOddCycleAndWheel() {
	s.Equal(3, s.minimum(builder.Cycle(5)).Rounds)
	s.Equal(2, s.minimum(builder.Cycle(6)).Rounds)
	s.Equal(4, s.minimum(builder.Wheel(6)).Rounds)
	s.Equal(3, s.minimum(builder.Wheel(7)).Rounds)
	s.Equal(2, s.minimum(builder.Grid(3, 4)).Rounds)
	s.Equal(2, s.minimum(builder.CompleteBipartite(3, 4)).Rounds)
}

// TestEmptyGraph checks that no servers need no rounds.
func (s *ExactSuite) TestEmptyGraph() {
	g := graphOf(s.T(), 0)
	res, err := rounds.Minimum(g)
	require.NoError(s.T(), err)
	s.Equal(0, res.Rounds)
	s.Empty(res.Allocation)
}

// TestSelfLoop checks that a server wired to itself cannot be scheduled.
func (s *ExactSuite) TestSelfLoop() {
	g := graphOf(s.T(), 3, [2]int{1, 2}, [2]int{3, 3})
	_, err := rounds.Minimum(g)
	require.ErrorIs(s.T(), err, rounds.ErrUnschedulable)
	s.Equal([]int{0, 0, 0}, g.Rounds(), "rounds must be reset on failure")
}

// TestMaxRounds checks the round cap.
func (s *ExactSuite) TestMaxRounds() {
	g := built(s.T(), 1, builder.Complete(4))
	_, err := rounds.Minimum(g, rounds.WithMaxRounds(3))
	require.ErrorIs(s.T(), err, rounds.ErrRoundLimit)
	s.Equal([]int{0, 0, 0, 0}, g.Rounds())

	res, err := rounds.Minimum(g, rounds.WithMaxRounds(4))
	require.NoError(s.T(), err)
	s.Equal(4, res.Rounds)

	_, err = rounds.Minimum(g, rounds.WithMaxRounds(-1))
	require.ErrorIs(s.T(), err, rounds.ErrOptionViolation)
}

// TestOnAttempt checks that each tested bound is reported in order.
func (s *ExactSuite) TestOnAttempt() {
	g := built(s.T(), 1, builder.Cycle(5))
	type attempt struct {
		k  int
		ok bool
	}
	var seen []attempt
	_, err := rounds.Minimum(g, rounds.WithOnAttempt(func(k int, ok bool) {
		seen = append(seen, attempt{k, ok})
	}))
	require.NoError(s.T(), err)
	s.Equal([]attempt{{1, false}, {2, false}, {3, true}}, seen)
}

// TestComponents checks that per-component search yields the same minimum.
func (s *ExactSuite) TestComponents() {
	cons := []builder.Constructor{builder.Complete(4), builder.Cycle(5), builder.Path(3)}
	whole := s.minimum(cons...)

	g := built(s.T(), 1, cons...)
	split, err := rounds.Minimum(g, rounds.WithComponents())
	require.NoError(s.T(), err)
	requireProper(s.T(), g, split.Allocation)
	s.Equal(4, whole.Rounds)
	s.Equal(whole.Rounds, split.Rounds)
}

// TestCancelled checks that a dead context aborts a long search.
func (s *ExactSuite) TestCancelled() {
	g := built(s.T(), 1, builder.Complete(12))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rounds.Minimum(g, rounds.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
	s.Equal(make([]int, 12), g.Rounds())
}

// TestFeasible checks bounded searches directly.
func (s *ExactSuite) TestFeasible() {
	g := graphOf(s.T(), 3, [2]int{1, 2}, [2]int{2, 3}, [2]int{1, 3})

	ok, err := rounds.Feasible(g, 2)
	require.NoError(s.T(), err)
	s.False(ok)
	s.Equal([]int{0, 0, 0}, g.Rounds())

	ok, err = rounds.Feasible(g, 3)
	require.NoError(s.T(), err)
	s.True(ok)
	s.Equal([]int{1, 2, 3}, g.Rounds())

	ok, err = rounds.Feasible(g, 5)
	require.NoError(s.T(), err)
	s.True(ok)
	s.Equal([]int{1, 2, 3}, g.Rounds(), "lowest rounds are tried first")
}

// TestFeasibleInvalid checks argument errors.
func (s *ExactSuite) TestFeasibleInvalid() {
	g := graphOf(s.T(), 2, [2]int{1, 2})
	for _, k := range []int{0, -3} {
		_, err := rounds.Feasible(g, k)
		require.ErrorIs(s.T(), err, rounds.ErrInvalidBound)
	}
	_, err := rounds.Feasible(nil, 1)
	require.ErrorIs(s.T(), err, rounds.ErrNilGraph)
	_, err = rounds.Minimum(nil)
	require.ErrorIs(s.T(), err, rounds.ErrNilGraph)
}

// TestRerunIgnoresStaleRounds checks that leftovers on g do not leak in.
func (s *ExactSuite) TestRerunIgnoresStaleRounds() {
	g := graphOf(s.T(), 4, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})
	require.NoError(s.T(), g.ApplyRounds([]int{7, 7, 7, 7}))
	res, err := rounds.Minimum(g)
	require.NoError(s.T(), err)
	s.Equal(2, res.Rounds)
	s.Equal([]int{1, 2, 1, 2}, g.Rounds())
}

func TestExactSuite(t *testing.T) {
	suite.Run(t, new(ExactSuite))
}
