// Package rounds schedules server updates: it assigns every vertex of a
// network.Graph a positive round so that adjacent servers never update in
// the same round (a proper vertex coloring), and checks such assignments.
//
// Solvers
//
//   - Minimum - exact. Tries k = 1, 2, … and runs a bounded backtracking
//     search in vertex index order for each k; the first feasible k is the
//     chromatic number and the graph holds a witnessing assignment.
//     Complexity: O(k^(V+1)) per tested k. Intended for small networks.
//   - Greedy - first-fit heuristic. One pass in index order; each vertex takes
//     the smallest round none of its already scheduled neighbors holds.
//     Complexity: O(V + Σ deg·log deg). Never fewer rounds than Minimum.
//   - Compare - runs both on the same graph and reports the gap.
//
// Both solvers overwrite the rounds stored on the graph and return a Result
// snapshot. Neither can fail on a simple graph; errors only come from nil
// input, invalid options, a round cap (WithMaxRounds), context cancellation
// (WithContext) or a self-loop that makes the network unschedulable.
//
// Validation
//
//	IsValid and Validate treat round 0 (unassigned) as "no conflict yet", so
//	partially scheduled graphs can be checked mid-search. IsComplete reports
//	whether every vertex holds a round.
//
// Backtracking is iterative: a per-vertex candidate cursor replaces
// recursion, so search depth V never grows the goroutine stack.
//
// Options
//
//   - WithContext(ctx):     external time budget, polled every few thousand steps.
//   - WithMaxRounds(k):     refuse answers above k rounds (ErrRoundLimit).
//   - WithComponents():     exact search per connected component; result is the max.
//   - WithOnAttempt(fn):    observe each (k, feasible) tried by the exact solver.
//   - WithLogger(logger):   debug logging of attempts; silent by default.
//
// Errors
//
//   - ErrNilGraph, ErrInvalidBound, ErrOptionViolation, ErrRoundLimit,
//     ErrUnschedulable, ErrConflict (via *ConflictError).
package rounds
