package rounds

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for round allocation.
var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("rounds: graph is nil")

	// ErrInvalidBound is returned when a bounded search gets fewer than one round.
	ErrInvalidBound = errors.New("rounds: round bound must be at least 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("rounds: invalid option supplied")

	// ErrRoundLimit is returned when no allocation fits within WithMaxRounds.
	ErrRoundLimit = errors.New("rounds: allocation exceeds round limit")

	// ErrUnschedulable is returned when even one round per server conflicts,
	// which only happens when a server is connected to itself.
	ErrUnschedulable = errors.New("rounds: network cannot be scheduled")

	// ErrConflict classifies *ConflictError.
	ErrConflict = errors.New("rounds: adjacent servers share a round")
)

// cancelCheckInterval is how many search steps run between context polls.
const cancelCheckInterval = 4096

// Algorithm names a round allocation strategy.
type Algorithm string

const (
	// AlgoExact is the backtracking minimum-rounds solver.
	AlgoExact Algorithm = "exact"
	// AlgoGreedy is the first-fit heuristic.
	AlgoGreedy Algorithm = "greedy"
)

// ParseAlgorithm maps a user-supplied name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AlgoExact, AlgoGreedy:
		return Algorithm(s), nil
	case "heuristic":
		return AlgoGreedy, nil
	}

	return "", fmt.Errorf("%w: unknown algorithm %q", ErrOptionViolation, s)
}

// Result is the outcome of one solver run.
type Result struct {
	// Algorithm that produced the allocation.
	Algorithm Algorithm

	// Rounds is the number of rounds used (the minimum for AlgoExact).
	Rounds int

	// Allocation[i] is the round of the server with id i+1.
	Allocation []int
}

// Comparison pairs a greedy and an exact run over the same graph.
type Comparison struct {
	Greedy Result
	Exact  Result

	// Gap is Greedy.Rounds - Exact.Rounds; never negative.
	Gap int
}

// ConflictError reports two adjacent servers on the same round.
// U and V are 1-based server ids; U == V for a self-loop.
type ConflictError struct {
	U, V  int
	Round int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("rounds: servers %d and %d share round %d", e.U, e.V, e.Round)
}

// Unwrap lets errors.Is(err, ErrConflict) match.
func (e *ConflictError) Unwrap() error { return ErrConflict }

// Option configures a solver via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds solver parameters and callbacks.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxRounds, if > 0, caps the number of rounds a solver may use.
	MaxRounds int

	// Components splits the exact search by connected component.
	Components bool

	// OnAttempt is called after each bounded search of the exact solver.
	OnAttempt func(k int, feasible bool)

	// Logger receives debug records; discarded by default.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns a background context, no round cap, a single
// search over the whole graph, a no-op hook and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnAttempt: func(int, bool) {},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxRounds caps the rounds a solver may use.
//
//	k > 0: cap at k
//	k == 0: no cap
//	k < 0: invalid option → ErrOptionViolation
func WithMaxRounds(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxRounds = k
	}
}

// WithComponents makes the exact solver search each connected component
// independently and report the largest component minimum.
func WithComponents() Option {
	return func(o *Options) { o.Components = true }
}

// WithOnAttempt registers a callback run after each tested round bound.
func WithOnAttempt(fn func(k int, feasible bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAttempt = fn
		}
	}
}

// WithLogger routes solver debug records to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
