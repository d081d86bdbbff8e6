package neighbors

// nilIndex marks an absent arena link (no prev/next cell, invalid cursor).
const nilIndex = -1

// cell is one arena slot. prev/next are arena indices, not positions.
type cell[T any] struct {
	item T
	prev int
	next int
}

// cursor caches the last accessed cell and its position in the sequence.
type cursor struct {
	cell int // arena index, nilIndex when invalid
	pos  int
}

// Store is an ordered, mutable sequence with amortized O(1) sequential
// positional access.
//
// The zero value is not ready for use; create stores with New or
// NewWithCapacity.
type Store[T any] struct {
	cells []cell[T] // arena
	free  []int     // recycled arena slots

	head int
	tail int
	size int

	cur cursor

	// hops counts link traversals performed by locate; read by tests.
	hops int
}

// New returns an empty Store.
func New[T any]() *Store[T] {
	return NewWithCapacity[T](0)
}

// NewWithCapacity returns an empty Store whose arena is preallocated for n items.
// Negative n is treated as zero.
func NewWithCapacity[T any](n int) *Store[T] {
	if n < 0 {
		n = 0
	}

	return &Store[T]{
		cells: make([]cell[T], 0, n),
		head:  nilIndex,
		tail:  nilIndex,
		cur:   cursor{cell: nilIndex},
	}
}
