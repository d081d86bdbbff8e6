package neighbors

// Hops exposes the number of link traversals performed so far.
func (s *Store[T]) Hops() int { return s.hops }

// CursorPos reports the cached position and whether the cursor is valid.
func (s *Store[T]) CursorPos() (int, bool) {
	return s.cur.pos, s.cur.cell != nilIndex
}

// FreeSlots reports how many arena slots are waiting for reuse.
func (s *Store[T]) FreeSlots() int { return len(s.free) }
