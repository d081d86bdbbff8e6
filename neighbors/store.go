package neighbors

// Len returns the number of items in the store.
// Complexity: O(1).
func (s *Store[T]) Len() int {
	return s.size
}

// Insert places item so that it ends up at position pos and returns the
// resolved non-negative position.
//
// Negative positions count from the end: -1 appends, -2 inserts before the
// last item, and so on. Positions outside [0, Len()] are clamped.
//
// Complexity: O(1) for appends, otherwise the cost of locating pos.
func (s *Store[T]) Insert(item T, pos int) int {
	p := insertPosition(pos, s.size)
	idx := s.alloc(item)

	switch {
	case s.size == 0:
		s.head, s.tail = idx, idx
	case p == s.size:
		// append after tail
		s.cells[idx].prev = s.tail
		s.cells[s.tail].next = idx
		s.tail = idx
	default:
		at := s.locate(p)
		prev := s.cells[at].prev
		s.cells[idx].prev = prev
		s.cells[idx].next = at
		s.cells[at].prev = idx
		if prev == nilIndex {
			s.head = idx
		} else {
			s.cells[prev].next = idx
		}
	}
	s.size++

	// The new cell now occupies p; every cached position after it shifted.
	s.cur = cursor{cell: idx, pos: p}

	return p
}

// RemoveAt deletes and returns the item at pos.
// Negative positions count from the end (-1 is the last item); out-of-range
// positions are clamped. It reports false when the store is empty.
//
// Removing the cached cell invalidates the cursor.
func (s *Store[T]) RemoveAt(pos int) (T, bool) {
	var zero T
	if s.size == 0 {
		return zero, false
	}

	p := accessPosition(pos, s.size)
	idx := s.locate(p)
	c := s.cells[idx]

	if c.prev == nilIndex {
		s.head = c.next
	} else {
		s.cells[c.prev].next = c.next
	}
	if c.next == nilIndex {
		s.tail = c.prev
	} else {
		s.cells[c.next].prev = c.prev
	}
	s.size--

	if s.cur.cell == idx {
		s.cur = cursor{cell: nilIndex}
	}
	s.release(idx)

	return c.item, true
}

// Get returns the item at pos using the same position rules as RemoveAt.
// It reports false when the store is empty.
func (s *Store[T]) Get(pos int) (T, bool) {
	var zero T
	if s.size == 0 {
		return zero, false
	}

	return s.cells[s.locate(accessPosition(pos, s.size))].item, true
}

// Each calls fn for every item in order until fn returns false.
// It follows the links directly and leaves the cursor untouched.
func (s *Store[T]) Each(fn func(pos int, item T) bool) {
	pos := 0
	for idx := s.head; idx != nilIndex; idx = s.cells[idx].next {
		if !fn(pos, s.cells[idx].item) {
			return
		}
		pos++
	}
}

// Items returns a snapshot of the items in order.
func (s *Store[T]) Items() []T {
	out := make([]T, 0, s.size)
	s.Each(func(_ int, item T) bool {
		out = append(out, item)
		return true
	})

	return out
}

// locate returns the arena index of the cell at position p (0 ≤ p < size)
// and moves the cursor there.
func (s *Store[T]) locate(p int) int {
	var (
		idx = s.head
		at  = 0
	)

	fromHead := p
	fromTail := s.size - 1 - p

	if s.cur.cell != nilIndex {
		if fromCur := abs(p - s.cur.pos); fromCur < fromHead && fromCur < fromTail {
			idx, at = s.cur.cell, s.cur.pos
		} else if fromTail < fromHead {
			idx, at = s.tail, s.size-1
		}
	} else if fromTail < fromHead {
		idx, at = s.tail, s.size-1
	}

	for at < p {
		idx = s.cells[idx].next
		at++
		s.hops++
	}
	for at > p {
		idx = s.cells[idx].prev
		at--
		s.hops++
	}

	s.cur = cursor{cell: idx, pos: p}

	return idx
}

// alloc stores item in a recycled or fresh arena slot with no links.
func (s *Store[T]) alloc(item T) int {
	c := cell[T]{item: item, prev: nilIndex, next: nilIndex}
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		s.cells[idx] = c

		return idx
	}
	s.cells = append(s.cells, c)

	return len(s.cells) - 1
}

// release clears the slot so it no longer pins its item, then recycles it.
func (s *Store[T]) release(idx int) {
	s.cells[idx] = cell[T]{prev: nilIndex, next: nilIndex}
	s.free = append(s.free, idx)
}

// accessPosition normalizes a Get/RemoveAt position into [0, size-1].
func accessPosition(pos, size int) int {
	if pos < 0 {
		pos += size
	}

	return clamp(pos, 0, size-1)
}

// insertPosition normalizes an Insert position into [0, size].
func insertPosition(pos, size int) int {
	if pos < 0 {
		pos += size + 1
	}

	return clamp(pos, 0, size)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
