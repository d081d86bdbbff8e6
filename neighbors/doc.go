// Package neighbors provides Store, the ordered adjacency sequence each
// network vertex owns.
//
// What
//
//   - Insert, RemoveAt and Get by position; negative positions count from
//     the end of the sequence (-1 is "append" for Insert and "last" for
//     Get/RemoveAt). Positions outside the valid range are clamped.
//   - Insertion order is preserved, so iteration is deterministic.
//
// How
//
//	Cells live in an index-addressed arena ([]cell[T]) and are chained by
//	prev/next arena indices; removed cells are recycled through a free list.
//	The store remembers the arena index and position of the most recently
//	accessed cell. A lookup starts from whichever of {head, tail, cursor} is
//	nearest to the requested position and walks toward it.
//
// Complexity (n = Len())
//
//   - Get/RemoveAt/Insert: O(n) worst case; O(1) amortized when positions are
//     visited sequentially (0,1,2,… or n-1,n-2,…).
//   - Append (Insert at -1): O(1).
//   - Each, Items: O(n).
//
// A Store is not safe for concurrent use.
package neighbors
