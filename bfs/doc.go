// Package bfs provides breadth-first search over a network.Graph and the
// connected-component split the exact round solver uses.
//
// What
//
//   - BFS explores vertices in non-decreasing hop distance from a start index
//     and returns a Result with the visit Order, Depth and Parent per index.
//   - Components partitions the vertex set into connected components.
//   - Hooks: OnVisit (may abort with an error); MaxDepth limit; Context
//     cancellation checked once per dequeue.
//
// Determinism
//
//	Neighbors are enqueued in adjacency insertion order, so the visit
//	sequence is reproducible for a given build order. Components are
//	returned with members in ascending index order, sorted by their smallest
//	member.
//
// Complexity (V = vertices, E = edges)
//
//   - BFS:        O(V + E) time, O(V) memory.
//   - Components: O(V + E) time, O(V) memory.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start index is outside the graph.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped OnVisit errors, or ctx.Err() on cancellation.
package bfs
