package network

import "github.com/katalvlaran/roundplan/neighbors"

// Index returns the 0-based array position of v.
func (v *Vertex) Index() int { return v.index }

// ID returns the 1-based external server id of v.
func (v *Vertex) ID() int { return v.index + 1 }

// Round returns the assigned update round, or Unassigned.
func (v *Vertex) Round() int { return v.round }

// SetRound assigns r to v. Solvers own the value range; r is not checked.
func (v *Vertex) SetRound(r int) { v.round = r }

// ResetRound marks v as unassigned.
func (v *Vertex) ResetRound() { v.round = Unassigned }

// Assigned reports whether v holds a nonzero round.
func (v *Vertex) Assigned() bool { return v.round != Unassigned }

// Degree returns the number of adjacency entries of v.
// Duplicate edges are counted once per AddEdge call.
func (v *Vertex) Degree() int { return v.neighbors.Len() }

// Neighbor returns the i-th adjacent vertex in insertion order, or nil if v
// has no neighbors. Sequential calls (i = 0, 1, 2, …) cost amortized O(1).
func (v *Vertex) Neighbor(i int) *Vertex {
	u, ok := v.neighbors.Get(i)
	if !ok {
		return nil
	}

	return u
}

// Neighbors exposes the adjacency store of v.
// Callers must not mutate it; topology is fixed after the build step.
func (v *Vertex) Neighbors() *neighbors.Store[*Vertex] { return v.neighbors }
