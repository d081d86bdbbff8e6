package rounds

import "github.com/katalvlaran/roundplan/network"

// IsValid reports whether no two adjacent servers share a nonzero round.
// Unassigned vertices never conflict. Complexity: O(V + E).
func IsValid(g *network.Graph) bool {
	return g != nil && firstConflict(g) == nil
}

// Validate is IsValid with a reason: it returns a *ConflictError for the
// first conflicting pair in vertex order, or ErrNilGraph.
func Validate(g *network.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if c := firstConflict(g); c != nil {
		return c
	}

	return nil
}

// IsComplete reports whether every server holds a nonzero round.
func IsComplete(g *network.Graph) bool {
	if g == nil {
		return false
	}
	for _, v := range g.Vertices() {
		if !v.Assigned() {
			return false
		}
	}

	return true
}

// IsVertexValid reports whether v's round differs from every assigned
// neighbor's round. An unassigned v is always valid.
// Complexity: O(deg(v)), sequential over the neighbor store.
func IsVertexValid(v *network.Vertex) bool {
	return vertexConflict(v) == nil
}

func firstConflict(g *network.Graph) *ConflictError {
	for _, v := range g.Vertices() {
		if c := vertexConflict(v); c != nil {
			return c
		}
	}

	return nil
}

func vertexConflict(v *network.Vertex) *ConflictError {
	r := v.Round()
	if r == network.Unassigned {
		return nil
	}
	for i, d := 0, v.Degree(); i < d; i++ {
		if u := v.Neighbor(i); u.Round() == r {
			return &ConflictError{U: v.ID(), V: u.ID(), Round: r}
		}
	}

	return nil
}
