package network

import (
	"fmt"

	"github.com/katalvlaran/roundplan/neighbors"
)

// New allocates a graph with exactly vertexCount unassigned, isolated vertices.
// Complexity: O(V).
func New(vertexCount int) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("New(%d): %w", vertexCount, ErrInvalidVertexCount)
	}

	g := &Graph{vertices: make([]*Vertex, vertexCount)}
	for i := range g.vertices {
		g.vertices[i] = &Vertex{
			index:     i,
			neighbors: neighbors.New[*Vertex](),
			round:     Unassigned,
		}
	}

	return g, nil
}

// AddEdge connects the vertices at 0-based indices u and v in both directions.
// Self-loops and duplicates are not rejected.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	if !g.valid(u) || !g.valid(v) {
		return fmt.Errorf("AddEdge(%d,%d) with %d vertices: %w", u, v, len(g.vertices), ErrInvalidReference)
	}

	a, b := g.vertices[u], g.vertices[v]
	a.neighbors.Insert(b, -1)
	if a != b {
		b.neighbors.Insert(a, -1)
	}
	g.edges = append(g.edges, [2]int{u, v})

	return nil
}

// AddEdgeByID connects the servers with 1-based ids u and v.
func (g *Graph) AddEdgeByID(u, v int) error {
	if !g.valid(u-1) || !g.valid(v-1) {
		return fmt.Errorf("AddEdgeByID(%d,%d) with %d vertices: %w", u, v, len(g.vertices), ErrInvalidReference)
	}

	return g.AddEdge(u-1, v-1)
}

// Vertices returns the vertex array in canonical order (index i is id i+1).
// The slice is shared; callers must not reorder it.
func (g *Graph) Vertices() []*Vertex { return g.vertices }

// Vertex returns the vertex at 0-based index i, or nil if out of range.
func (g *Graph) Vertex(i int) *Vertex {
	if !g.valid(i) {
		return nil
	}

	return g.vertices[i]
}

// VertexCount returns V.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of AddEdge calls that succeeded.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the edge list as 0-based index pairs, in insertion order.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, len(g.edges))
	copy(out, g.edges)

	return out
}

// Rounds returns a snapshot of every vertex's round in array order.
func (g *Graph) Rounds() []int {
	out := make([]int, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.round
	}

	return out
}

// ApplyRounds copies allocation into the vertices' round fields.
// len(allocation) must equal V and no round may be negative.
func (g *Graph) ApplyRounds(allocation []int) error {
	if len(allocation) != len(g.vertices) {
		return fmt.Errorf("ApplyRounds: %d rounds for %d vertices: %w", len(allocation), len(g.vertices), ErrInvalidRound)
	}
	for i, r := range allocation {
		if r < 0 {
			return fmt.Errorf("ApplyRounds: server %d has round %d: %w", i+1, r, ErrInvalidRound)
		}
	}
	for i, r := range allocation {
		g.vertices[i].round = r
	}

	return nil
}

// ResetRounds marks every vertex unassigned.
func (g *Graph) ResetRounds() {
	for _, v := range g.vertices {
		v.round = Unassigned
	}
}

// MaxRound returns the largest round currently assigned (0 if none).
func (g *Graph) MaxRound() int {
	maxRound := Unassigned
	for _, v := range g.vertices {
		if v.round > maxRound {
			maxRound = v.round
		}
	}

	return maxRound
}

// Clone returns an independent copy of g, including rounds.
func (g *Graph) Clone() *Graph {
	c, _ := New(len(g.vertices))
	for _, e := range g.edges {
		_ = c.AddEdge(e[0], e[1])
	}
	for i, v := range g.vertices {
		c.vertices[i].round = v.round
	}

	return c
}

func (g *Graph) valid(i int) bool {
	return i >= 0 && i < len(g.vertices)
}
