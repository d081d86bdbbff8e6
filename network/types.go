package network

import (
	"errors"

	"github.com/katalvlaran/roundplan/neighbors"
)

// Sentinel errors for network construction and round assignment.
var (
	// ErrInvalidVertexCount indicates a negative vertex count.
	ErrInvalidVertexCount = errors.New("network: invalid vertex count")

	// ErrInvalidReference indicates an edge endpoint outside the graph.
	ErrInvalidReference = errors.New("network: invalid vertex reference")

	// ErrInvalidRound indicates a negative round or a malformed allocation.
	ErrInvalidRound = errors.New("network: invalid round")
)

// Unassigned is the round of a vertex no solver has scheduled yet.
const Unassigned = 0

// Vertex is a server in the network.
type Vertex struct {
	index     int
	neighbors *neighbors.Store[*Vertex]
	round     int
}

// Graph is a fixed array of vertices plus an undirected edge list.
type Graph struct {
	vertices []*Vertex

	// edges records AddEdge calls in order, as 0-based index pairs.
	edges [][2]int
}
