// Package network models a server network as a fixed-size undirected graph.
//
// A Graph owns exactly n vertices, allocated once by New. Vertex i (0-based
// array index) is the server with external id i+1. Each Vertex owns a
// neighbors.Store of adjacent vertices and an update round; round 0
// (Unassigned) means "not scheduled yet".
//
// Build contract:
//
//	g, _ := network.New(4)
//	_ = g.AddEdge(0, 1)     // 0-based indices
//	_ = g.AddEdgeByID(3, 4) // 1-based server ids
//
// AddEdge mirrors the edge into both endpoints' stores. It does not reject
// self-loops or duplicate edges; callers supply simple graphs. Out-of-range
// endpoints return ErrInvalidReference and leave adjacency untouched.
//
// After the build step only round fields change (SetRound, ApplyRounds,
// ResetRounds). The vertex set never changes. A Graph is not safe for
// concurrent use; exactly one solver owns it at a time.
//
// Errors:
//
//	ErrInvalidVertexCount - negative vertex count passed to New.
//	ErrInvalidReference   - vertex index/id outside the graph.
//	ErrInvalidRound       - negative round, or allocation length mismatch.
package network
