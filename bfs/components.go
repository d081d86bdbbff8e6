package bfs

import (
	"sort"

	"github.com/katalvlaran/roundplan/network"
)

// Components partitions g into connected components.
//
// Each component lists its vertex indices in ascending order, and components
// are ordered by their smallest index, so concatenating them visits every
// vertex exactly once. An isolated vertex forms its own component.
// WithContext and WithOnVisit apply; MaxDepth is ignored.
//
// Complexity: O(V + E) plus O(V log V) for sorting members.
func Components(g *network.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	o.MaxDepth = 0

	// One walker shares Depth/Parent across every start vertex.
	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = unreached
		w.res.Parent[i] = unreached
	}

	var out [][]int
	for i := 0; i < n; i++ {
		if w.res.Depth[i] != unreached {
			continue
		}
		from := len(w.res.Order)
		w.enqueue(i, 0, unreached)
		if err := w.loop(); err != nil {
			return nil, err
		}
		comp := make([]int, len(w.res.Order)-from)
		copy(comp, w.res.Order[from:])
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out, nil
}
