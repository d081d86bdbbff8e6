package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/roundplan/network"
)

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	index int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *network.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from the 0-based index start.
func BFS(g *network.Graph, start int, opts ...Option) (*Result, error) {
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
	if g.Vertex(start) == nil {
		return nil, fmt.Errorf("%w: index %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = unreached
		w.res.Parent[i] = unreached
	}

	w.enqueue(start, 0, unreached)

	return w.res, w.loop()
}

// enqueue marks index visited at depth d, records its parent and queues it.
func (w *walker) enqueue(index, d, parent int) {
	w.res.Depth[index] = d
	w.res.Parent[index] = parent
	w.queue = append(w.queue, queueItem{index: index, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.index)
		if err := w.opts.OnVisit(item.index, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.index, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors queues every unseen neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
		return
	}
	v := w.graph.Vertex(item.index)
	for i, d := 0, v.Degree(); i < d; i++ {
		nbr := v.Neighbor(i).Index()
		if w.res.Depth[nbr] != unreached {
			continue
		}
		w.enqueue(nbr, item.depth+1, item.index)
	}
}
