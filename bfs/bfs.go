// Package bfs computes fewest-hop distances over the usable edges of a cost
// matrix. It ignores weights: an edge counts as one hop whatever it costs,
// and a cell holding Infinity is not an edge at all.
//
// Neighbors are scanned in ascending index order, so the visit sequence and
// the parent links are reproducible.
//
// Complexity: O(N²) time for an N-vertex matrix, O(N) memory.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvroute/matrix"
)

// walker encapsulates mutable BFS state.
type walker struct {
	m     Matrix
	n     int
	opts  Options
	ctx   context.Context
	queue []int
	res   *Result
}

// BFS runs breadth-first search on m starting from start.
// Returns ErrNilMatrix, ErrStartOutOfRange or ErrOptionViolation for invalid
// input, ErrNeighbors when a cell cannot be read, the context error on
// cancellation, or any OnVisit error.
func BFS(m Matrix, start int, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := m.Order()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		m:     m,
		n:     n,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// enqueue marks v seen at depth d under parent.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		u := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, u)
		if err := w.opts.OnVisit(u, w.res.Depth[u]); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		if err := w.enqueueNeighbors(u); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues every unseen v with a usable u—v cell.
func (w *walker) enqueueNeighbors(u int) error {
	next := w.res.Depth[u] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for v := 0; v < w.n; v++ {
		if v == u || w.res.Depth[v] != Unreached {
			continue
		}
		c, err := w.m.At(u, v)
		if err != nil {
			return fmt.Errorf("%w: cell %d,%d: %v", ErrNeighbors, u, v, err)
		}
		if c == matrix.Infinity {
			continue
		}
		w.enqueue(v, next, u)
	}

	return nil
}
