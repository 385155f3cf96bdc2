// Package bfs provides tunable options, sentinel errors and the result type
// for breadth-first search over a cost matrix.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Unreached marks a vertex the search never got to, in Result.Depth and
// Result.Parent.
const Unreached = -1

// Sentinel errors for BFS execution.
var (
	// ErrNilMatrix is returned if a nil matrix is passed.
	ErrNilMatrix = errors.New("bfs: matrix is nil")

	// ErrStartOutOfRange is returned when the start index is not a vertex.
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when reading a matrix cell fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Matrix is the read-only view BFS walks. A cell holding Infinity is not an
// edge; any other off-diagonal cell is.
type Matrix interface {
	Order() int
	At(u, v int) (int64, error)
}

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS
// is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for a BFS run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued. A non-nil error aborts
	// the search and is returned wrapped.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many hops.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with a background context, no depth limit
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visit.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to d hops. d == 0 means no limit; d < 0 is
// rejected with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a traversal.
//
//   - Start:  the start index.
//   - Order:  vertices in visit sequence.
//   - Depth:  hop count from Start, Unreached if never seen.
//   - Parent: predecessor in the BFS tree, Unreached for Start and unseen vertices.
type Result struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether v was visited.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != Unreached
}

// PathTo reconstructs the fewest-hop path from Start to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur != Unreached; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
