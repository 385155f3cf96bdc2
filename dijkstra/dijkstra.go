// Package dijkstra implements Dijkstra's shortest-path algorithm over a dense
// cost matrix.
//
// The graphs this engine serves are small, so it uses the classic O(V²)
// selection scan instead of a heap:
//
//   - Each of V rounds scans all vertices in index order and picks the
//     unvisited one with the smallest tentative distance (strict "<", so the
//     lowest index wins a tie).
//   - The round stops the run early when no unvisited vertex is finite.
//   - Relaxation uses strict "<" too: the first equal-cost path discovered
//     keeps its predecessor, so Prev is stable across identical runs.
//
// Complexity:
//
//   - Time:  O(V²)
//   - Space: O(V) besides the input matrix.
package dijkstra

import (
	"fmt"
)

// Dijkstra computes shortest distances and predecessors from the source
// vertex (Options.Source) to every vertex of m.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMatrix).
//  2. Source must be set (ErrNoSource) and lie in [0, n) (ErrSourceOutOfRange).
//  3. No cell may hold a negative cost (ErrNegativeWeight).
//
// During relaxation a path length that would reach Infinity stops the run
// with ErrDistanceOverflow. core.Graph bounds weights so this cannot happen
// on its snapshots.
//
// Cells equal to Infinity are "no usable edge": absent or down.
func Dijkstra(m Matrix, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if m == nil {
		return nil, ErrNilMatrix
	}
	n := m.Order()
	if cfg.Source == NoPredecessor {
		return nil, ErrNoSource
	}
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, cfg.Source, n)
	}

	// 3) Pre-scan for negative costs so the main loop never sees one.
	if err := checkWeights(m); err != nil {
		return nil, err
	}

	// 4) Run
	r := newRunner(m, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: cfg.Source, Dist: r.dist, Prev: r.prev}, nil
}

// checkWeights scans every cell once and fails on the first negative cost.
func checkWeights(m Matrix) error {
	n := m.Order()
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			w, err := m.At(u, v)
			if err != nil {
				return fmt.Errorf("dijkstra: read (%d,%d): %w", u, v, err)
			}
			if w < 0 {
				return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	m       Matrix
	options Options
	dist    []int64
	prev    []int
	visited []bool
}

// newRunner initializes dist=Infinity, prev=NoPredecessor and dist[source]=0.
func newRunner(m Matrix, cfg Options) *runner {
	n := m.Order()
	r := &runner{
		m:       m,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		r.dist[i] = Infinity
		r.prev[i] = NoPredecessor
	}
	r.dist[cfg.Source] = 0

	return r
}

// process runs at most n selection rounds.
func (r *runner) process() error {
	n := len(r.dist)
	for round := 0; round < n; round++ {
		// 1) Select the closest unvisited vertex.
		u := r.closest()
		if u == NoPredecessor {
			// everything left is unreachable
			break
		}

		// 2) Finalize it.
		r.visited[u] = true

		// 3) Relax its neighbors.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// closest returns the unvisited vertex with the smallest finite distance,
// scanning in index order, or NoPredecessor if there is none.
func (r *runner) closest() int {
	best := NoPredecessor
	bestDist := Infinity
	for i, d := range r.dist {
		if !r.visited[i] && d < bestDist {
			bestDist = d
			best = i
		}
	}

	return best
}

// relax tries to improve every unvisited neighbor v of u through the (u, v) cell.
func (r *runner) relax(u int) error {
	du := r.dist[u]
	for v := range r.dist {
		if v == u || r.visited[v] {
			continue
		}

		w, err := r.m.At(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: read (%d,%d): %w", u, v, err)
		}
		// no edge, or edge down
		if w == Infinity {
			continue
		}
		if w >= Infinity-du {
			return fmt.Errorf("%w: %d + %d at edge %d→%d", ErrDistanceOverflow, du, w, u, v)
		}

		alt := du + w
		if alt > r.options.MaxDistance {
			continue
		}
		if alt < r.dist[v] {
			r.dist[v] = alt
			r.prev[v] = u
		}
	}

	return nil
}
