// File: methods_paths.go
// Role: effective-weight snapshots and shortest-path queries.
// Concurrency:
//   - Snapshot copies the matrix under the read lock; Dijkstra then runs on
//     the copy with no lock held, so status changes never tear a query.

package core

import (
	"fmt"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/matrix"
)

// Snapshot returns the current effective-weight matrix: edge weight for up
// edges, matrix.Infinity for down edges and absent pairs, 0 on the diagonal.
// Complexity: O(N² + E).
func (g *Graph) Snapshot() (*matrix.Dense, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	m, err := matrix.NewDense(g.n)
	if err != nil {
		return nil, fmt.Errorf("core: snapshot: %w", err)
	}
	for i := range g.edges {
		e := &g.edges[i]
		if err := m.SetSymmetric(e.From, e.To, e.EffectiveWeight()); err != nil {
			return nil, fmt.Errorf("core: snapshot edge %d—%d: %w", e.From, e.To, err)
		}
	}

	return m, nil
}

// ShortestPaths computes distances and predecessors from source over the
// current edge statuses. Every call recomputes from scratch.
//
// Errors: ErrOutOfRange for a bad source.
// Complexity: O(N²).
func (g *Graph) ShortestPaths(source int) (*dijkstra.Result, error) {
	if !g.inRange(source) {
		return nil, fmt.Errorf("%w: source %d not in [0,%d)", ErrOutOfRange, source, g.n)
	}
	m, err := g.Snapshot()
	if err != nil {
		return nil, err
	}

	return dijkstra.Dijkstra(m, dijkstra.Source(source))
}

// Route returns the shortest path from source to dest.
//
// Errors: ErrOutOfRange, or dijkstra.ErrUnreachable when no path exists.
func (g *Graph) Route(source, dest int) (*dijkstra.Path, error) {
	if !g.inRange(dest) {
		return nil, fmt.Errorf("%w: dest %d not in [0,%d)", ErrOutOfRange, dest, g.n)
	}
	res, err := g.ShortestPaths(source)
	if err != nil {
		return nil, err
	}

	return dijkstra.Reconstruct(res, dest, g)
}
