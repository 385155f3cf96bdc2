// File: methods_edges.go
// Role: edge lifecycle, status changes and edge queries.
// Determinism:
//   - Edges() returns edges sorted by (From, To).
//   - Neighbors() returns indices ascending.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// AddEdge creates the undirected edge u—v with the given weight, up.
//
// A second AddEdge on the same pair replaces the first: the arena slot is
// overwritten, so the pair never holds more than one edge and the new edge
// starts up regardless of the old one's status.
//
// Errors: ErrOutOfRange, ErrLoopNotAllowed, ErrNegativeWeight, ErrWeightTooLarge.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight int64) error {
	// 1) Validate
	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("%w: edge %d—%d with %d vertices", ErrOutOfRange, u, v, g.n)
	}
	if u == v {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, u)
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge %d—%d weight=%d", ErrNegativeWeight, u, v, weight)
	}
	if weight > MaxWeight {
		return fmt.Errorf("%w: edge %d—%d weight=%d > %d", ErrWeightTooLarge, u, v, weight, MaxWeight)
	}

	// 2) Normalize so From < To
	if u > v {
		u, v = v, u
	}
	e := Edge{From: u, To: v, Weight: weight, operational: true}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Replace in place or append to the arena
	if slot := g.cell(u, v); slot != noEdge {
		g.edges[slot] = e
		return nil
	}
	slot := len(g.edges)
	g.edges = append(g.edges, e)
	g.cells[u*g.n+v] = slot
	g.cells[v*g.n+u] = slot

	return nil
}

// Edge returns a copy of the edge between u and v, in either order.
func (g *Graph) Edge(u, v int) (Edge, bool) {
	if !g.inRange(u) || !g.inRange(v) {
		return Edge{}, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	slot := g.cell(u, v)
	if slot == noEdge {
		return Edge{}, false
	}

	return g.edges[slot], true
}

// EffectiveWeight returns the current cost of crossing u—v: the edge weight
// while up, Infinity while down. ok is false when there is no edge.
func (g *Graph) EffectiveWeight(u, v int) (w int64, ok bool) {
	e, ok := g.Edge(u, v)
	if !ok {
		return Infinity, false
	}

	return e.EffectiveWeight(), true
}

// Edges returns copies of every edge sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of logical edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns every vertex sharing an edge with u, up or down.
func (g *Graph) Neighbors(u int) ([]int, error) {
	if !g.inRange(u) {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, u)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []int
	for v := 0; v < g.n; v++ {
		if g.cell(u, v) != noEdge {
			out = append(out, v)
		}
	}

	return out, nil
}

// SetEdgeStatus brings the single edge u—v up or down.
// Errors: ErrOutOfRange, ErrEdgeNotFound.
func (g *Graph) SetEdgeStatus(u, v int, up bool) error {
	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("%w: edge %d—%d with %d vertices", ErrOutOfRange, u, v, g.n)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	slot := g.cell(u, v)
	if slot == noEdge {
		return fmt.Errorf("%w: %d—%d", ErrEdgeNotFound, u, v)
	}
	g.edges[slot].SetOperational(up)
	g.log.Debug("edge status changed", zap.Int("from", u), zap.Int("to", v), zap.Bool("up", up))

	return nil
}

// SetNodeStatus sets the status of every edge incident to node.
//
// There is no per-vertex flag: a "down" node is one whose edges are all down.
// Its neighbors lose connectivity through it, edges between other vertices
// are untouched, and the node itself stays a valid source at cost 0.
// Idempotent. Errors: ErrOutOfRange.
//
// Complexity: O(N).
func (g *Graph) SetNodeStatus(node int, up bool) error {
	if !g.inRange(node) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, node, g.n)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	changed := 0
	for v := 0; v < g.n; v++ {
		slot := g.cell(node, v)
		if slot == noEdge {
			continue
		}
		g.edges[slot].SetOperational(up)
		changed++
	}
	g.log.Debug("node status changed",
		zap.Int("node", node),
		zap.String("label", g.labels[node]),
		zap.Bool("up", up),
		zap.Int("edges", changed),
	)

	return nil
}

// DownNodes returns, ascending, every vertex that has at least one edge and
// whose edges are all down.
func (g *Graph) DownNodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []int
	for u := 0; u < g.n; u++ {
		incident, down := 0, 0
		for v := 0; v < g.n; v++ {
			slot := g.cell(u, v)
			if slot == noEdge {
				continue
			}
			incident++
			if !g.edges[slot].Operational() {
				down++
			}
		}
		if incident > 0 && incident == down {
			out = append(out, u)
		}
	}

	return out
}
