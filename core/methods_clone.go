// File: methods_clone.go
// Role: deep copies of a Graph.
// Concurrency:
//   - Read lock on the source for the whole copy; the clone is independent.

package core

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Clone returns a deep copy of the Graph: labels, label index, adjacency cells
// and every edge with its current status. Status changes on the clone never
// reach the original, which makes it the unit handed to read-only consumers
// such as renderers.
//
// Complexity: O(N² + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		n:      g.n,
		labels: make([]string, g.n),
		index:  orderedmap.New[string, int](),
		cells:  make([]int, len(g.cells)),
		edges:  make([]Edge, len(g.edges)),
		log:    g.log,
	}
	copy(c.labels, g.labels)
	copy(c.cells, g.cells)
	copy(c.edges, g.edges)
	for pair := g.index.Oldest(); pair != nil; pair = pair.Next() {
		c.index.Set(pair.Key, pair.Value)
	}

	return c
}
