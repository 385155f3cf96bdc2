// File: methods_vertices.go
// Role: vertex labels and the label → index map.
// Concurrency:
//   - AddVertexLabel under the write lock.
//   - Label, Labels, Lookup, Names under the read lock.

package core

import (
	"fmt"

	"go.uber.org/zap"
)

// AddVertexLabel names vertex index. Calling it again for the same index
// replaces the label and drops the old name from the index map.
//
// Errors: ErrOutOfRange, ErrEmptyLabel, and ErrDuplicateLabel when label
// already names a different vertex.
func (g *Graph) AddVertexLabel(index int, label string) error {
	if !g.inRange(index) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, index, g.n)
	}
	if label == "" {
		return ErrEmptyLabel
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if owner, ok := g.index.Get(label); ok && owner != index {
		return fmt.Errorf("%w: %q is vertex %d", ErrDuplicateLabel, label, owner)
	}
	if old := g.labels[index]; old != "" && old != label {
		g.index.Delete(old)
		g.log.Debug("vertex relabeled", zap.Int("index", index), zap.String("old", old), zap.String("label", label))
	}
	g.labels[index] = label
	g.index.Set(label, index)

	return nil
}

// Label returns the label of vertex i, or "" if i is out of range or unlabeled.
func (g *Graph) Label(i int) string {
	if !g.inRange(i) {
		return ""
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.labels[i]
}

// Labels returns a copy of all labels in index order.
func (g *Graph) Labels() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// Lookup resolves a label to its vertex index.
func (g *Graph) Lookup(label string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.index.Get(label)
}

// Names returns every bound label in the order it was first bound.
func (g *Graph) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, g.index.Len())
	for pair := g.index.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}
