// Package core defines the Edge and Graph types of the routing model and the
// operations that build and mutate them.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrBadSize         - negative vertex count.
//	ErrOutOfRange      - vertex index outside [0, N).
//	ErrEmptyLabel      - vertex label is the empty string.
//	ErrDuplicateLabel  - label already bound to a different index.
//	ErrNegativeWeight  - edge weight below zero.
//	ErrWeightTooLarge  - edge weight above MaxWeight.
//	ErrLoopNotAllowed  - edge from a vertex to itself.
//	ErrEdgeNotFound    - no edge between the requested pair.
package core

import (
	"errors"
	"math"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"
)

// Infinity is the effective weight of an edge that is down.
const Infinity int64 = math.MaxInt64

// MaxWeight is the largest edge weight AddEdge accepts. Any simple path of a
// graph that fits in memory sums to far less than Infinity under this bound.
const MaxWeight int64 = math.MaxInt32

// noEdge marks an empty adjacency cell.
const noEdge = -1

// Sentinel errors for core graph operations.
var (
	// ErrBadSize indicates a negative vertex count was requested.
	ErrBadSize = errors.New("core: graph size must be non-negative")

	// ErrOutOfRange indicates a vertex index outside [0, N).
	ErrOutOfRange = errors.New("core: vertex index out of range")

	// ErrEmptyLabel indicates that a vertex label is empty.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrDuplicateLabel indicates the label already names another vertex.
	ErrDuplicateLabel = errors.New("core: vertex label already in use")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrWeightTooLarge indicates an edge weight above MaxWeight.
	ErrWeightTooLarge = errors.New("core: edge weight too large")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeNotFound indicates there is no edge between the requested pair.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is a weighted, bidirectional link with an operational status.
//
// From < To always holds; the same Edge is seen from both endpoints.
// Weight is fixed at creation, only the status changes afterwards.
type Edge struct {
	// From is the lower endpoint index.
	From int

	// To is the higher endpoint index.
	To int

	// Weight is the cost of crossing the edge while it is up.
	Weight int64

	operational bool
}

// EffectiveWeight returns Weight while the edge is up and Infinity while it is down.
func (e *Edge) EffectiveWeight() int64 {
	if !e.operational {
		return Infinity
	}

	return e.Weight
}

// Operational reports whether the edge is up.
func (e *Edge) Operational() bool {
	return e.operational
}

// SetOperational sets the edge status. It has no other effect and is idempotent.
func (e *Edge) SetOperational(up bool) {
	e.operational = up
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithLogger attaches a logger for status-change and query events.
func WithLogger(l *zap.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// Graph is a fixed-size undirected graph stored as an adjacency matrix.
//
// Every logical edge lives once in the edges arena. Both cells [u][v] and
// [v][u] of the matrix hold the same arena slot, so toggling an edge is
// observed from either endpoint. An empty cell holds noEdge; weight zero is a
// real, zero-cost edge.
//
// mu guards every field below it. Mutations take the write lock; reads and
// Snapshot take the read lock.
type Graph struct {
	mu sync.RWMutex

	n      int                                 // vertex count, fixed
	labels []string                            // index → label
	index  *orderedmap.OrderedMap[string, int] // label → index, in binding order
	cells  []int                               // n*n arena slots or noEdge
	edges  []Edge                              // edge arena

	log *zap.Logger
}

// NewGraph creates a Graph with n unlabeled vertices and no edges.
// Complexity: O(n²) for the adjacency cells.
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadSize
	}

	g := &Graph{
		n:      n,
		labels: make([]string, n),
		index:  orderedmap.New[string, int](),
		cells:  make([]int, n*n),
		log:    zap.NewNop(),
	}
	for i := range g.cells {
		g.cells[i] = noEdge
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return g.n
}

// inRange reports whether i is a valid vertex index.
func (g *Graph) inRange(i int) bool {
	return i >= 0 && i < g.n
}

// cell returns the arena slot stored at (u, v). Indices must be in range.
func (g *Graph) cell(u, v int) int {
	return g.cells[u*g.n+v]
}
