// Package dijkstra defines the result type, configuration options and
// sentinel errors for the single-source shortest-path engine.
//
// Options:
//
//	– Source:      index of the starting vertex (required, must be in [0, n)).
//	– MaxDistance: optional cap; vertices farther than this stay unreachable.
//
// Errors (sentinel):
//
//	– ErrNilMatrix        if the matrix argument is nil.
//	– ErrNoSource         if Source was never set.
//	– ErrSourceOutOfRange if Source is outside [0, n).
//	– ErrNegativeWeight   if any cell holds a negative cost.
//	– ErrBadMaxDistance   if MaxDistance < 0 (raised by WithMaxDistance).
//	– ErrDistanceOverflow if a path length would reach Infinity.
//	– ErrUnreachable      from Reconstruct when the destination has no path.
//	– ErrDestOutOfRange   from Reconstruct when the destination index is invalid.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/lvroute/matrix"
)

// Infinity is the distance reported for unreachable vertices.
const Infinity = matrix.Infinity

// NoPredecessor marks the source and every unreachable vertex in Result.Prev.
const NoPredecessor = -1

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilMatrix indicates that a nil Matrix was passed to Dijkstra.
	ErrNilMatrix = errors.New("dijkstra: matrix is nil")

	// ErrNoSource indicates that the Source option was not provided.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrSourceOutOfRange indicates that the source index is not a vertex.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates that a negative edge cost was found.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrDistanceOverflow indicates a tentative distance that would reach
	// Infinity and be mistaken for "no path".
	ErrDistanceOverflow = errors.New("dijkstra: path length overflows")

	// ErrUnreachable indicates that no path reaches the requested destination.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")

	// ErrDestOutOfRange indicates that the destination index is not a vertex.
	ErrDestOutOfRange = errors.New("dijkstra: destination vertex out of range")

	// ErrNilResult indicates that Reconstruct was called without a Result.
	ErrNilResult = errors.New("dijkstra: result is nil")
)

// Matrix is the read-only view Dijkstra needs: a square cost matrix where
// Infinity means "no usable edge". *matrix.Dense satisfies it.
type Matrix interface {
	// Order returns the number of vertices.
	Order() int
	// At returns the cost of the (u, v) cell.
	At(u, v int) (int64, error)
}

// Labeler maps a vertex index to its human-readable label.
type Labeler interface {
	Label(i int) string
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex index; -1 until set.
// MaxDistance – vertices whose distance would exceed this stay unreachable.
//
//	Must be ≥ 0. Default is Infinity (no cap).
type Options struct {
	Source      int   // index of the source vertex
	MaxDistance int64 // maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex index. Must be provided.
func Source(i int) Option {
	return func(o *Options) {
		o.Source = i
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values panic with ErrBadMaxDistance, as invalid configuration
// should surface at construction time.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no source and no distance cap.
func DefaultOptions() Options {
	return Options{
		Source:      NoPredecessor,
		MaxDistance: Infinity,
	}
}

// Result holds the outcome of one single-source run.
//
// Dist[v] is the shortest distance from Source to v, or Infinity.
// Prev[v] is v's predecessor on that path, or NoPredecessor for the source
// and for unreachable vertices.
type Result struct {
	Source int
	Dist   []int64
	Prev   []int
}

// Order returns the number of vertices the result covers.
func (r *Result) Order() int {
	return len(r.Dist)
}

// Reachable reports whether v has a finite distance from the source.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Infinity
}

// Hop is one edge of a reconstructed path, expressed in labels.
type Hop struct {
	From string
	To   string
}

// Path is an ordered route from a source to a destination.
// Vertices and Labels run source..dest inclusive; Hops has one fewer entry.
type Path struct {
	Vertices []int
	Labels   []string
	Hops     []Hop
	Cost     int64
}
