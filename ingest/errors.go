package ingest

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by ParseError.
var (
	// ErrMalformedEdge indicates an edge token without a "<neighbor>-<weight>" shape.
	ErrMalformedEdge = errors.New("ingest: malformed edge token")

	// ErrBadWeight indicates a weight that is not an integer in [0, core.MaxWeight].
	ErrBadWeight = errors.New("ingest: bad edge weight")

	// ErrUnknownNeighbor indicates an edge to a label that has no line of its own.
	ErrUnknownNeighbor = errors.New("ingest: unknown neighbor")

	// ErrDuplicateLabel indicates a label that starts more than one line.
	ErrDuplicateLabel = errors.New("ingest: duplicate vertex label")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("ingest: self-loop")

	// ErrUnsupportedFormat indicates a file extension LoadFile cannot dispatch.
	ErrUnsupportedFormat = errors.New("ingest: unsupported graph file format")
)

// ParseError reports where a graph document failed to parse.
// Line is 1-based; for YAML documents it is the 1-based edge position.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
