// Package ingest loads routing graphs from files.
//
// The text format has one line per vertex:
//
//	<label> <neighbor>-<weight> <neighbor>-<weight> ...
//
// Every neighbor must have a line of its own. Edges are usually written from
// both ends; the later declaration replaces the earlier one. Blank lines are
// ignored.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvroute/core"
)

// Parse reads a text graph in three passes over r, in this order:
//
//  1. count vertex lines and allocate the Graph;
//  2. bind each line's first token to the next index;
//  3. add the edges.
//
// The first error stops parsing and is returned as a *ParseError.
func Parse(r io.ReadSeeker, opts ...core.GraphOption) (*core.Graph, error) {
	// Pass 1: count.
	n := 0
	if err := scanLines(r, func(int, []string) error { n++; return nil }); err != nil {
		return nil, err
	}
	g, err := core.NewGraph(n, opts...)
	if err != nil {
		return nil, err
	}

	// Pass 2: labels.
	next := 0
	err = scanLines(r, func(line int, fields []string) error {
		if _, dup := g.Lookup(fields[0]); dup {
			return &ParseError{Line: line, Token: fields[0], Err: ErrDuplicateLabel}
		}
		if err := g.AddVertexLabel(next, fields[0]); err != nil {
			return &ParseError{Line: line, Token: fields[0], Err: err}
		}
		next++
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Pass 3: edges.
	err = scanLines(r, func(line int, fields []string) error {
		from, _ := g.Lookup(fields[0])
		for _, tok := range fields[1:] {
			name, w, err := splitEdge(tok)
			if err != nil {
				return &ParseError{Line: line, Token: tok, Err: err}
			}
			to, ok := g.Lookup(name)
			if !ok {
				return &ParseError{Line: line, Token: tok, Err: ErrUnknownNeighbor}
			}
			if to == from {
				return &ParseError{Line: line, Token: tok, Err: ErrSelfLoop}
			}
			if err = g.AddEdge(from, to, w); err != nil {
				return &ParseError{Line: line, Token: tok, Err: err}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// scanLines rewinds r and calls fn with the 1-based line number and the
// space-separated fields of every non-blank line.
func scanLines(r io.ReadSeeker, fn func(line int, fields []string) error) error {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("ingest: rewind: %w", err)
	}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if err := fn(line, fields); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("ingest: read: %w", err)
	}

	return nil
}

// splitEdge splits "<neighbor>-<weight>" on the last dash.
func splitEdge(tok string) (string, int64, error) {
	i := strings.LastIndexByte(tok, '-')
	if i <= 0 || i == len(tok)-1 {
		return "", 0, ErrMalformedEdge
	}
	w, err := strconv.ParseInt(tok[i+1:], 10, 64)
	if err != nil || w < 0 || w > core.MaxWeight {
		return "", 0, ErrBadWeight
	}

	return tok[:i], w, nil
}
