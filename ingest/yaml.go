package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/core"
)

// document is the YAML graph format:
//
//	vertices: [U, V, X]
//	edges:
//	  - {from: U, to: V, weight: 2}
type document struct {
	Vertices []string   `yaml:"vertices"`
	Edges    []edgeSpec `yaml:"edges"`
}

type edgeSpec struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight string `yaml:"weight"`

	line int
}

// UnmarshalYAML records the source line of each edge for error reporting.
func (e *edgeSpec) UnmarshalYAML(node *yaml.Node) error {
	type plain edgeSpec
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*e = edgeSpec(p)
	e.line = node.Line

	return nil
}

// ParseYAML reads a YAML graph document. Vertex indices follow the order of
// the vertices list. Errors are *ParseError values carrying the line of the
// offending vertex or edge, wrapping the same sentinels as Parse.
func ParseYAML(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ingest: decode yaml: %w", err)
	}

	g, err := core.NewGraph(len(doc.Vertices), opts...)
	if err != nil {
		return nil, err
	}
	for i, name := range doc.Vertices {
		if _, dup := g.Lookup(name); dup {
			return nil, &ParseError{Line: i + 1, Token: name, Err: ErrDuplicateLabel}
		}
		if err = g.AddVertexLabel(i, name); err != nil {
			return nil, &ParseError{Line: i + 1, Token: name, Err: err}
		}
	}

	for _, e := range doc.Edges {
		tok := e.From + "-" + e.To
		from, ok1 := g.Lookup(e.From)
		to, ok2 := g.Lookup(e.To)
		if !ok1 || !ok2 {
			return nil, &ParseError{Line: e.line, Token: tok, Err: ErrUnknownNeighbor}
		}
		if from == to {
			return nil, &ParseError{Line: e.line, Token: tok, Err: ErrSelfLoop}
		}
		w, err := strconv.ParseInt(strings.TrimSpace(e.Weight), 10, 64)
		if err != nil || w < 0 || w > core.MaxWeight {
			return nil, &ParseError{Line: e.line, Token: e.Weight, Err: ErrBadWeight}
		}
		if err = g.AddEdge(from, to, w); err != nil {
			return nil, &ParseError{Line: e.line, Token: tok, Err: err}
		}
	}

	return g, nil
}

// LoadFile opens path and parses it as YAML (.yaml, .yml) or the text format
// (.txt or no extension).
func LoadFile(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	var g *core.Graph
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		g, err = ParseYAML(f, opts...)
	case ".txt", "":
		g, err = Parse(f, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("ingest: %s: %w", path, err)
	}

	return g, nil
}
