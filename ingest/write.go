package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/core"
)

// Write serializes g in the text format, one line per vertex in index order,
// each edge listed from both ends. Edge status is not persisted.
func Write(w io.Writer, g *core.Graph) error {
	labels := g.Labels()
	adj := make([][]string, len(labels))
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], labels[e.To]+"-"+strconv.FormatInt(e.Weight, 10))
		adj[e.To] = append(adj[e.To], labels[e.From]+"-"+strconv.FormatInt(e.Weight, 10))
	}

	bw := bufio.NewWriter(w)
	for i, l := range labels {
		fields := append([]string{l}, adj[i]...)
		if _, err := bw.WriteString(strings.Join(fields, " ") + "\n"); err != nil {
			return fmt.Errorf("ingest: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ingest: write: %w", err)
	}

	return nil
}

// WriteYAML serializes g as a YAML document readable by ParseYAML. Each edge
// appears once, ordered by (From, To).
func WriteYAML(w io.Writer, g *core.Graph) error {
	labels := g.Labels()
	doc := document{Vertices: labels}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, edgeSpec{
			From:   labels[e.From],
			To:     labels[e.To],
			Weight: strconv.FormatInt(e.Weight, 10),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("ingest: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("ingest: encode yaml: %w", err)
	}

	return nil
}

// SaveFile writes g to path, choosing the format from the extension the
// same way LoadFile does.
func SaveFile(path string, g *core.Graph) (err error) {
	write := Write
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		write = WriteYAML
	case ".txt", "":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("ingest: %w", cerr)
		}
	}()

	return write(f, g)
}
