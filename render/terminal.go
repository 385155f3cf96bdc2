package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// Renderer draws g with the route given by hops highlighted.
type Renderer interface {
	Render(g *core.Graph, hops []dijkstra.Hop) error
}

// Nop discards every render.
type Nop struct{}

// Render implements Renderer.
func (Nop) Render(*core.Graph, []dijkstra.Hop) error { return nil }

// cell kinds, in increasing draw priority.
const (
	kindEmpty = iota
	kindDown
	kindUp
	kindRoute
	kindNodeDown
	kindNode
)

var (
	downStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")).Faint(true)
	upStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	routeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	nodeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF")).Bold(true)
	nodeDownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF")).Strikethrough(true)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FFFF00")).
			Padding(0, 1)
)

var edgeRunes = map[int]rune{kindDown: ':', kindUp: '.', kindRoute: '*'}

type cell struct {
	r    rune
	kind int
}

// canvas is a character grid scaled from scene coordinates.
type canvas struct {
	cols, rows int
	cells      [][]cell
}

func rasterize(s *Scene, cols, rows int) *canvas {
	c := &canvas{cols: cols, rows: rows, cells: make([][]cell, rows)}
	for i := range c.cells {
		c.cells[i] = make([]cell, cols)
		for j := range c.cells[i] {
			c.cells[i][j] = cell{r: ' '}
		}
	}

	at := func(n SceneNode) (int, int) {
		x, y := 0.0, 0.0
		if s.Width > 0 {
			x = n.X / s.Width * float64(cols-1)
		}
		if s.Height > 0 {
			y = n.Y / s.Height * float64(rows-1)
		}
		return clamp(int(math.Round(x)), cols-1), clamp(int(math.Round(y)), rows-1)
	}

	for _, e := range s.Edges {
		kind := kindDown
		switch {
		case e.Highlighted:
			kind = kindRoute
		case e.Up:
			kind = kindUp
		}
		x0, y0 := at(s.Nodes[e.From])
		x1, y1 := at(s.Nodes[e.To])
		c.line(x0, y0, x1, y1, edgeRunes[kind], kind)
	}

	for _, n := range s.Nodes {
		kind := kindNode
		if n.Down {
			kind = kindNodeDown
		}
		x, y := at(n)
		label := []rune(n.Label)
		if x+len(label) > cols {
			x = max(cols-len(label), 0)
		}
		for i, r := range label {
			c.set(x+i, y, r, kind)
		}
	}

	return c
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

// set writes r unless the cell already holds something of higher priority.
func (c *canvas) set(x, y int, r rune, kind int) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	if c.cells[y][x].kind > kind {
		return
	}
	c.cells[y][x] = cell{r: r, kind: kind}
}

// line draws a Bresenham line between two points.
func (c *canvas) line(x0, y0, x1, y1 int, r rune, kind int) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0, r, kind)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Rasterize returns the scene as plain text lines of at most cols runes,
// trailing blanks removed.
func Rasterize(s *Scene, cols, rows int) []string {
	c := rasterize(s, cols, rows)
	out := make([]string, rows)
	for y, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			b.WriteRune(cl.r)
		}
		out[y] = strings.TrimRight(b.String(), " ")
	}

	return out
}

// Draw returns the scene as styled terminal text.
func Draw(s *Scene, cols, rows int) string {
	c := rasterize(s, cols, rows)
	lines := make([]string, rows)
	for y, row := range c.cells {
		var b strings.Builder
		for x := 0; x < len(row); {
			end := x
			var run strings.Builder
			for end < len(row) && row[end].kind == row[x].kind {
				run.WriteRune(row[end].r)
				end++
			}
			b.WriteString(styleFor(row[x].kind).Render(run.String()))
			x = end
		}
		lines[y] = b.String()
	}

	return strings.Join(lines, "\n")
}

func styleFor(kind int) lipgloss.Style {
	switch kind {
	case kindDown:
		return downStyle
	case kindUp:
		return upStyle
	case kindRoute:
		return routeStyle
	case kindNode:
		return nodeStyle
	case kindNodeDown:
		return nodeDownStyle
	default:
		return lipgloss.NewStyle()
	}
}

// TerminalRenderer draws the graph as a boxed character picture.
type TerminalRenderer struct {
	w          io.Writer
	layout     Layout
	cols, rows int
}

// NewTerminalRenderer draws onto w using a cols×rows canvas.
func NewTerminalRenderer(w io.Writer, layout Layout, cols, rows int) *TerminalRenderer {
	return &TerminalRenderer{w: w, layout: layout, cols: cols, rows: rows}
}

// Render implements Renderer.
func (tr *TerminalRenderer) Render(g *core.Graph, hops []dijkstra.Hop) error {
	s, err := NewScene(g, hops, tr.layout, float64(tr.cols), float64(tr.rows))
	if err != nil {
		return err
	}
	title := "graph"
	if len(hops) > 0 {
		parts := []string{hops[0].From}
		for _, h := range hops {
			parts = append(parts, h.To)
		}
		title = "route " + strings.Join(parts, "->")
	}
	_, err = fmt.Fprintln(tr.w, boxStyle.Render(title+"\n"+Draw(s, tr.cols, tr.rows)))

	return err
}

// JSONRenderer writes each render to a JSON scene file.
type JSONRenderer struct {
	path          string
	layout        Layout
	width, height float64
}

// NewJSONRenderer writes scenes to path.
func NewJSONRenderer(path string, layout Layout, width, height float64) *JSONRenderer {
	return &JSONRenderer{path: path, layout: layout, width: width, height: height}
}

// Render implements Renderer.
func (jr *JSONRenderer) Render(g *core.Graph, hops []dijkstra.Hop) error {
	s, err := NewScene(g, hops, jr.layout, jr.width, jr.height)
	if err != nil {
		return err
	}

	return s.WriteJSON(jr.path)
}

// Multi fans a render out to several renderers and joins their errors.
type Multi []Renderer

// Render implements Renderer.
func (m Multi) Render(g *core.Graph, hops []dijkstra.Hop) error {
	var errs []error
	for _, r := range m {
		if err := r.Render(g, hops); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
