// Package render draws a routing graph with an optional highlighted route.
//
// Rendering never feeds back into routing: callers log render errors and
// carry on.
package render

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvroute/core"
)

// ErrUnknownLayout indicates a layout name other than "circular" or "force".
var ErrUnknownLayout = errors.New("render: unknown layout")

// Position is a 2D coordinate on the canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutConfig configures layout parameters.
type LayoutConfig struct {
	Width      float64 // canvas width
	Height     float64 // canvas height
	Iterations int     // force layout iterations
	Padding    float64 // distance kept from the canvas border
	Seed       int64   // force layout starting positions
}

// Layout places every vertex of g. The result is indexed by vertex index.
type Layout interface {
	Compute(g *core.Graph) ([]Position, error)
}

// NewLayout returns the layout called name.
func NewLayout(name string, cfg LayoutConfig) (Layout, error) {
	switch name {
	case "circular", "":
		return NewCircularLayout(cfg), nil
	case "force":
		return NewForceLayout(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}

// CircularLayout places vertices on a circle in index order.
type CircularLayout struct {
	cfg LayoutConfig
}

// NewCircularLayout creates a circular layout.
func NewCircularLayout(cfg LayoutConfig) *CircularLayout {
	return &CircularLayout{cfg: cfg}
}

// Compute arranges the vertices clockwise starting at three o'clock.
func (cl *CircularLayout) Compute(g *core.Graph) ([]Position, error) {
	n := g.Order()
	pos := make([]Position, n)
	if n == 0 {
		return pos, nil
	}

	cx, cy := cl.cfg.Width/2, cl.cfg.Height/2
	if n == 1 {
		pos[0] = Position{X: cx, Y: cy}
		return pos, nil
	}
	rx := math.Max(cx-cl.cfg.Padding, 0)
	ry := math.Max(cy-cl.cfg.Padding, 0)
	step := 2 * math.Pi / float64(n)
	for i := range pos {
		a := float64(i) * step
		pos[i] = Position{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}

	return pos, nil
}

// ForceLayout is a Fruchterman-Reingold style layout. It is deterministic for
// a given Seed.
type ForceLayout struct {
	cfg LayoutConfig
}

// NewForceLayout creates a force layout; zero Iterations defaults to 50.
func NewForceLayout(cfg LayoutConfig) *ForceLayout {
	if cfg.Iterations == 0 {
		cfg.Iterations = 50
	}
	return &ForceLayout{cfg: cfg}
}

// Compute runs the simulation. Every edge attracts, up or down, so a
// failure does not move the picture.
func (fl *ForceLayout) Compute(g *core.Graph) ([]Position, error) {
	n := g.Order()
	pos := make([]Position, n)
	switch n {
	case 0:
		return pos, nil
	case 1:
		pos[0] = Position{X: fl.cfg.Width / 2, Y: fl.cfg.Height / 2}
		return pos, nil
	}

	rng := rand.New(rand.NewSource(fl.cfg.Seed))
	for i := range pos {
		pos[i] = Position{X: rng.Float64() * fl.cfg.Width, Y: rng.Float64() * fl.cfg.Height}
	}
	edges := g.Edges()

	k := math.Sqrt(fl.cfg.Width * fl.cfg.Height / float64(n))
	temperature := fl.cfg.Width / 10
	force := make([]Position, n)
	for iter := 0; iter < fl.cfg.Iterations; iter++ {
		for i := range force {
			force[i] = Position{}
		}

		// Repulsion between every pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx, dy := pos[i].X-pos[j].X, pos[i].Y-pos[j].Y
				d := math.Max(math.Hypot(dx, dy), 0.01)
				f := k * k / d
				force[i].X += dx / d * f
				force[i].Y += dy / d * f
				force[j].X -= dx / d * f
				force[j].Y -= dy / d * f
			}
		}

		// Attraction along edges.
		for _, e := range edges {
			dx, dy := pos[e.From].X-pos[e.To].X, pos[e.From].Y-pos[e.To].Y
			d := math.Hypot(dx, dy)
			if d < 0.01 {
				continue
			}
			f := d * d / k
			force[e.From].X -= dx / d * f
			force[e.From].Y -= dy / d * f
			force[e.To].X += dx / d * f
			force[e.To].Y += dy / d * f
		}

		cool := 1 - float64(iter)/float64(fl.cfg.Iterations)
		for i := range pos {
			f := math.Hypot(force[i].X, force[i].Y)
			if f == 0 {
				continue
			}
			step := math.Min(f, temperature) * cool
			pos[i].X += force[i].X / f * step
			pos[i].Y += force[i].Y / f * step
		}
		temperature *= 0.95
	}

	return normalize(pos, fl.cfg.Width, fl.cfg.Height, fl.cfg.Padding), nil
}

// normalize scales positions into the padded canvas.
func normalize(pos []Position, width, height, padding float64) []Position {
	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for _, p := range pos {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX < 0.01 {
		rangeX = 1
	}
	if rangeY < 0.01 {
		rangeY = 1
	}

	tw, th := width-2*padding, height-2*padding
	out := make([]Position, len(pos))
	for i, p := range pos {
		out[i] = Position{
			X: padding + (p.X-minX)/rangeX*tw,
			Y: padding + (p.Y-minY)/rangeY*th,
		}
	}

	return out
}
