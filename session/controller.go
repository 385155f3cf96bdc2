// Package session turns operator commands into Graph calls. Controller is
// transport-agnostic; Prompt drives it from a line-oriented terminal.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/metrics"
	"github.com/katalvlaran/lvroute/render"
)

// ErrUnknownLabel indicates a vertex name that is not in the graph.
var ErrUnknownLabel = errors.New("session: unknown vertex")

// Controller owns one graph for the length of a session.
type Controller struct {
	id       string
	g        *core.Graph
	log      *zap.Logger
	metrics  *metrics.Registry
	renderer render.Renderer
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger; every entry carries the session ID.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics records queries and transitions on r.
func WithMetrics(r *metrics.Registry) Option {
	return func(c *Controller) { c.metrics = r }
}

// WithRenderer draws every found route.
func WithRenderer(r render.Renderer) Option {
	return func(c *Controller) {
		if r != nil {
			c.renderer = r
		}
	}
}

// NewController starts a session over g.
func NewController(g *core.Graph, opts ...Option) *Controller {
	c := &Controller{
		id:       uuid.NewString(),
		g:        g,
		log:      zap.NewNop(),
		renderer: render.Nop{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.String("session_id", c.id))
	if c.metrics != nil {
		c.metrics.SetGraphSize(g.Order(), g.EdgeCount())
		c.metrics.GraphDownNodes.Set(float64(len(g.DownNodes())))
	}
	c.log.Info("session started", zap.Int("vertices", g.Order()), zap.Int("edges", g.EdgeCount()))

	return c
}

// ID returns the session ID.
func (c *Controller) ID() string { return c.id }

// Names returns every vertex label in index order.
func (c *Controller) Names() []string { return c.g.Labels() }

// Resolve maps a vertex name to its index. Surrounding blanks are ignored.
func (c *Controller) Resolve(name string) (int, error) {
	name = strings.TrimSpace(name)
	i, ok := c.g.Lookup(name)
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownLabel, name)
	}

	return i, nil
}

// Route is the outcome of FindRoute. Path is nil when unreachable.
type Route struct {
	Source    string
	Dest      string
	Reachable bool
	Cost      int64
	Path      *dijkstra.Path
}

// FindRoute computes the shortest route from src to dst. An unreachable
// destination is a normal result, not an error. Found routes are handed to
// the renderer; render failures are logged only.
func (c *Controller) FindRoute(src, dst string) (*Route, error) {
	s, err := c.Resolve(src)
	if err != nil {
		return nil, err
	}
	d, err := c.Resolve(dst)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := c.g.ShortestPaths(s)
	if err != nil {
		c.record(metrics.ResultError, start)
		return nil, err
	}
	r := &Route{Source: c.g.Label(s), Dest: c.g.Label(d), Cost: res.Dist[d]}
	if !res.Reachable(d) {
		c.record(metrics.ResultUnreachable, start)
		c.log.Info("route unreachable", zap.String("src", r.Source), zap.String("dst", r.Dest))
		return r, nil
	}
	if r.Path, err = dijkstra.Reconstruct(res, d, c.g); err != nil {
		c.record(metrics.ResultError, start)
		return nil, err
	}
	r.Reachable = true
	c.record(metrics.ResultFound, start)
	c.log.Info("route found",
		zap.String("src", r.Source),
		zap.String("dst", r.Dest),
		zap.Int64("cost", r.Cost),
		zap.Stringer("path", r.Path),
	)

	if err = c.renderer.Render(c.g, r.Path.Hops); err != nil {
		c.log.Warn("render failed", zap.Error(err))
	}

	return r, nil
}

func (c *Controller) record(result string, start time.Time) {
	if c.metrics != nil {
		c.metrics.RecordQuery(result, time.Since(start))
	}
}

// Down takes every edge of the named vertex down.
func (c *Controller) Down(name string) error {
	return c.setStatus(name, false)
}

// Restore brings every edge of the named vertex back up.
func (c *Controller) Restore(name string) error {
	return c.setStatus(name, true)
}

func (c *Controller) setStatus(name string, up bool) error {
	i, err := c.Resolve(name)
	if err != nil {
		return err
	}
	if err = c.g.SetNodeStatus(i, up); err != nil {
		return err
	}

	action := metrics.ActionDown
	if up {
		action = metrics.ActionRestore
	}
	down := c.g.DownNodes()
	if c.metrics != nil {
		c.metrics.RecordTransition(action, len(down))
	}
	c.log.Info("node "+action, zap.String("node", c.g.Label(i)), zap.Int("down_nodes", len(down)))

	return nil
}

// DownNames returns the labels of every down vertex.
func (c *Controller) DownNames() []string {
	var out []string
	for _, i := range c.g.DownNodes() {
		out = append(out, c.g.Label(i))
	}

	return out
}

// Snapshot returns an independent copy of the graph in its current state.
func (c *Controller) Snapshot() *core.Graph {
	return c.g.Clone()
}

// Row is one line of a distance table.
type Row struct {
	Label     string
	Reachable bool
	Dist      int64
	Prev      string // "" for the source and unreachable vertices
	Hops      int    // fewest edges from the source, bfs.Unreached if unreachable
}

// Table returns the distance, predecessor and hop count of every vertex
// from src. All columns come from one snapshot of the graph.
func (c *Controller) Table(src string) ([]Row, error) {
	s, err := c.Resolve(src)
	if err != nil {
		return nil, err
	}
	m, err := c.g.Snapshot()
	if err != nil {
		return nil, err
	}
	res, err := dijkstra.Dijkstra(m, dijkstra.Source(s))
	if err != nil {
		return nil, err
	}
	hops, err := bfs.BFS(m, s)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, res.Order())
	for v := range rows {
		rows[v] = Row{
			Label:     c.g.Label(v),
			Reachable: res.Reachable(v),
			Dist:      res.Dist[v],
			Hops:      hops.Depth[v],
		}
		if p := res.Prev[v]; p != dijkstra.NoPredecessor {
			rows[v].Prev = c.g.Label(p)
		}
	}

	return rows, nil
}
