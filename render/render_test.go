package render_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/render"
)

// triangle builds A—B(1), B—C(1), A—C(5).
func triangle(t *testing.T) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(3)
	require.NoError(t, err)
	for i, l := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertexLabel(i, l))
	}
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(0, 2, 5))

	return g
}

var cfg = render.LayoutConfig{Width: 60, Height: 20, Padding: 2, Seed: 7}

// ---- Layouts ----

func TestLayouts_InBounds(t *testing.T) {
	g := triangle(t)
	for _, name := range []string{"circular", "force"} {
		l, err := render.NewLayout(name, cfg)
		require.NoError(t, err)

		pos, err := l.Compute(g)
		require.NoError(t, err)
		require.Len(t, pos, 3, name)
		for i, p := range pos {
			assert.True(t, p.X >= 0 && p.X <= cfg.Width, "%s: vertex %d x=%f", name, i, p.X)
			assert.True(t, p.Y >= 0 && p.Y <= cfg.Height, "%s: vertex %d y=%f", name, i, p.Y)
		}
	}

	_, err := render.NewLayout("spiral", cfg)
	assert.ErrorIs(t, err, render.ErrUnknownLayout)
}

func TestForceLayout_Deterministic(t *testing.T) {
	g := triangle(t)

	a, err := render.NewForceLayout(cfg).Compute(g)
	require.NoError(t, err)
	b, err := render.NewForceLayout(cfg).Compute(g)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLayouts_SmallGraphs(t *testing.T) {
	for n := 0; n <= 1; n++ {
		g, err := core.NewGraph(n)
		require.NoError(t, err)

		for _, l := range []render.Layout{render.NewCircularLayout(cfg), render.NewForceLayout(cfg)} {
			pos, err := l.Compute(g)
			require.NoError(t, err)
			require.Len(t, pos, n)
			if n == 1 {
				assert.Equal(t, render.Position{X: 30, Y: 10}, pos[0])
			}
		}
	}
}

// ---- Scene ----

func TestNewScene_HighlightAndDown(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.SetEdgeStatus(0, 2, false))

	// Hop direction does not matter.
	hops := []dijkstra.Hop{{From: "B", To: "A"}}
	s, err := render.NewScene(g, hops, render.NewCircularLayout(cfg), cfg.Width, cfg.Height)
	require.NoError(t, err)

	require.Len(t, s.Edges, 3)
	assert.True(t, s.Edges[0].Highlighted, "A—B is on the route")
	assert.False(t, s.Edges[1].Highlighted)
	assert.False(t, s.Edges[1].Up, "A—C is down")
	assert.Equal(t, "C", s.Nodes[2].Label)
	assert.False(t, s.Nodes[2].Down, "C still has B—C up")

	require.NoError(t, g.SetNodeStatus(2, false))
	s, err = render.NewScene(g, nil, render.NewCircularLayout(cfg), cfg.Width, cfg.Height)
	require.NoError(t, err)
	assert.True(t, s.Nodes[2].Down)
}

func TestScene_JSON(t *testing.T) {
	g := triangle(t)
	s, err := render.NewScene(g, []dijkstra.Hop{{From: "A", To: "B"}}, render.NewCircularLayout(cfg), cfg.Width, cfg.Height)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, render.NewJSONRenderer(path, render.NewCircularLayout(cfg), cfg.Width, cfg.Height).
		Render(g, []dijkstra.Hop{{From: "A", To: "B"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got render.Scene
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *s, got)
	assert.Contains(t, string(data), `"highlighted": true`)
}

// ---- Terminal ----

func TestRasterize(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.SetEdgeStatus(0, 2, false))
	s, err := render.NewScene(g, []dijkstra.Hop{{From: "A", To: "B"}}, render.NewCircularLayout(cfg), cfg.Width, cfg.Height)
	require.NoError(t, err)

	lines := render.Rasterize(s, 60, 20)
	require.Len(t, lines, 20)
	pic := strings.Join(lines, "\n")
	for _, want := range []string{"A", "B", "C", "*", ".", ":"} {
		assert.Contains(t, pic, want)
	}
	for _, l := range lines {
		assert.LessOrEqual(t, len([]rune(l)), 60)
	}
}

func TestTerminalRenderer(t *testing.T) {
	g := triangle(t)
	var buf bytes.Buffer
	tr := render.NewTerminalRenderer(&buf, render.NewCircularLayout(render.LayoutConfig{Width: 40, Height: 12, Padding: 1}), 40, 12)

	require.NoError(t, tr.Render(g, []dijkstra.Hop{{From: "A", To: "B"}, {From: "B", To: "C"}}))
	assert.Contains(t, buf.String(), "route A->B->C")

	buf.Reset()
	require.NoError(t, tr.Render(g, nil))
	assert.Contains(t, buf.String(), "graph")
}

type failing struct{}

var errBoom = errors.New("boom")

func (failing) Render(*core.Graph, []dijkstra.Hop) error { return errBoom }

func TestMulti(t *testing.T) {
	g := triangle(t)
	require.NoError(t, render.Multi{render.Nop{}}.Render(g, nil))
	assert.ErrorIs(t, render.Multi{render.Nop{}, failing{}}.Render(g, nil), errBoom)
}
