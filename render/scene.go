package render

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// Scene is a laid-out graph ready to draw or export.
type Scene struct {
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Nodes  []SceneNode `json:"nodes"`
	Edges  []SceneEdge `json:"edges"`
}

// SceneNode is a placed vertex. Down is true when every incident edge is down.
type SceneNode struct {
	Index int     `json:"index"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Down  bool    `json:"down"`
}

// SceneEdge is an edge between two placed vertices.
type SceneEdge struct {
	From        int   `json:"from"`
	To          int   `json:"to"`
	Weight      int64 `json:"weight"`
	Up          bool  `json:"up"`
	Highlighted bool  `json:"highlighted"`
}

// NewScene lays out g and marks every edge crossed by hops, in either
// direction, as highlighted.
func NewScene(g *core.Graph, hops []dijkstra.Hop, layout Layout, width, height float64) (*Scene, error) {
	pos, err := layout.Compute(g)
	if err != nil {
		return nil, fmt.Errorf("render: layout: %w", err)
	}

	onRoute := make(map[[2]string]bool, len(hops))
	for _, h := range hops {
		onRoute[[2]string{h.From, h.To}] = true
		onRoute[[2]string{h.To, h.From}] = true
	}
	down := make(map[int]bool)
	for _, v := range g.DownNodes() {
		down[v] = true
	}

	s := &Scene{Width: width, Height: height, Nodes: make([]SceneNode, g.Order())}
	for i := range s.Nodes {
		s.Nodes[i] = SceneNode{Index: i, Label: g.Label(i), X: pos[i].X, Y: pos[i].Y, Down: down[i]}
	}
	for _, e := range g.Edges() {
		s.Edges = append(s.Edges, SceneEdge{
			From:        e.From,
			To:          e.To,
			Weight:      e.Weight,
			Up:          e.Operational(),
			Highlighted: onRoute[[2]string{g.Label(e.From), g.Label(e.To)}],
		})
	}

	return s, nil
}

// ExportJSON encodes the scene.
func (s *Scene) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// WriteJSON writes the scene to path.
func (s *Scene) WriteJSON(path string) error {
	data, err := s.ExportJSON()
	if err != nil {
		return fmt.Errorf("render: encode scene: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("render: write scene: %w", err)
	}

	return nil
}
