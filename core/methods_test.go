// SPDX-License-Identifier: MIT
// Package core_test verifies edge lifecycle, failure simulation and the
// shortest-path queries on core.Graph.

package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

const inf = core.Infinity

// ---- AddEdge ----

func TestAddEdge_Validation(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(0, 2, 1), core.ErrOutOfRange)
	assert.ErrorIs(t, g.AddEdge(-1, 1, 1), core.ErrOutOfRange)
	assert.ErrorIs(t, g.AddEdge(1, 1, 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(0, 1, -3), core.ErrNegativeWeight)
	assert.ErrorIs(t, g.AddEdge(0, 1, core.Infinity), core.ErrWeightTooLarge)
	assert.ErrorIs(t, g.AddEdge(0, 1, core.MaxWeight+1), core.ErrWeightTooLarge)
	assert.Equal(t, 0, g.EdgeCount(), "rejected edges leave no trace")
}

func TestAddEdge_MaxWeightStaysReachable(t *testing.T) {
	mw := core.MaxWeight
	g := newGraph(t, []string{"A", "B", "C", "D"}, []wedge{{0, 1, mw}, {1, 2, mw}, {2, 3, mw}})

	res, err := g.ShortestPaths(0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, mw, 2 * mw, 3 * mw}, res.Dist)
	assert.True(t, res.Reachable(3))
}

func TestAddEdge_Symmetric(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, []wedge{{2, 0, 4}})

	ab, ok1 := g.Edge(0, 2)
	ba, ok2 := g.Edge(2, 0)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, ab, ba)
	assert.Equal(t, 0, ab.From, "endpoints are normalized")
	assert.Equal(t, 2, ab.To)

	require.NoError(t, g.SetEdgeStatus(2, 0, false))
	w1, _ := g.EffectiveWeight(0, 2)
	w2, _ := g.EffectiveWeight(2, 0)
	assert.Equal(t, inf, w1)
	assert.Equal(t, w1, w2, "one edge, seen from both ends")

	_, ok := g.EffectiveWeight(0, 1)
	assert.False(t, ok)
}

func TestAddEdge_LastWriteWins(t *testing.T) {
	g := newGraph(t, []string{"A", "B"}, []wedge{{0, 1, 4}})
	require.NoError(t, g.SetEdgeStatus(0, 1, false))

	require.NoError(t, g.AddEdge(1, 0, 9))
	assert.Equal(t, 1, g.EdgeCount(), "no multi-edges")
	e, ok := g.Edge(0, 1)
	require.True(t, ok)
	assert.Equal(t, int64(9), e.Weight)
	assert.True(t, e.Operational(), "replacement starts up")
}

func TestAddEdge_ZeroWeightIsAnEdge(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, []wedge{{0, 1, 0}, {1, 2, 3}})

	p, err := g.Route(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "A->B->C", p.String())
	assert.Equal(t, int64(3), p.Cost)
}

// ---- Queries ----

func TestEdges_Sorted(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C", "D"}, []wedge{{3, 2, 1}, {1, 0, 1}, {2, 0, 1}, {0, 3, 1}})

	var got [][2]int
	for _, e := range g.Edges() {
		got = append(got, [2]int{e.From, e.To})
	}
	want := [][2]int{{0, 1}, {0, 2}, {0, 3}, {2, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Edges() order mismatch (-want +got):\n%s", diff)
	}
}

func TestNeighbors(t *testing.T) {
	g := referenceGraph(t)

	nb, err := g.Neighbors(idxW)
	require.NoError(t, err)
	assert.Equal(t, []int{idxU, idxV, idxX, idxY, idxZ}, nb)

	_, err = g.Neighbors(6)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestSetEdgeStatus_Errors(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, []wedge{{0, 1, 1}})

	assert.ErrorIs(t, g.SetEdgeStatus(0, 2, false), core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.SetEdgeStatus(0, 5, false), core.ErrOutOfRange)
}

// ---- Failure simulation ----

func TestSetNodeStatus_OnlyIncidentEdges(t *testing.T) {
	g := referenceGraph(t)
	require.NoError(t, g.SetNodeStatus(idxX, false))

	for _, e := range g.Edges() {
		incident := e.From == idxX || e.To == idxX
		assert.Equal(t, !incident, e.Operational(), "edge %d—%d", e.From, e.To)
	}
	assert.Equal(t, []int{idxX}, g.DownNodes())

	// Idempotent.
	require.NoError(t, g.SetNodeStatus(idxX, false))
	assert.Equal(t, []int{idxX}, g.DownNodes())

	require.NoError(t, g.SetNodeStatus(idxX, true))
	assert.Empty(t, g.DownNodes())

	assert.ErrorIs(t, g.SetNodeStatus(6, false), core.ErrOutOfRange)
}

func TestDownNodes_IsolatedVertexIsNotDown(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, []wedge{{0, 1, 1}})
	assert.Empty(t, g.DownNodes())

	require.NoError(t, g.SetNodeStatus(2, false))
	assert.Empty(t, g.DownNodes(), "C has no edges to take down")

	// Downing A downs A—B, which is B's only edge too.
	require.NoError(t, g.SetNodeStatus(0, false))
	assert.Equal(t, []int{0, 1}, g.DownNodes())
}

// ---- Shortest paths ----

func TestShortestPaths_Reference(t *testing.T) {
	g := referenceGraph(t)

	res, err := g.ShortestPaths(idxU)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 1, 3, 2, 4}, res.Dist)
	assert.Equal(t, []int{dijkstra.NoPredecessor, idxU, idxU, idxY, idxX, idxY}, res.Prev)

	p, err := g.Route(idxU, idxZ)
	require.NoError(t, err)
	assert.Equal(t, "U->X->Y->Z", p.String())
	assert.Equal(t, int64(4), p.Cost)
	assert.Equal(t, []dijkstra.Hop{{From: "U", To: "X"}, {From: "X", To: "Y"}, {From: "Y", To: "Z"}}, p.Hops)
}

func TestShortestPaths_DownW(t *testing.T) {
	g := referenceGraph(t)
	require.NoError(t, g.SetNodeStatus(idxW, false))

	res, err := g.ShortestPaths(idxU)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 1, inf, 2, 4}, res.Dist)
	assert.False(t, res.Reachable(idxW))
	assert.Equal(t, dijkstra.NoPredecessor, res.Prev[idxW])

	_, err = g.Route(idxU, idxW)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	// A down node still reaches itself.
	p, err := g.Route(idxW, idxW)
	require.NoError(t, err)
	assert.Equal(t, "W", p.String())
	assert.Equal(t, int64(0), p.Cost)
	assert.Empty(t, p.Hops)
}

func TestShortestPaths_DownCutVertex(t *testing.T) {
	// L hangs off W only, so every route to L crosses W.
	const idxL = idxZ + 1
	labels := append(append([]string{}, referenceLabels...), "L")
	edges := append(append([]wedge{}, referenceEdges...), wedge{idxW, idxL, 4})
	g := newGraph(t, labels, edges)

	before, err := g.ShortestPaths(idxU)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 1, 3, 2, 4, 7}, before.Dist)

	require.NoError(t, g.SetNodeStatus(idxW, false))
	after, err := g.ShortestPaths(idxU)
	require.NoError(t, err)
	assert.False(t, after.Reachable(idxW))
	assert.False(t, after.Reachable(idxL), "L depends on W")
	for _, v := range []int{idxU, idxV, idxX, idxY, idxZ} {
		assert.Equal(t, before.Dist[v], after.Dist[v], "vertex %s keeps its distance", labels[v])
	}
	_, err = g.Route(idxU, idxL)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	require.NoError(t, g.SetNodeStatus(idxW, true))
	restored, err := g.ShortestPaths(idxU)
	require.NoError(t, err)
	assert.Equal(t, before.Dist, restored.Dist)
}

func TestShortestPaths_DownX(t *testing.T) {
	g := referenceGraph(t)
	require.NoError(t, g.SetNodeStatus(idxX, false))

	res, err := g.ShortestPaths(idxU)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, inf, 5, 6, 8}, res.Dist)
	assert.Equal(t, idxU, res.Prev[idxW], "U—W and U—V—W tie at 5; first found wins")

	p, err := g.Route(idxU, idxZ)
	require.NoError(t, err)
	assert.Equal(t, "U->W->Y->Z", p.String())
	assert.Equal(t, int64(8), p.Cost)
}

func TestShortestPaths_RestoreIsInverse(t *testing.T) {
	g := referenceGraph(t)
	before, err := g.ShortestPaths(idxU)
	require.NoError(t, err)

	for n := range referenceLabels {
		require.NoError(t, g.SetNodeStatus(n, false))
		require.NoError(t, g.SetNodeStatus(n, true))
	}

	after, err := g.ShortestPaths(idxU)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestShortestPaths_Errors(t *testing.T) {
	g := referenceGraph(t)

	_, err := g.ShortestPaths(-1)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	_, err = g.Route(idxU, 6)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	_, err = g.Route(6, idxU)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestSnapshot(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, []wedge{{0, 1, 2}, {1, 2, 3}})
	require.NoError(t, g.SetEdgeStatus(1, 2, false))

	m, err := g.Snapshot()
	require.NoError(t, err)
	require.NoError(t, m.CheckSymmetric())

	w, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), w)
	w, _ = m.At(2, 1)
	assert.Equal(t, inf, w, "down edges snapshot as infinity")
	w, _ = m.At(0, 2)
	assert.Equal(t, inf, w, "absent pairs snapshot as infinity")
	w, _ = m.At(1, 1)
	assert.Equal(t, int64(0), w)

	// The snapshot is a copy.
	require.NoError(t, g.SetEdgeStatus(0, 1, false))
	w, _ = m.At(0, 1)
	assert.Equal(t, int64(2), w)
}

// ---- Clone ----

func TestClone_Independent(t *testing.T) {
	g := referenceGraph(t)
	c := g.Clone()

	require.NoError(t, c.SetNodeStatus(idxX, false))
	assert.Empty(t, g.DownNodes())
	assert.Equal(t, []int{idxX}, c.DownNodes())
	assert.Equal(t, g.Labels(), c.Labels())
	assert.Equal(t, g.Names(), c.Names())

	i, ok := c.Lookup("Z")
	require.True(t, ok)
	assert.Equal(t, idxZ, i)
}
