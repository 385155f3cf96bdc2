// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

// Vertex indices of the six-node reference network.
const (
	idxU = iota
	idxV
	idxX
	idxW
	idxY
	idxZ
)

// referenceLabels are the labels of the six-node reference network, in index order.
var referenceLabels = []string{"U", "V", "X", "W", "Y", "Z"}

// wedge is an edge fixture.
type wedge struct {
	u, v int
	w    int64
}

// referenceEdges are the ten edges of the reference network.
var referenceEdges = []wedge{
	{idxU, idxV, 2}, {idxU, idxX, 1}, {idxU, idxW, 5},
	{idxV, idxX, 2}, {idxV, idxW, 3},
	{idxX, idxW, 3}, {idxX, idxY, 1},
	{idxW, idxY, 1}, {idxW, idxZ, 5},
	{idxY, idxZ, 2},
}

// newGraph builds a labeled graph from fixtures, failing the test on error.
func newGraph(t testing.TB, labels []string, edges []wedge) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(len(labels))
	require.NoError(t, err)
	for i, l := range labels {
		require.NoError(t, g.AddVertexLabel(i, l))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	return g
}

// referenceGraph builds the six-node reference network.
func referenceGraph(t testing.TB) *core.Graph {
	t.Helper()

	return newGraph(t, referenceLabels, referenceEdges)
}
