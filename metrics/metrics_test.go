package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	r.RecordQuery(ResultFound, time.Millisecond)
	r.RecordTransition(ActionDown, 1)
	r.SetGraphSize(6, 10)

	families, err := r.GetPrometheusRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, mf := range families {
		names[mf.GetName()] = true
		assert.True(t, strings.HasPrefix(mf.GetName(), "lvroute_"), mf.GetName())
	}
	for _, want := range []string{
		"lvroute_route_queries_total",
		"lvroute_route_query_duration_seconds",
		"lvroute_node_transitions_total",
		"lvroute_graph_down_nodes",
		"lvroute_graph_vertices",
		"lvroute_graph_edges",
	} {
		assert.True(t, names[want], "missing %s", want)
	}
}

func TestRecordQuery(t *testing.T) {
	r := NewRegistry()
	r.RecordQuery(ResultFound, 2*time.Millisecond)
	r.RecordQuery(ResultFound, 3*time.Millisecond)
	r.RecordQuery(ResultUnreachable, time.Millisecond)

	var metric dto.Metric
	c, err := r.RouteQueriesTotal.GetMetricWithLabelValues(ResultFound)
	require.NoError(t, err)
	require.NoError(t, c.Write(&metric))
	assert.Equal(t, 2.0, metric.Counter.GetValue())

	metric.Reset()
	require.NoError(t, r.RouteQueryDuration.Write(&metric))
	assert.Equal(t, uint64(3), metric.Histogram.GetSampleCount())
}

func TestRecordTransition(t *testing.T) {
	r := NewRegistry()
	r.RecordTransition(ActionDown, 1)
	r.RecordTransition(ActionDown, 2)
	r.RecordTransition(ActionRestore, 1)

	var metric dto.Metric
	c, err := r.NodeTransitionsTotal.GetMetricWithLabelValues(ActionDown)
	require.NoError(t, err)
	require.NoError(t, c.Write(&metric))
	assert.Equal(t, 2.0, metric.Counter.GetValue())

	metric.Reset()
	require.NoError(t, r.GraphDownNodes.Write(&metric))
	assert.Equal(t, 1.0, metric.Gauge.GetValue())
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.SetGraphSize(6, 10)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "lvroute_graph_vertices 6")
	assert.Contains(t, string(body), "lvroute_graph_edges 10")
}

func TestServe_StopsOnCancel(t *testing.T) {
	r := NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- r.Serve(ctx, "127.0.0.1:0") }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
