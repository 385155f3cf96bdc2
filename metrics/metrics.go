// Package metrics exposes Prometheus counters for route queries and
// failure simulation.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Query results recorded by RecordQuery.
const (
	ResultFound       = "found"
	ResultUnreachable = "unreachable"
	ResultError       = "error"
)

// Node transitions recorded by RecordTransition.
const (
	ActionDown    = "down"
	ActionRestore = "restore"
)

// Registry holds every lvroute metric on its own Prometheus registry.
type Registry struct {
	registry *prometheus.Registry

	RouteQueriesTotal    *prometheus.CounterVec
	RouteQueryDuration   prometheus.Histogram
	NodeTransitionsTotal *prometheus.CounterVec
	GraphDownNodes       prometheus.Gauge
	GraphVertices        prometheus.Gauge
	GraphEdges           prometheus.Gauge
}

// NewRegistry creates a Registry with all metrics registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)

	r.RouteQueriesTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvroute_route_queries_total",
			Help: "Total number of shortest-path queries",
		},
		[]string{"result"}, // found, unreachable, error
	)
	r.RouteQueryDuration = f.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lvroute_route_query_duration_seconds",
			Help:    "Duration of shortest-path queries in seconds",
			Buckets: []float64{.00001, .0001, .001, .01, .1, 1},
		},
	)
	r.NodeTransitionsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvroute_node_transitions_total",
			Help: "Total number of node down and restore operations",
		},
		[]string{"action"}, // down, restore
	)
	r.GraphDownNodes = f.NewGauge(prometheus.GaugeOpts{
		Name: "lvroute_graph_down_nodes",
		Help: "Number of vertices whose edges are all down",
	})
	r.GraphVertices = f.NewGauge(prometheus.GaugeOpts{
		Name: "lvroute_graph_vertices",
		Help: "Number of vertices in the loaded graph",
	})
	r.GraphEdges = f.NewGauge(prometheus.GaugeOpts{
		Name: "lvroute_graph_edges",
		Help: "Number of edges in the loaded graph",
	})

	return r
}

// GetPrometheusRegistry returns the underlying registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordQuery records one route query.
func (r *Registry) RecordQuery(result string, d time.Duration) {
	r.RouteQueriesTotal.WithLabelValues(result).Inc()
	r.RouteQueryDuration.Observe(d.Seconds())
}

// RecordTransition records a down or restore and the resulting down-node count.
func (r *Registry) RecordTransition(action string, downNodes int) {
	r.NodeTransitionsTotal.WithLabelValues(action).Inc()
	r.GraphDownNodes.Set(float64(downNodes))
}

// SetGraphSize records the loaded graph's dimensions.
func (r *Registry) SetGraphSize(vertices, edges int) {
	r.GraphVertices.Set(float64(vertices))
	r.GraphEdges.Set(float64(edges))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Serve exposes /metrics on addr until ctx is done.
func (r *Registry) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics: listen %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
