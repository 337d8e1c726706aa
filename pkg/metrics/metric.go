package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the collectors of the routing service.
type Registry struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	RouteQueriesTotal  *prometheus.CounterVec
	RouteQueryDuration prometheus.Histogram
	RoutePathNodes     prometheus.Histogram

	GraphBuildsTotal   *prometheus.CounterVec
	GraphBuildDuration prometheus.Histogram
	GraphNodes         *prometheus.GaugeVec
	GraphEdges         *prometheus.GaugeVec
	GraphCacheTotal    *prometheus.CounterVec

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initHTTPMetrics()
	r.initRouteMetrics()
	r.initGraphMetrics()
	return r
}

func (r *Registry) initHTTPMetrics() {
	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "levelup_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "levelup_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	r.HTTPRequestsInFlight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "levelup_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)
}

func (r *Registry) initRouteMetrics() {
	r.RouteQueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "levelup_route_queries_total",
			Help: "Route queries by outcome",
		},
		[]string{"status"},
	)
	r.RouteQueryDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "levelup_route_query_duration_seconds",
			Help:    "Route query latency in seconds, graph build excluded",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)
	r.RoutePathNodes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "levelup_route_path_nodes",
			Help:    "Number of nodes of returned paths",
			Buckets: prometheus.ExponentialBuckets(2, 2, 10),
		},
	)
}

func (r *Registry) initGraphMetrics() {
	r.GraphBuildsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "levelup_graph_builds_total",
			Help: "Graph builds by avoidance policy",
		},
		[]string{"avoid"},
	)
	r.GraphBuildDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "levelup_graph_build_duration_seconds",
			Help:    "Graph build latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
	r.GraphNodes = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "levelup_graph_nodes",
			Help: "Nodes of the last graph built per avoidance policy",
		},
		[]string{"avoid"},
	)
	r.GraphEdges = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "levelup_graph_edges",
			Help: "Edges of the last graph built per avoidance policy",
		},
		[]string{"avoid"},
	)
	r.GraphCacheTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "levelup_graph_cache_total",
			Help: "Graph cache lookups by result",
		},
		[]string{"result"},
	)
}

func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (r *Registry) RecordRouteQuery(status string, duration time.Duration, pathNodes int) {
	r.RouteQueriesTotal.WithLabelValues(status).Inc()
	r.RouteQueryDuration.Observe(duration.Seconds())
	if pathNodes > 0 {
		r.RoutePathNodes.Observe(float64(pathNodes))
	}
}

// RecordGraphBuild labels the empty avoidance policy as "none".
func (r *Registry) RecordGraphBuild(avoid string, duration time.Duration, nodes, edges int) {
	if avoid == "" {
		avoid = "none"
	}
	r.GraphBuildsTotal.WithLabelValues(avoid).Inc()
	r.GraphBuildDuration.Observe(duration.Seconds())
	r.GraphNodes.WithLabelValues(avoid).Set(float64(nodes))
	r.GraphEdges.WithLabelValues(avoid).Set(float64(edges))
}

func (r *Registry) RecordCacheLookup(hit bool) {
	if hit {
		r.GraphCacheTotal.WithLabelValues("hit").Inc()
		return
	}
	r.GraphCacheTotal.WithLabelValues("miss").Inc()
}

func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
