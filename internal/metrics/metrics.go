// Package metrics defines Prometheus metrics for wikigraph.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wikigraph_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wikigraph_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wikigraph_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wikigraph_operation_duration_seconds",
			Help:    "Graph operation duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"operation"},
	)

	GraphNodes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wikigraph_explore_nodes",
			Help:    "Nodes materialized per exploration",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 200},
		},
	)

	NodeCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wikigraph_node_cache_lookups_total",
			Help: "Node cache lookups by result",
		},
		[]string{"result"},
	)

	NodeCacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wikigraph_node_cache_entries",
			Help: "Entries held in the node cache",
		},
	)

	ProviderRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wikigraph_provider_requests_total",
			Help: "Upstream content requests by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	ProviderCircuitState = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wikigraph_provider_circuit_state",
			Help: "Upstream circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
	)

	PathArticlesExplored = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wikigraph_path_articles_explored",
			Help:    "Articles fetched per shortest-path search",
			Buckets: []float64{1, 10, 50, 100, 250, 500, 1000},
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		OperationDuration, GraphNodes,
		NodeCacheLookups, NodeCacheSize,
		ProviderRequests, ProviderCircuitState,
		PathArticlesExplored,
	)
}
