// Package metrics provides Prometheus instrumentation for the position API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// PositionQueries counts engine queries by operation, source and outcome
	PositionQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "position_api_queries_total",
		Help: "Total position queries handled by the engine",
	}, []string{"operation", "source", "outcome"})

	// PositionQueryDuration tracks engine query latency by source
	PositionQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "position_api_query_duration_seconds",
		Help:    "Position query duration in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"operation", "source"})

	// LookupFailures counts contained per-token lookup failures by template and kind
	LookupFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "position_api_lookup_failures_total",
		Help: "Per-token lookups dropped by the error containment layer",
	}, []string{"template", "kind"})

	// HTTPRequestsTotal counts HTTP requests by method, route and status
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "position_api_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration tracks request duration by method and route
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "position_api_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
