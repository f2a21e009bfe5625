// Package metrics holds the prometheus collectors shared by the HTTP layer and
// the persistence gateway.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "coursehub"

// Store operation outcomes
const (
	OutcomeOK              = "ok"
	OutcomeNotFound        = "not_found"
	OutcomeStorageError    = "storage_error"
	OutcomeConnectionError = "connection_error"
)

var (
	// Registry is private to the service so tests can create many servers
	// without clashing on the global default registry.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts served requests. The route label is the matched
	// gin path, so unmatched requests share one series.
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	// HTTPDuration observes request latency per route.
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	// StoreOperations counts gateway calls by operation name and outcome,
	// one of the Outcome constants.
	StoreOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_operations_total",
		Help:      "Store operations by name and outcome.",
	}, []string{"operation", "outcome"})

	// StoreDuration observes how long each operation held a connection.
	StoreDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_operation_duration_seconds",
		Help:      "Time spent holding a store connection per operation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		HTTPRequests,
		HTTPDuration,
		StoreOperations,
		StoreDuration,
	)
}

// Handler exposes the service registry in the prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
