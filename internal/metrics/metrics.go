// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts HTTP requests by route pattern, method and status code
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sift_http_requests_total",
		Help: "Total HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	// RequestDuration tracks HTTP handler latency
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sift_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
	}, []string{"route"})

	// FilterResults tracks how many records each filter call kept
	FilterResults = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sift_filter_results",
		Help:    "Number of records returned per filter call",
		Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000, 10000},
	}, []string{"source"})

	// SkippedPredicates counts predicates dropped because their values were malformed
	SkippedPredicates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sift_filter_skipped_predicates_total",
		Help: "Predicates ignored because their value could not be parsed",
	}, []string{"predicate"})

	// StoredStrings tracks the number of strings currently stored
	StoredStrings = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sift_stored_strings",
		Help: "Number of analyzed strings currently stored",
	})
)

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
