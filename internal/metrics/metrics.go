// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

// Package metrics defines the Prometheus collectors exposed at /metrics.
// Collectors are registered with promauto at package load; the API layer
// and the dataset sampler service feed them.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestsTotal counts HTTP requests by method, route and status.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notelens_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	// APIRequestDuration observes request latency by method and route.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notelens_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// APIActiveRequests gauges requests currently in flight.
	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notelens_api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)

	// DatasetNotes gauges the total notes in the store, refreshed by the
	// sampler service.
	DatasetNotes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notelens_dataset_notes",
			Help: "Total community notes in the store",
		},
	)

	// DatasetPosts gauges the total posts in the store.
	DatasetPosts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notelens_dataset_posts",
			Help: "Total posts in the store",
		},
	)

	// DatasetSampleErrors counts failed dataset gauge refreshes.
	DatasetSampleErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notelens_dataset_sample_errors_total",
			Help: "Total failures while sampling dataset gauges",
		},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, path, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, path, status).Inc()
	APIRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(active bool) {
	if active {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
