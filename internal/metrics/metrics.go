// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for:
// - API endpoint latency and throughput
// - Recommendation outcomes and relaxation modes
// - BadgerDB store operations and value log GC

// Store operation results.
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

// Recommendation failure reasons.
const (
	ReasonValidation    = "invalid_request"
	ReasonUnknownMember = "unknown_member"
	ReasonStore         = "store"
	ReasonTimeout       = "timeout"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests served, by fallback mode",
		},
		[]string{"fallback_mode"}, // "none", "filters_removed", "all_filters_removed", "member_removed"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of restaurants returned per recommendation request",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	RecommendationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_errors_total",
			Help: "Total number of failed recommendation requests",
		},
		[]string{"reason"}, // "invalid_request", "unknown_member", "store", "timeout"
	)

	// Store Metrics
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total number of BadgerDB store operations",
		},
		[]string{"operation", "entity", "result"},
	)

	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Duration of BadgerDB store operations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"operation", "entity"},
	)

	StoreGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_gc_runs_total",
			Help: "Total number of BadgerDB value log GC passes",
		},
		[]string{"result"}, // "success", "error"
	)

	StoreGCDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "store_gc_duration_seconds",
			Help:    "Duration of BadgerDB value log GC passes in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records a served recommendation request.
// An empty fallbackMode is recorded as "none".
func RecordRecommendation(fallbackMode string, results int, duration time.Duration) {
	if fallbackMode == "" {
		fallbackMode = "none"
	}
	RecommendationsTotal.WithLabelValues(fallbackMode).Inc()
	RecommendationResults.Observe(float64(results))
	RecommendationDuration.Observe(duration.Seconds())
}

// RecordRecommendationError records a failed recommendation request.
func RecordRecommendationError(reason string) {
	RecommendationErrors.WithLabelValues(reason).Inc()
}

// RecordStoreOperation records a store operation metric
func RecordStoreOperation(operation, entity, result string, duration time.Duration) {
	StoreOperationsTotal.WithLabelValues(operation, entity, result).Inc()
	StoreOperationDuration.WithLabelValues(operation, entity).Observe(duration.Seconds())
}

// RecordStoreGC records a value log GC pass
func RecordStoreGC(duration time.Duration, err error) {
	StoreGCDuration.Observe(duration.Seconds())
	if err != nil {
		StoreGCRuns.WithLabelValues(ResultError).Inc()
		return
	}
	StoreGCRuns.WithLabelValues(ResultSuccess).Inc()
}

// SetAppInfo publishes build information
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}
