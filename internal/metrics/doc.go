// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

/*
Package metrics provides Prometheus metrics collection and export for observability.

Metrics are registered on the default registry through promauto and exposed at
/metrics in Prometheus text format:

	curl http://localhost:3857/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

Recommendation Metrics:
  - recommendations_total: Served requests (counter)
    Labels: fallback_mode (none, filters_removed, all_filters_removed, member_removed)
  - recommendation_duration_seconds: Engine latency including store reads (histogram)
  - recommendation_results: Restaurants returned per request (histogram)
  - recommendation_errors_total: Failed requests (counter)
    Labels: reason (invalid_request, unknown_member, store, timeout)

Store Metrics:
  - store_operations_total: BadgerDB operations (counter)
    Labels: operation, entity, result (success, not_found, invalid, error)
  - store_operation_duration_seconds: Operation latency (histogram)
    Labels: operation, entity
  - store_gc_runs_total: Value log GC passes (counter)
    Labels: result
  - store_gc_duration_seconds: GC pass latency (histogram)

System Metrics:
  - app_info: Version and Go runtime (gauge)

# Usage

	start := time.Now()
	result, err := svc.Recommend(ctx, req)
	metrics.RecordRecommendation(string(recommend.FallbackModeOf(result)), n, time.Since(start))

# Thread Safety

All recording functions are safe for concurrent use.
*/
package metrics
