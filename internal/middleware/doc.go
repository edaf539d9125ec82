// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

/*
Package middleware provides HTTP middleware for the Tablemate API.

All middleware use the standard func(http.Handler) http.Handler signature
so they compose with chi's r.Use and r.With:

	r.Use(middleware.RequestID)
	r.Group(func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	    r.Use(middleware.Compression)
	    r.Get("/api/v1/cuisines", h.ListCuisines)
	})

Key Components:

  - RequestID: honors or generates X-Request-ID and stores it in the
    request context through the logging package
  - PrometheusMetrics: request count, latency and in-flight gauge, labeled
    by chi route pattern
  - Compression: gzip response bodies with pooled writers

PrometheusMetrics must run inside the chi router (r.Use, not a wrapper
around the router) so the route pattern is known when the request completes.

See Also:

  - internal/api: router setup and CORS/rate limiting
  - internal/metrics: Prometheus metric definitions
*/
package middleware
