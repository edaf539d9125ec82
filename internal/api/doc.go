// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

/*
Package api provides the HTTP REST API layer for Tablemate.

Key Components:

  - Router: Chi route configuration and middleware stack
  - Handler: request handlers for reference data, families, members,
    restaurants and recommendations
  - ChiMiddleware: CORS (go-chi/cors) and rate limiting (go-chi/httprate)
  - Response formatting: the models.APIResponse envelope with metadata

Endpoints:

	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /metrics

	GET|POST /api/v1/restrictions
	GET|POST /api/v1/cuisines

	GET|POST        /api/v1/families
	GET             /api/v1/families/{familyID}
	GET|POST        /api/v1/families/{familyID}/members
	GET|PUT|DELETE  /api/v1/families/{familyID}/members/{memberID}
	GET|POST        /api/v1/families/{familyID}/restaurants
	GET|PUT|DELETE  /api/v1/families/{familyID}/restaurants/{restaurantID}
	POST            /api/v1/families/{familyID}/recommendations
	GET             /api/v1/recommendations/stats

Error Handling:

Store and recommendation errors map onto HTTP statuses in one place
(errorStatus):

  - 400 VALIDATION_ERROR, INVALID_REQUEST, INVALID_REFERENCE, INVALID_JSON
  - 404 NOT_FOUND, UNKNOWN_MEMBER
  - 409 CONFLICT
  - 413 BODY_TOO_LARGE
  - 429 RATE_LIMITED
  - 500 STORE_ERROR
  - 503 SERVICE_UNAVAILABLE
  - 504 TIMEOUT

Usage Example:

	handler := api.NewHandler(st, svc, api.HandlerConfig{
	    Version:          version,
	    RecommendTimeout: cfg.Recommend.RequestTimeout,
	})
	chiMW := api.NewChiMiddlewareFromSecurity(
	    cfg.Security.CORSOrigins,
	    cfg.Security.RateLimitReqs,
	    cfg.Security.RateLimitWindow,
	    cfg.Security.RateLimitDisabled,
	    cfg.Security.MaxBodyBytes,
	)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: api.NewRouter(handler, chiMW).SetupChi()}

Thread Safety:

Handlers hold no per-request state; concurrency safety comes from the
store and the recommendation service.
*/
package api
