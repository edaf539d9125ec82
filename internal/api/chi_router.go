// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/tablemate/internal/middleware"
)

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil chiMW uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, chiMW *ChiMiddleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMW,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()
	h := router.handler

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)        // X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(RequestLogging())            // Access log through logging.Ctx
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, CodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	// ========================
	// Core API Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		if maxBytes := router.chiMiddleware.config.MaxBodyBytes; maxBytes > 0 {
			r.Use(chimiddleware.RequestSize(maxBytes))
		}
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.Compression)

		r.Route("/api/v1/restrictions", func(r chi.Router) {
			r.Get("/", h.ListRestrictions)
			r.Post("/", h.CreateRestriction)
		})

		r.Route("/api/v1/cuisines", func(r chi.Router) {
			r.Get("/", h.ListCuisines)
			r.Post("/", h.CreateCuisine)
		})

		r.Get("/api/v1/recommendations/stats", h.RecommendationStats)

		r.Route("/api/v1/families", func(r chi.Router) {
			r.Get("/", h.ListFamilies)
			r.Post("/", h.CreateFamily)

			r.Route("/{familyID}", func(r chi.Router) {
				r.Use(h.FamilyContext)
				r.Get("/", h.GetFamily)

				r.Route("/members", func(r chi.Router) {
					r.Get("/", h.ListMembers)
					r.Post("/", h.CreateMember)
					r.Get("/{memberID}", h.GetMember)
					r.Put("/{memberID}", h.UpdateMember)
					r.Delete("/{memberID}", h.DeleteMember)
				})

				r.Route("/restaurants", func(r chi.Router) {
					r.Get("/", h.ListRestaurants)
					r.Post("/", h.CreateRestaurant)
					r.Get("/{restaurantID}", h.GetRestaurant)
					r.Put("/{restaurantID}", h.UpdateRestaurant)
					r.Delete("/{restaurantID}", h.DeleteRestaurant)
				})

				r.With(router.chiMiddleware.RateLimitRecommend()).
					Post("/recommendations", h.Recommend)
			})
		})
	})

	return r
}
