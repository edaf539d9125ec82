// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/tablemate/internal/logging"
	"github.com/tomtom215/tablemate/internal/models"
)

type familyContextKey struct{}

// familyFromContext returns the family loaded by FamilyContext.
func familyFromContext(ctx context.Context) *models.Family {
	f, _ := ctx.Value(familyContextKey{}).(*models.Family)
	return f
}

// FamilyContext loads the {familyID} route parameter, responding 404 when
// the family does not exist. The family ID is added to the logging context.
func (h *Handler) FamilyContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		familyID := chi.URLParam(r, "familyID")
		family, err := h.store.GetFamily(r.Context(), familyID)
		if err != nil {
			respondDomainError(w, err, "Failed to load family")
			return
		}

		ctx := context.WithValue(r.Context(), familyContextKey{}, family)
		ctx = logging.ContextWithFamilyID(ctx, family.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ListFamilies handles GET /api/v1/families
func (h *Handler) ListFamilies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	list, err := h.store.ListFamilies(r.Context())
	if err != nil {
		respondDomainError(w, err, "Failed to list families")
		return
	}
	respondList(w, list, len(list), start)
}

// CreateFamily handles POST /api/v1/families
func (h *Handler) CreateFamily(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req CreateFamilyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	family, err := h.store.CreateFamily(r.Context(), req.Name)
	if err != nil {
		respondDomainError(w, err, "Failed to create family")
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("family_id", family.ID).
		Str("name", sanitizeLogValue(family.Name)).
		Msg("Family created")
	respondSuccess(w, http.StatusCreated, family, start)
}

// GetFamily handles GET /api/v1/families/{familyID}
func (h *Handler) GetFamily(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, familyFromContext(r.Context()), time.Now())
}
