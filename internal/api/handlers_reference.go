// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package api

import (
	"net/http"
	"time"
)

// ListRestrictions handles GET /api/v1/restrictions
func (h *Handler) ListRestrictions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	list, err := h.store.ListRestrictions(r.Context())
	if err != nil {
		respondDomainError(w, err, "Failed to list restrictions")
		return
	}
	respondList(w, list, len(list), start)
}

// CreateRestriction handles POST /api/v1/restrictions
func (h *Handler) CreateRestriction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req CreateRestrictionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.store.CreateRestriction(r.Context(), req.Name, req.Description)
	if err != nil {
		respondDomainError(w, err, "Failed to create restriction")
		return
	}
	respondSuccess(w, http.StatusCreated, created, start)
}

// ListCuisines handles GET /api/v1/cuisines
func (h *Handler) ListCuisines(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	list, err := h.store.ListCuisines(r.Context())
	if err != nil {
		respondDomainError(w, err, "Failed to list cuisines")
		return
	}
	respondList(w, list, len(list), start)
}

// CreateCuisine handles POST /api/v1/cuisines
func (h *Handler) CreateCuisine(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req CreateCuisineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.store.CreateCuisine(r.Context(), req.Name)
	if err != nil {
		respondDomainError(w, err, "Failed to create cuisine")
		return
	}
	respondSuccess(w, http.StatusCreated, created, start)
}
