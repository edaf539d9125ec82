// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package api

import (
	"net/http"
	"time"
)

// ListRestaurants handles GET /api/v1/families/{familyID}/restaurants
func (h *Handler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	family := familyFromContext(r.Context())

	list, err := h.store.ListRestaurants(r.Context(), family.ID)
	if err != nil {
		respondDomainError(w, err, "Failed to list restaurants")
		return
	}
	respondList(w, list, len(list), start)
}

// CreateRestaurant handles POST /api/v1/families/{familyID}/restaurants
func (h *Handler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	family := familyFromContext(r.Context())

	var req RestaurantRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	restaurant, err := h.store.CreateRestaurant(r.Context(), family.ID, req.toInput())
	if err != nil {
		respondDomainError(w, err, "Failed to create restaurant")
		return
	}
	respondSuccess(w, http.StatusCreated, restaurant, start)
}

// GetRestaurant handles GET /api/v1/families/{familyID}/restaurants/{restaurantID}
func (h *Handler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	family := familyFromContext(r.Context())

	id, err := getIDParam(r, "restaurantID")
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidID, err.Error(), nil)
		return
	}

	restaurant, err := h.store.GetRestaurant(r.Context(), family.ID, id)
	if err != nil {
		respondDomainError(w, err, "Failed to load restaurant")
		return
	}
	respondSuccess(w, http.StatusOK, restaurant, start)
}

// UpdateRestaurant handles PUT /api/v1/families/{familyID}/restaurants/{restaurantID}
func (h *Handler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	family := familyFromContext(r.Context())

	id, err := getIDParam(r, "restaurantID")
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidID, err.Error(), nil)
		return
	}

	var req RestaurantRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	restaurant, err := h.store.UpdateRestaurant(r.Context(), family.ID, id, req.toInput())
	if err != nil {
		respondDomainError(w, err, "Failed to update restaurant")
		return
	}
	respondSuccess(w, http.StatusOK, restaurant, start)
}

// DeleteRestaurant handles DELETE /api/v1/families/{familyID}/restaurants/{restaurantID}
func (h *Handler) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	family := familyFromContext(r.Context())

	id, err := getIDParam(r, "restaurantID")
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidID, err.Error(), nil)
		return
	}

	if err := h.store.DeleteRestaurant(r.Context(), family.ID, id); err != nil {
		respondDomainError(w, err, "Failed to delete restaurant")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
