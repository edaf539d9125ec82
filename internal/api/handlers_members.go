// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package api

import (
	"net/http"
	"time"
)

// ListMembers handles GET /api/v1/families/{familyID}/members
func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	family := familyFromContext(r.Context())

	list, err := h.store.ListMembers(r.Context(), family.ID)
	if err != nil {
		respondDomainError(w, err, "Failed to list members")
		return
	}
	respondList(w, list, len(list), start)
}

// CreateMember handles POST /api/v1/families/{familyID}/members
func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	family := familyFromContext(r.Context())

	var req MemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	member, err := h.store.CreateMember(r.Context(), family.ID, req.toInput())
	if err != nil {
		respondDomainError(w, err, "Failed to create member")
		return
	}
	respondSuccess(w, http.StatusCreated, member, start)
}

// GetMember handles GET /api/v1/families/{familyID}/members/{memberID}
func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	family := familyFromContext(r.Context())

	id, err := getIDParam(r, "memberID")
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidID, err.Error(), nil)
		return
	}

	member, err := h.store.GetMember(r.Context(), family.ID, id)
	if err != nil {
		respondDomainError(w, err, "Failed to load member")
		return
	}
	respondSuccess(w, http.StatusOK, member, start)
}

// UpdateMember handles PUT /api/v1/families/{familyID}/members/{memberID}
func (h *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	family := familyFromContext(r.Context())

	id, err := getIDParam(r, "memberID")
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidID, err.Error(), nil)
		return
	}

	var req MemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	member, err := h.store.UpdateMember(r.Context(), family.ID, id, req.toInput())
	if err != nil {
		respondDomainError(w, err, "Failed to update member")
		return
	}
	respondSuccess(w, http.StatusOK, member, start)
}

// DeleteMember handles DELETE /api/v1/families/{familyID}/members/{memberID}
func (h *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	family := familyFromContext(r.Context())

	id, err := getIDParam(r, "memberID")
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidID, err.Error(), nil)
		return
	}

	if err := h.store.DeleteMember(r.Context(), family.ID, id); err != nil {
		respondDomainError(w, err, "Failed to delete member")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
