// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/tablemate/internal/logging"
	"github.com/tomtom215/tablemate/internal/metrics"
	"github.com/tomtom215/tablemate/internal/recommend"
)

// Recommend handles POST /api/v1/families/{familyID}/recommendations
//
// The response data is a recommend.Response. Relaxed results carry
// fallbackMode and the relaxation details; strict results omit them.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	family := familyFromContext(r.Context())

	var body RecommendationRequest
	if !decodeAndValidate(w, r, &body) {
		metrics.RecordRecommendationError(metrics.ReasonValidation)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.RecommendTimeout)
	defer cancel()

	result, err := h.recommender.Recommend(ctx, body.toRequest(family.ID))
	if err != nil {
		metrics.RecordRecommendationError(errorReason(err))
		respondDomainError(w, err, "Failed to generate recommendations")
		return
	}

	resp := recommend.ToResponse(result)
	metrics.RecordRecommendation(string(resp.FallbackMode), len(resp.Recommendations), time.Since(start))

	logging.Ctx(r.Context()).Debug().
		Int("members", len(body.MemberIDs)).
		Int("results", len(resp.Recommendations)).
		Str("fallback_mode", string(resp.FallbackMode)).
		Msg("Recommendations served")

	respondSuccess(w, http.StatusOK, resp, start)
}

// RecommendationStats handles GET /api/v1/recommendations/stats
func (h *Handler) RecommendationStats(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, h.recommender.Stats(), time.Now())
}

// errorReason labels a recommendation failure for metrics.
func errorReason(err error) string {
	switch {
	case errors.Is(err, recommend.ErrInvalidRequest):
		return metrics.ReasonValidation
	case errors.Is(err, recommend.ErrUnknownMember):
		return metrics.ReasonUnknownMember
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return metrics.ReasonTimeout
	default:
		return metrics.ReasonStore
	}
}
