// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/tablemate/internal/recommend"
	"github.com/tomtom215/tablemate/internal/store"
)

// Error codes returned in APIError.Code.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidJSON      = "INVALID_JSON"
	CodeInvalidID        = "INVALID_ID"
	CodeInvalidReference = "INVALID_REFERENCE"
	CodeUnknownMember    = "UNKNOWN_MEMBER"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeBodyTooLarge     = "BODY_TOO_LARGE"
	CodeTimeout          = "TIMEOUT"
	CodeStoreError       = "STORE_ERROR"
	CodeUnavailable      = "SERVICE_UNAVAILABLE"
	CodeRateLimited      = "RATE_LIMITED"
)

// errorStatus maps a store or recommend error to an HTTP status and code.
// Unrecognized errors are internal.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, recommend.ErrInvalidRequest):
		return http.StatusBadRequest, CodeInvalidRequest
	case errors.Is(err, recommend.ErrUnknownMember):
		return http.StatusNotFound, CodeUnknownMember
	case errors.Is(err, store.ErrInvalidInput):
		return http.StatusBadRequest, CodeValidation
	case errors.Is(err, store.ErrInvalidReference):
		return http.StatusBadRequest, CodeInvalidReference
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, store.ErrConflict):
		return http.StatusConflict, CodeConflict
	case errors.Is(err, store.ErrClosed):
		return http.StatusServiceUnavailable, CodeUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, CodeTimeout
	default:
		return http.StatusInternalServerError, CodeStoreError
	}
}
