// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/tablemate/internal/logging"
)

func serveRequestID(t *testing.T, header string) (responseID, contextID string) {
	t.Helper()

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contextID = logging.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec.Header().Get(RequestIDHeader), contextID
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	t.Parallel()

	responseID, contextID := serveRequestID(t, "")

	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("Response X-Request-ID %q is not a valid UUID: %v", responseID, err)
	}
	if contextID != responseID {
		t.Errorf("Context ID (%s) doesn't match response header ID (%s)", contextID, responseID)
	}
}

func TestRequestID_PreservesExistingID(t *testing.T) {
	t.Parallel()

	existingID := "existing-request-id-12345"
	responseID, contextID := serveRequestID(t, existingID)

	if responseID != existingID {
		t.Errorf("Expected X-Request-ID to be %s, got %s", existingID, responseID)
	}
	if contextID != existingID {
		t.Errorf("Expected context ID %s, got %s", existingID, contextID)
	}
}

func TestRequestID_RejectsOversizedID(t *testing.T) {
	t.Parallel()

	oversized := strings.Repeat("x", maxRequestIDLength+1)
	responseID, _ := serveRequestID(t, oversized)

	if responseID == oversized {
		t.Error("Expected oversized request ID to be replaced")
	}
	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("Replacement ID %q is not a valid UUID: %v", responseID, err)
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, _ := serveRequestID(t, "")
		if seen[id] {
			t.Fatalf("Duplicate request ID generated: %s", id)
		}
		seen[id] = true
	}
}
