// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package api

import (
	"context"
	"net/http"
	"time"
)

// readyTimeout bounds the store check of the readiness probe.
const readyTimeout = 2 * time.Second

// HealthStatus is the body of the health endpoints.
type HealthStatus struct {
	Status         string  `json:"status"`
	Version        string  `json:"version,omitempty"`
	StoreConnected bool    `json:"storeConnected"`
	Uptime         float64 `json:"uptime"`
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, http.StatusOK, HealthStatus{
		Status:  "alive",
		Version: h.config.Version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}, start)
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the store can serve reads, 503 otherwise
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		respondError(w, http.StatusServiceUnavailable, CodeUnavailable, "Store is not ready", err)
		return
	}

	respondSuccess(w, http.StatusOK, HealthStatus{
		Status:         "ready",
		Version:        h.config.Version,
		StoreConnected: true,
		Uptime:         time.Since(h.startTime).Seconds(),
	}, start)
}
