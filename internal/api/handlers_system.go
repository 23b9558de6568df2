// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package api

import (
	"net/http"
)

// SystemPing serves GET /api/v1/system/ping.
func (h *Handler) SystemPing(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthLive serves GET /api/v1/health/live: process liveness only.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HealthReady serves GET /api/v1/health/ready: readiness including the
// store connection.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		respondStorageError(w, "readiness ping", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
