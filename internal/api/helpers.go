// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/notelens/notelens/internal/logging"
	"github.com/notelens/notelens/internal/models"
)

// maxNameRunes caps display names in ranked views so that a pathological
// summary cannot bloat a chart payload.
const maxNameRunes = 200

// sanitizeLogValue replaces control characters so attacker-supplied
// query values cannot forge log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondDetail sends the {"detail": "<message>"} error body every
// endpoint shares.
func respondDetail(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, models.ErrorResponse{Detail: detail})
}

// respondStorageError logs the cause server-side and serves a generic
// 500; storage internals never reach the client.
func respondStorageError(w http.ResponseWriter, op string, err error) {
	logging.Error().Err(err).Str("operation", op).Msg("Storage query failed")
	respondDetail(w, http.StatusInternalServerError, "internal server error")
}

// getIntParam extracts an integer query parameter with a default value.
// A present but malformed value is an error, never a silent fallback.
func getIntParam(r *http.Request, key string, defaultValue int) (int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, sanitizeLogValue(value))
	}

	return intValue, nil
}

// truncateName caps a display name at maxNameRunes runes.
func truncateName(s string) string {
	runes := []rune(s)
	if len(runes) <= maxNameRunes {
		return s
	}
	return string(runes[:maxNameRunes])
}
