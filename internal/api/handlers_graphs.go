// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/notelens/notelens/internal/daterange"
	"github.com/notelens/notelens/internal/models"
	"github.com/notelens/notelens/internal/validation"
)

// moderationViewLimit is the fixed result size of the evaluation-by-
// status view; the endpoint takes no caller override.
const moderationViewLimit = 100

// rankedQuery validates the limit parameter of the ranked views.
type rankedQuery struct {
	Limit int `validate:"min=1,max=1000"`
}

// parseStatusFilter reads the optional status query parameter.
func parseStatusFilter(r *http.Request) (models.StatusFilter, error) {
	filter := models.StatusFilter(r.URL.Query().Get("status"))
	if !filter.Valid() {
		allowed := make([]string, 0, len(models.AllStatuses)+1)
		allowed = append(allowed, string(models.StatusFilterAll))
		for _, s := range models.AllStatuses {
			allowed = append(allowed, string(s))
		}
		return "", fmt.Errorf("invalid status %q (expected one of %s)", filter, strings.Join(allowed, ", "))
	}
	return filter, nil
}

// parsePeriod resolves the period query parameter against the current
// UTC time.
func parsePeriod(r *http.Request) (start, end time.Time, err error) {
	return daterange.PeriodToRange(r.URL.Query().Get("period"), time.Now())
}

// parseRange resolves the range query parameter and enforces the
// endpoint's maximum month span.
func parseRange(r *http.Request, maxMonths int) (start, end daterange.Month, err error) {
	start, end, err = daterange.ParseMonthRange(r.URL.Query().Get("range"))
	if err != nil {
		return daterange.Month{}, daterange.Month{}, err
	}
	if err := daterange.CheckMaxSpan(start, end, maxMonths); err != nil {
		return daterange.Month{}, daterange.Month{}, err
	}
	return start, end, nil
}

// parseLimit validates the limit query parameter against [1, 1000],
// falling back to the configured default when absent. The error
// carries the HTTP status to serve: 422 for a well-formed value out of
// range, 400 for a value that is not an integer at all.
func (h *Handler) parseLimit(r *http.Request) (int, int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return h.defaultLimit, 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, http.StatusBadRequest, fmt.Errorf("limit must be an integer, got %q", sanitizeLogValue(raw))
	}
	if verr := validation.ValidateStruct(&rankedQuery{Limit: limit}); verr != nil {
		return 0, http.StatusUnprocessableEntity, errors.New(verr.Detail())
	}
	return limit, 0, nil
}

// GraphDailyNotes serves GET /api/v1/graphs/daily-notes: per-day note
// counts by status over a relative period.
func (h *Handler) GraphDailyNotes(w http.ResponseWriter, r *http.Request) {
	filter, err := parseStatusFilter(r)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	start, end, err := parsePeriod(r)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	counts, err := h.db.GetDailyNoteCounts(r.Context(), start, end, filter)
	if err != nil {
		respondStorageError(w, "daily note counts", err)
		return
	}
	h.respondGraph(w, r, counts, "notes")
}

// GraphDailyPosts serves GET /api/v1/graphs/daily-posts: per-day
// counts of noted posts over an absolute month range of at most a
// year.
func (h *Handler) GraphDailyPosts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseStatusFilter(r)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	startMonth, endMonth, err := parseRange(r, 12)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	counts, err := h.db.GetDailyPostCounts(r.Context(), startMonth.FirstDay(), endMonth.LastDay(), filter)
	if err != nil {
		respondStorageError(w, "daily post counts", err)
		return
	}
	h.respondGraph(w, r, counts, "posts")
}

// GraphNotesAnnual serves GET /api/v1/graphs/notes-annual: per-month
// note counts with publication rate over a month range of at most 24
// months.
func (h *Handler) GraphNotesAnnual(w http.ResponseWriter, r *http.Request) {
	filter, err := parseStatusFilter(r)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	startMonth, endMonth, err := parseRange(r, 24)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	counts, err := h.db.GetMonthlyNoteCounts(r.Context(), startMonth, endMonth, filter)
	if err != nil {
		respondStorageError(w, "monthly note counts", err)
		return
	}
	h.respondGraph(w, r, counts, "notes")
}

// GraphNotesEvaluation serves GET /api/v1/graphs/notes-evaluation:
// notes ranked by reach (impressions, then helpful ratings).
func (h *Handler) GraphNotesEvaluation(w http.ResponseWriter, r *http.Request) {
	filter, err := parseStatusFilter(r)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	start, end, err := parsePeriod(r)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, status, err := h.parseLimit(r)
	if err != nil {
		respondDetail(w, status, err.Error())
		return
	}

	items, err := h.db.GetNoteEvaluation(r.Context(), start, end, filter, limit)
	if err != nil {
		respondStorageError(w, "note evaluation", err)
		return
	}
	truncateNoteNames(items)
	h.respondGraph(w, r, items, "notes")
}

// GraphNotesEvaluationStatus serves GET
// /api/v1/graphs/notes-evaluation-status: the moderation ordering of
// the evaluation view (helpful descending, not-helpful ascending) with
// a fixed limit of 100.
func (h *Handler) GraphNotesEvaluationStatus(w http.ResponseWriter, r *http.Request) {
	filter, err := parseStatusFilter(r)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	start, end, err := parsePeriod(r)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.db.GetNoteEvaluationByStatus(r.Context(), start, end, filter, moderationViewLimit)
	if err != nil {
		respondStorageError(w, "note evaluation by status", err)
		return
	}
	truncateNoteNames(items)
	h.respondGraph(w, r, items, "notes")
}

// GraphPostInfluence serves GET /api/v1/graphs/post-influence: posts
// ranked by impressions.
func (h *Handler) GraphPostInfluence(w http.ResponseWriter, r *http.Request) {
	filter, err := parseStatusFilter(r)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	start, end, err := parsePeriod(r)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, status, err := h.parseLimit(r)
	if err != nil {
		respondDetail(w, status, err.Error())
		return
	}

	items, err := h.db.GetPostInfluence(r.Context(), start, end, filter, limit)
	if err != nil {
		respondStorageError(w, "post influence", err)
		return
	}
	for i := range items {
		items[i].Name = truncateName(items[i].Name)
	}
	h.respondGraph(w, r, items, "posts")
}

// respondGraph wraps data in the {data, updatedAt} envelope with the
// source table's freshness watermark.
func (h *Handler) respondGraph(w http.ResponseWriter, r *http.Request, data interface{}, table string) {
	updatedAt, err := h.db.GetGraphUpdatedAt(r.Context(), table)
	if err != nil {
		respondStorageError(w, "updated-at watermark", err)
		return
	}
	respondJSON(w, http.StatusOK, models.GraphListResponse{
		Data:      data,
		UpdatedAt: updatedAt,
	})
}

func truncateNoteNames(items []models.NoteEvaluationItem) {
	for i := range items {
		items[i].Name = truncateName(items[i].Name)
	}
}
