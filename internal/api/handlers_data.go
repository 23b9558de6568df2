// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package api

import (
	"net/http"

	"github.com/notelens/notelens/internal/database"
	"github.com/notelens/notelens/internal/models"
	"github.com/notelens/notelens/internal/validation"
)

// listQuery validates pagination parameters of the data listings.
type listQuery struct {
	Limit  int `validate:"min=1,max=1000"`
	Offset int `validate:"min=0"`
}

// parseListQuery reads limit and offset, rejecting malformed values the
// same way the graph endpoints do.
func parseListQuery(r *http.Request, defaultLimit int) (listQuery, error) {
	limit, err := getIntParam(r, "limit", defaultLimit)
	if err != nil {
		return listQuery{}, err
	}
	offset, err := getIntParam(r, "offset", 0)
	if err != nil {
		return listQuery{}, err
	}
	return listQuery{Limit: limit, Offset: offset}, nil
}

// DataNotes serves GET /api/v1/data/notes: raw notes newest-first,
// optionally narrowed by language and derived status.
func (h *Handler) DataNotes(w http.ResponseWriter, r *http.Request) {
	filter, err := parseStatusFilter(r)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	q, err := parseListQuery(r, h.defaultLimit)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	if verr := validation.ValidateStruct(&q); verr != nil {
		respondDetail(w, http.StatusUnprocessableEntity, verr.Detail())
		return
	}

	notes, err := h.db.ListNotes(r.Context(), database.NoteFilter{
		Language: r.URL.Query().Get("language"),
		Status:   filter,
		Limit:    q.Limit,
		Offset:   q.Offset,
	})
	if err != nil {
		respondStorageError(w, "list notes", err)
		return
	}
	respondJSON(w, http.StatusOK, models.NoteListResponse{Data: notes})
}

// DataPosts serves GET /api/v1/data/posts: raw posts newest-first.
func (h *Handler) DataPosts(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r, h.defaultLimit)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	if verr := validation.ValidateStruct(&q); verr != nil {
		respondDetail(w, http.StatusUnprocessableEntity, verr.Detail())
		return
	}

	posts, err := h.db.ListPosts(r.Context(), q.Limit, q.Offset)
	if err != nil {
		respondStorageError(w, "list posts", err)
		return
	}
	respondJSON(w, http.StatusOK, models.PostListResponse{Data: posts})
}
