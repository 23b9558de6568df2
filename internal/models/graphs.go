// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package models

// NoteStatus is the derived publication status of a community note.
// It is computed from the raw evaluation state and the has-been-helpful
// flag; it is never stored.
type NoteStatus string

// The four publication statuses. The set is closed: every note maps to
// exactly one of these values.
const (
	StatusPublished            NoteStatus = "published"
	StatusTemporarilyPublished NoteStatus = "temporarilyPublished"
	StatusEvaluating           NoteStatus = "evaluating"
	StatusUnpublished          NoteStatus = "unpublished"
)

// AllStatuses lists every NoteStatus in display order.
var AllStatuses = []NoteStatus{
	StatusPublished,
	StatusEvaluating,
	StatusUnpublished,
	StatusTemporarilyPublished,
}

// Raw evaluation states as delivered by the Community Notes dataset.
const (
	RawStatusHelpful    = "CURRENTLY_RATED_HELPFUL"
	RawStatusNeedsMore  = "NEEDS_MORE_RATINGS"
	RawStatusNotHelpful = "CURRENTLY_RATED_NOT_HELPFUL"
)

// DeriveNoteStatus maps a raw evaluation state and the has-been-helpful
// flag to a publication status. The rules are ordered; the first match
// wins and the final rule is a catch-all, so the mapping is total:
//
//  1. CURRENTLY_RATED_HELPFUL                                  -> published
//  2. hasBeenHelpful and NEEDS_MORE_RATINGS or
//     CURRENTLY_RATED_NOT_HELPFUL                              -> temporarilyPublished
//  3. NEEDS_MORE_RATINGS and not hasBeenHelpful                -> evaluating
//  4. anything else                                            -> unpublished
//
// The same table exists as a SQL CASE expression in the database package
// so that aggregation happens store-side; the two formulations are kept
// in agreement by tests.
func DeriveNoteStatus(rawStatus string, hasBeenHelpful bool) NoteStatus {
	switch {
	case rawStatus == RawStatusHelpful:
		return StatusPublished
	case hasBeenHelpful && (rawStatus == RawStatusNeedsMore || rawStatus == RawStatusNotHelpful):
		return StatusTemporarilyPublished
	case rawStatus == RawStatusNeedsMore && !hasBeenHelpful:
		return StatusEvaluating
	default:
		return StatusUnpublished
	}
}

// StatusFilter narrows an aggregation to a single publication status.
// The zero value ("all", or the empty string) applies no narrowing.
type StatusFilter string

// StatusFilterAll matches every note regardless of derived status.
const StatusFilterAll StatusFilter = "all"

// IsAll reports whether the filter applies no status narrowing.
func (f StatusFilter) IsAll() bool {
	return f == "" || f == StatusFilterAll
}

// Valid reports whether the filter is "all" or one of the four statuses.
func (f StatusFilter) Valid() bool {
	if f.IsAll() {
		return true
	}
	switch NoteStatus(f) {
	case StatusPublished, StatusTemporarilyPublished, StatusEvaluating, StatusUnpublished:
		return true
	}
	return false
}

// DailyNoteCount is one day of note counts broken down by status.
// All four columns are always present; days without notes are zero rows.
type DailyNoteCount struct {
	Date                 string `json:"date"`
	Published            int    `json:"published"`
	Evaluating           int    `json:"evaluating"`
	Unpublished          int    `json:"unpublished"`
	TemporarilyPublished int    `json:"temporarilyPublished"`
}

// DailyPostCount is one day of post counts. Status echoes the request
// filter and is null when no filter was applied.
type DailyPostCount struct {
	Date      string  `json:"date"`
	PostCount int     `json:"postCount"`
	Status    *string `json:"status"`
}

// MonthlyNoteCount is one month of note counts by status plus the
// publication rate (published / total, 0.0 for an empty month).
type MonthlyNoteCount struct {
	Month                string  `json:"month"`
	Published            int     `json:"published"`
	Evaluating           int     `json:"evaluating"`
	Unpublished          int     `json:"unpublished"`
	TemporarilyPublished int     `json:"temporarilyPublished"`
	PublicationRate      float64 `json:"publicationRate"`
}

// Total returns the sum of the four status counts for the month.
func (m MonthlyNoteCount) Total() int {
	return m.Published + m.Evaluating + m.Unpublished + m.TemporarilyPublished
}

// NoteEvaluationItem is one ranked note in the evaluation views.
// Counters are never negative and never null; a note without a linked
// post contributes an impression count of zero.
type NoteEvaluationItem struct {
	NoteID          string     `json:"noteId"`
	Name            string     `json:"name"`
	HelpfulCount    int        `json:"helpfulCount"`
	NotHelpfulCount int        `json:"notHelpfulCount"`
	ImpressionCount int        `json:"impressionCount"`
	Status          NoteStatus `json:"status"`
}

// PostInfluenceItem is one ranked post in the influence view. A post
// without a linked note carries status unpublished.
type PostInfluenceItem struct {
	PostID          string     `json:"postId"`
	Name            string     `json:"name"`
	RepostCount     int        `json:"repostCount"`
	LikeCount       int        `json:"likeCount"`
	ImpressionCount int        `json:"impressionCount"`
	Status          NoteStatus `json:"status"`
}

// GraphListResponse is the uniform envelope for every graph endpoint:
// the item list plus the source table's freshness watermark. Data is
// always a JSON array; an empty result is a valid success, not an error.
type GraphListResponse struct {
	Data      interface{} `json:"data"`
	UpdatedAt string      `json:"updatedAt"`
}

// ErrorResponse is the error body shape shared by all endpoints.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
