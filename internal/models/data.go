// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package models

import "time"

// Note is a community note as persisted by the ingestion pipeline.
// The core reads notes, it never writes them. RawStatus holds the
// evaluation state code from the dataset; the publication status is
// derived on demand via DeriveNoteStatus.
type Note struct {
	NoteID          string    `json:"noteId"`
	PostID          *string   `json:"postId"`
	Language        string    `json:"language"`
	Summary         string    `json:"summary"`
	RawStatus       string    `json:"currentStatus"`
	HasBeenHelpful  bool      `json:"hasBeenHelpful"`
	HelpfulCount    int       `json:"helpfulCount"`
	NotHelpfulCount int       `json:"notHelpfulCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Status returns the note's derived publication status.
func (n Note) Status() NoteStatus {
	return DeriveNoteStatus(n.RawStatus, n.HasBeenHelpful)
}

// Post is a social-media post that zero or one note is attached to.
// Engagement counters may be absent in the source data; nil means the
// counter was not reported, and aggregations coerce it to zero.
type Post struct {
	PostID          string    `json:"postId"`
	AuthorName      string    `json:"authorName"`
	Text            string    `json:"text"`
	LikeCount       *int      `json:"likeCount"`
	RepostCount     *int      `json:"repostCount"`
	ImpressionCount *int      `json:"impressionCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NoteListResponse wraps a filtered note listing.
type NoteListResponse struct {
	Data []Note `json:"data"`
}

// PostListResponse wraps a filtered post listing.
type PostListResponse struct {
	Data []Post `json:"data"`
}
