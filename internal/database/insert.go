// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package database

import (
	"context"

	"github.com/notelens/notelens/internal/models"
)

// InsertNote writes one note row. Normal operation only reads the
// store; this exists for the mock-data seeder and for tests.
func (db *DB) InsertNote(ctx context.Context, n models.Note) error {
	_, err := db.conn.ExecContext(ensureContext(ctx), `
		INSERT INTO notes (note_id, post_id, language, summary, current_status,
			has_been_helpful, helpful_count, not_helpful_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.NoteID, n.PostID, n.Language, n.Summary, n.RawStatus,
		n.HasBeenHelpful, n.HelpfulCount, n.NotHelpfulCount, n.CreatedAt)
	if err != nil {
		return storageErr("insert note", err)
	}
	return nil
}

// InsertPost writes one post row. See InsertNote.
func (db *DB) InsertPost(ctx context.Context, p models.Post) error {
	_, err := db.conn.ExecContext(ensureContext(ctx), `
		INSERT INTO posts (post_id, author_name, text, like_count, repost_count, impression_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.PostID, p.AuthorName, p.Text, p.LikeCount, p.RepostCount, p.ImpressionCount, p.CreatedAt)
	if err != nil {
		return storageErr("insert post", err)
	}
	return nil
}
