// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package database

import (
	"context"

	"github.com/notelens/notelens/internal/models"
)

// NoteFilter narrows a note listing. Zero values apply no narrowing.
type NoteFilter struct {
	Language string
	Status   models.StatusFilter
	Limit    int
	Offset   int
}

// ListNotes returns notes newest-first, optionally narrowed by language
// and derived publication status.
func (db *DB) ListNotes(ctx context.Context, filter NoteFilter) ([]models.Note, error) {
	ctx = ensureContext(ctx)

	query := `
		SELECT note_id, post_id, language, summary, current_status,
			has_been_helpful, helpful_count, not_helpful_count, created_at
		FROM notes
		WHERE 1=1`
	args := make([]interface{}, 0, 4)
	if filter.Language != "" {
		query += ` AND language = ?`
		args = append(args, filter.Language)
	}
	if !filter.Status.IsAll() {
		query += ` AND ` + noteStatusCaseSQL + ` = ?`
		args = append(args, string(filter.Status))
	}
	query += `
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("list notes", err)
	}
	defer rows.Close() //nolint:errcheck

	notes := make([]models.Note, 0)
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.NoteID, &n.PostID, &n.Language, &n.Summary, &n.RawStatus,
			&n.HasBeenHelpful, &n.HelpfulCount, &n.NotHelpfulCount, &n.CreatedAt); err != nil {
			return nil, storageErr("list notes scan", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list notes rows", err)
	}
	return notes, nil
}

// ListPosts returns posts newest-first.
func (db *DB) ListPosts(ctx context.Context, limit, offset int) ([]models.Post, error) {
	ctx = ensureContext(ctx)

	query := `
		SELECT post_id, author_name, text, like_count, repost_count,
			impression_count, created_at
		FROM posts
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`

	rows, err := db.conn.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, storageErr("list posts", err)
	}
	defer rows.Close() //nolint:errcheck

	posts := make([]models.Post, 0)
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.PostID, &p.AuthorName, &p.Text, &p.LikeCount,
			&p.RepostCount, &p.ImpressionCount, &p.CreatedAt); err != nil {
			return nil, storageErr("list posts scan", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list posts rows", err)
	}
	return posts, nil
}

// CountNotes returns the total number of notes in the store.
func (db *DB) CountNotes(ctx context.Context) (int64, error) {
	return db.countTable(ctx, `SELECT COUNT(*) FROM notes`, "count notes")
}

// CountPosts returns the total number of posts in the store.
func (db *DB) CountPosts(ctx context.Context) (int64, error) {
	return db.countTable(ctx, `SELECT COUNT(*) FROM posts`, "count posts")
}

func (db *DB) countTable(ctx context.Context, query, op string) (int64, error) {
	var n int64
	if err := db.conn.QueryRowContext(ensureContext(ctx), query).Scan(&n); err != nil {
		return 0, storageErr(op, err)
	}
	return n, nil
}
