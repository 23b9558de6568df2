// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package database

import (
	"context"
	"testing"
	"time"

	"github.com/notelens/notelens/internal/config"
)

// setupTestDB opens an in-memory DuckDB store with the schema applied.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(&config.DatabaseConfig{
		Path:                   ":memory:",
		MaxMemory:              "512MB",
		Threads:                2,
		PreserveInsertionOrder: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})
	return db
}

// insertNote inserts a note row. postID may be empty for an unlinked note.
func insertNote(t *testing.T, db *DB, noteID, postID, rawStatus string, hasBeenHelpful bool, helpful, notHelpful int, createdAt time.Time) {
	t.Helper()

	var post interface{}
	if postID != "" {
		post = postID
	}
	_, err := db.conn.ExecContext(context.Background(), `
		INSERT INTO notes (note_id, post_id, language, summary, current_status,
			has_been_helpful, helpful_count, not_helpful_count, created_at)
		VALUES (?, ?, 'en', ?, ?, ?, ?, ?, ?)`,
		noteID, post, "summary for "+noteID, rawStatus, hasBeenHelpful, helpful, notHelpful, createdAt)
	if err != nil {
		t.Fatalf("failed to insert note %s: %v", noteID, err)
	}
}

// insertPost inserts a post row. Negative counters insert as NULL.
func insertPost(t *testing.T, db *DB, postID, author string, likes, reposts, impressions int, createdAt time.Time) {
	t.Helper()

	nullable := func(v int) interface{} {
		if v < 0 {
			return nil
		}
		return v
	}
	_, err := db.conn.ExecContext(context.Background(), `
		INSERT INTO posts (post_id, author_name, text, like_count, repost_count, impression_count, created_at)
		VALUES (?, ?, 'post text', ?, ?, ?, ?)`,
		postID, author, nullable(likes), nullable(reposts), nullable(impressions), createdAt)
	if err != nil {
		t.Fatalf("failed to insert post %s: %v", postID, err)
	}
}

func TestNewAndPing(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}

func TestInitSchemaIdempotent(t *testing.T) {
	db := setupTestDB(t)
	if err := db.initSchema(context.Background()); err != nil {
		t.Fatalf("second initSchema failed: %v", err)
	}
}
