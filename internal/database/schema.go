// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package database

import (
	"context"
	"fmt"
)

// schemaStatements creates the notes and posts tables plus the indexes
// the aggregation queries lean on. CREATE IF NOT EXISTS keeps startup
// idempotent against a store the ingestion pipeline already populated.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS notes (
		note_id           VARCHAR PRIMARY KEY,
		post_id           VARCHAR,
		language          VARCHAR NOT NULL DEFAULT '',
		summary           VARCHAR NOT NULL DEFAULT '',
		current_status    VARCHAR NOT NULL,
		has_been_helpful  BOOLEAN NOT NULL DEFAULT FALSE,
		helpful_count     INTEGER NOT NULL DEFAULT 0,
		not_helpful_count INTEGER NOT NULL DEFAULT 0,
		created_at        TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		post_id          VARCHAR PRIMARY KEY,
		author_name      VARCHAR NOT NULL DEFAULT '',
		text             VARCHAR NOT NULL DEFAULT '',
		like_count       INTEGER,
		repost_count     INTEGER,
		impression_count INTEGER,
		created_at       TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_created_at ON notes(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_post_id ON notes(post_id)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at)`,
}

// initSchema creates tables and indexes if they do not exist.
func (db *DB) initSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}
