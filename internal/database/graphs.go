// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package database

import (
	"context"
	"time"

	"github.com/notelens/notelens/internal/daterange"
	"github.com/notelens/notelens/internal/models"
)

// noteStatusCaseSQL is the publication-status decision table as a SQL
// CASE over a notes row. It must stay in lockstep with
// models.DeriveNoteStatus; TestNoteStatusCaseMatchesGo enforces the
// equivalence. The WHEN order matters: the first match wins.
const noteStatusCaseSQL = `CASE
	WHEN current_status = 'CURRENTLY_RATED_HELPFUL' THEN 'published'
	WHEN has_been_helpful AND current_status IN ('NEEDS_MORE_RATINGS', 'CURRENTLY_RATED_NOT_HELPFUL') THEN 'temporarilyPublished'
	WHEN current_status = 'NEEDS_MORE_RATINGS' AND NOT has_been_helpful THEN 'evaluating'
	ELSE 'unpublished'
END`

// dayAfter returns the exclusive upper bound for a range whose last
// inclusive day is end.
func dayAfter(end time.Time) time.Time {
	return end.AddDate(0, 0, 1)
}

// GetDailyNoteCounts returns one row per day in [start, end] with note
// counts broken down by derived publication status. Days without notes
// are zero rows, never omitted. A non-"all" filter restricts which
// notes are counted; all four columns remain present either way.
func (db *DB) GetDailyNoteCounts(ctx context.Context, start, end time.Time, filter models.StatusFilter) ([]models.DailyNoteCount, error) {
	ctx = ensureContext(ctx)

	query := `
		SELECT
			strftime(date_trunc('day', created_at), '%Y-%m-%d') AS bucket,
			COUNT(*) FILTER (WHERE status = 'published') AS published,
			COUNT(*) FILTER (WHERE status = 'evaluating') AS evaluating,
			COUNT(*) FILTER (WHERE status = 'unpublished') AS unpublished,
			COUNT(*) FILTER (WHERE status = 'temporarilyPublished') AS temporarily_published
		FROM (
			SELECT created_at, ` + noteStatusCaseSQL + ` AS status
			FROM notes
			WHERE created_at >= ? AND created_at < ?
		) derived`
	args := []interface{}{start, dayAfter(end)}
	if !filter.IsAll() {
		query += ` WHERE status = ?`
		args = append(args, string(filter))
	}
	query += `
		GROUP BY bucket
		ORDER BY bucket`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("daily note counts", err)
	}
	defer rows.Close() //nolint:errcheck

	byDate := make(map[string]models.DailyNoteCount)
	for rows.Next() {
		var row models.DailyNoteCount
		if err := rows.Scan(&row.Date, &row.Published, &row.Evaluating, &row.Unpublished, &row.TemporarilyPublished); err != nil {
			return nil, storageErr("daily note counts scan", err)
		}
		byDate[row.Date] = row
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("daily note counts rows", err)
	}

	return fillDailyGaps(byDate, start, end, func(date string) models.DailyNoteCount {
		return models.DailyNoteCount{Date: date}
	}), nil
}

// GetDailyPostCounts returns one row per day in [start, end] counting
// posts bucketed by creation day. A post without a note carries the
// unpublished fallback status, so it still counts under "all" and
// under an "unpublished" filter. A non-"all" filter restricts counting
// to posts whose derived status matches. The returned Status field
// echoes the filter and is nil for "all".
func (db *DB) GetDailyPostCounts(ctx context.Context, start, end time.Time, filter models.StatusFilter) ([]models.DailyPostCount, error) {
	ctx = ensureContext(ctx)

	query := `
		SELECT
			strftime(date_trunc('day', p.created_at), '%Y-%m-%d') AS bucket,
			COUNT(DISTINCT p.post_id) AS post_count
		FROM posts p
		LEFT JOIN notes n ON n.post_id = p.post_id
		WHERE p.created_at >= ? AND p.created_at < ?`
	args := []interface{}{start, dayAfter(end)}
	if !filter.IsAll() {
		query += ` AND ` + noteStatusCaseSQL + ` = ?`
		args = append(args, string(filter))
	}
	query += `
		GROUP BY bucket
		ORDER BY bucket`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("daily post counts", err)
	}
	defer rows.Close() //nolint:errcheck

	var status *string
	if !filter.IsAll() {
		s := string(filter)
		status = &s
	}

	byDate := make(map[string]models.DailyPostCount)
	for rows.Next() {
		var row models.DailyPostCount
		if err := rows.Scan(&row.Date, &row.PostCount); err != nil {
			return nil, storageErr("daily post counts scan", err)
		}
		row.Status = status
		byDate[row.Date] = row
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("daily post counts rows", err)
	}

	return fillDailyGaps(byDate, start, end, func(date string) models.DailyPostCount {
		return models.DailyPostCount{Date: date, Status: status}
	}), nil
}

// GetMonthlyNoteCounts returns one row per calendar month in
// [start, end] with note counts by derived status and the publication
// rate. The rate is published over the month's total, 0.0 for a month
// without counted notes; months without notes are zero rows. A
// non-"all" filter restricts which notes are counted.
func (db *DB) GetMonthlyNoteCounts(ctx context.Context, start, end daterange.Month, filter models.StatusFilter) ([]models.MonthlyNoteCount, error) {
	ctx = ensureContext(ctx)

	query := `
		SELECT
			strftime(date_trunc('month', created_at), '%Y-%m') AS bucket,
			COUNT(*) FILTER (WHERE status = 'published') AS published,
			COUNT(*) FILTER (WHERE status = 'evaluating') AS evaluating,
			COUNT(*) FILTER (WHERE status = 'unpublished') AS unpublished,
			COUNT(*) FILTER (WHERE status = 'temporarilyPublished') AS temporarily_published
		FROM (
			SELECT created_at, ` + noteStatusCaseSQL + ` AS status
			FROM notes
			WHERE created_at >= ? AND created_at < ?
		) derived`
	args := []interface{}{start.FirstDay(), end.Next().FirstDay()}
	if !filter.IsAll() {
		query += ` WHERE status = ?`
		args = append(args, string(filter))
	}
	query += `
		GROUP BY bucket
		ORDER BY bucket`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("monthly note counts", err)
	}
	defer rows.Close() //nolint:errcheck

	byMonth := make(map[string]models.MonthlyNoteCount)
	for rows.Next() {
		var row models.MonthlyNoteCount
		if err := rows.Scan(&row.Month, &row.Published, &row.Evaluating, &row.Unpublished, &row.TemporarilyPublished); err != nil {
			return nil, storageErr("monthly note counts scan", err)
		}
		if total := row.Total(); total > 0 {
			row.PublicationRate = float64(row.Published) / float64(total)
		}
		byMonth[row.Month] = row
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("monthly note counts rows", err)
	}

	return fillMonthlyGaps(byMonth, start, end, func(month string) models.MonthlyNoteCount {
		return models.MonthlyNoteCount{Month: month}
	}), nil
}

// GetNoteEvaluation returns up to limit notes created in [start, end]
// ranked by the linked post's impression count descending, ties broken
// by helpful count descending. Notes without a linked post rank with
// an impression count of zero. A non-"all" filter restricts results to
// one derived status.
func (db *DB) GetNoteEvaluation(ctx context.Context, start, end time.Time, filter models.StatusFilter, limit int) ([]models.NoteEvaluationItem, error) {
	ctx = ensureContext(ctx)

	query, args := noteEvaluationQuery(start, end, filter)
	query += `
		ORDER BY impression_count DESC, helpful_count DESC
		LIMIT ?`
	args = append(args, limit)

	return db.queryNoteEvaluation(ctx, query, args...)
}

// GetNoteEvaluationByStatus is the moderation view over the same rows:
// ranked by helpful count descending with not-helpful count ascending
// as the tiebreaker.
func (db *DB) GetNoteEvaluationByStatus(ctx context.Context, start, end time.Time, filter models.StatusFilter, limit int) ([]models.NoteEvaluationItem, error) {
	ctx = ensureContext(ctx)

	query, args := noteEvaluationQuery(start, end, filter)
	query += `
		ORDER BY helpful_count DESC, not_helpful_count ASC
		LIMIT ?`
	args = append(args, limit)

	return db.queryNoteEvaluation(ctx, query, args...)
}

// noteEvaluationQuery builds the shared SELECT and WHERE of the two
// note ranking views, leaving ORDER BY and LIMIT to the caller.
func noteEvaluationQuery(start, end time.Time, filter models.StatusFilter) (string, []interface{}) {
	query := `
		SELECT
			n.note_id,
			n.summary,
			GREATEST(COALESCE(n.helpful_count, 0), 0) AS helpful_count,
			GREATEST(COALESCE(n.not_helpful_count, 0), 0) AS not_helpful_count,
			GREATEST(COALESCE(p.impression_count, 0), 0) AS impression_count,
			` + noteStatusCaseSQL + ` AS status
		FROM notes n
		LEFT JOIN posts p ON n.post_id = p.post_id
		WHERE n.created_at >= ? AND n.created_at < ?`
	args := []interface{}{start, dayAfter(end)}
	if !filter.IsAll() {
		query += `
			AND ` + noteStatusCaseSQL + ` = ?`
		args = append(args, string(filter))
	}
	return query, args
}

// queryNoteEvaluation runs a note ranking query and scans its rows.
func (db *DB) queryNoteEvaluation(ctx context.Context, query string, args ...interface{}) ([]models.NoteEvaluationItem, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("note evaluation", err)
	}
	defer rows.Close() //nolint:errcheck

	items := make([]models.NoteEvaluationItem, 0)
	for rows.Next() {
		var item models.NoteEvaluationItem
		if err := rows.Scan(&item.NoteID, &item.Name, &item.HelpfulCount, &item.NotHelpfulCount, &item.ImpressionCount, &item.Status); err != nil {
			return nil, storageErr("note evaluation scan", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("note evaluation rows", err)
	}
	return items, nil
}

// GetPostInfluence returns up to limit posts created in [start, end]
// ranked by impression count descending, ties broken by repost count
// descending. The status column carries the derived status of the
// attached note; a post without a note is unpublished. A non-"all"
// filter restricts results to one derived status.
func (db *DB) GetPostInfluence(ctx context.Context, start, end time.Time, filter models.StatusFilter, limit int) ([]models.PostInfluenceItem, error) {
	ctx = ensureContext(ctx)

	query := `
		SELECT
			p.post_id,
			p.author_name,
			GREATEST(COALESCE(p.repost_count, 0), 0) AS repost_count,
			GREATEST(COALESCE(p.like_count, 0), 0) AS like_count,
			GREATEST(COALESCE(p.impression_count, 0), 0) AS impression_count,
			` + noteStatusCaseSQL + ` AS status
		FROM posts p
		LEFT JOIN notes n ON n.post_id = p.post_id
		WHERE p.created_at >= ? AND p.created_at < ?`
	args := []interface{}{start, dayAfter(end)}
	if !filter.IsAll() {
		query += `
			AND ` + noteStatusCaseSQL + ` = ?`
		args = append(args, string(filter))
	}
	query += `
		ORDER BY impression_count DESC, repost_count DESC
		LIMIT ?`
	args = append(args, limit)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("post influence", err)
	}
	defer rows.Close() //nolint:errcheck

	items := make([]models.PostInfluenceItem, 0)
	for rows.Next() {
		var item models.PostInfluenceItem
		if err := rows.Scan(&item.PostID, &item.Name, &item.RepostCount, &item.LikeCount, &item.ImpressionCount, &item.Status); err != nil {
			return nil, storageErr("post influence scan", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("post influence rows", err)
	}
	return items, nil
}

// GetGraphUpdatedAt returns the freshness watermark of a source table:
// the calendar date (UTC, YYYY-MM-DD) of the newest row. An empty table
// yields the current UTC date so the envelope never carries a zero
// timestamp.
func (db *DB) GetGraphUpdatedAt(ctx context.Context, table string) (string, error) {
	ctx = ensureContext(ctx)

	var query string
	switch table {
	case "notes":
		query = `SELECT strftime(MAX(created_at), '%Y-%m-%d') FROM notes`
	case "posts":
		query = `SELECT strftime(MAX(created_at), '%Y-%m-%d') FROM posts`
	default:
		return "", storageErr("updated-at watermark", errUnknownTable(table))
	}

	var watermark *string
	if err := db.conn.QueryRowContext(ctx, query).Scan(&watermark); err != nil {
		return "", storageErr("updated-at watermark", err)
	}
	if watermark == nil {
		return time.Now().UTC().Format("2006-01-02"), nil
	}
	return *watermark, nil
}
