// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/notelens/notelens/internal/config"
	"github.com/notelens/notelens/internal/database"
	"github.com/notelens/notelens/internal/models"
)

// setupTestServer builds a router over an in-memory store.
func setupTestServer(t *testing.T) (*database.DB, http.Handler) {
	t.Helper()

	db, err := database.New(&config.DatabaseConfig{
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

	cfg := &config.Config{
		API:     config.APIConfig{DefaultLimit: 200, CORSOrigins: []string{"*"}},
		Metrics: config.MetricsConfig{Enabled: true, SampleInterval: time.Minute},
	}
	return db, NewRouter(NewHandler(db, cfg.API.DefaultLimit), cfg)
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func seedNote(t *testing.T, db *database.DB, noteID, postID, rawStatus string, helpful, notHelpful int, createdAt time.Time) {
	t.Helper()
	n := models.Note{
		NoteID:          noteID,
		Language:        "en",
		Summary:         "summary for " + noteID,
		RawStatus:       rawStatus,
		HelpfulCount:    helpful,
		NotHelpfulCount: notHelpful,
		CreatedAt:       createdAt,
	}
	if postID != "" {
		n.PostID = &postID
	}
	if err := db.InsertNote(t.Context(), n); err != nil {
		t.Fatalf("failed to seed note: %v", err)
	}
}

func seedPost(t *testing.T, db *database.DB, postID, author string, impressions int, createdAt time.Time) {
	t.Helper()
	likes, reposts := impressions/100, impressions/200
	if err := db.InsertPost(t.Context(), models.Post{
		PostID:          postID,
		AuthorName:      author,
		Text:            "post text",
		LikeCount:       &likes,
		RepostCount:     &reposts,
		ImpressionCount: &impressions,
		CreatedAt:       createdAt,
	}); err != nil {
		t.Fatalf("failed to seed post: %v", err)
	}
}

type graphEnvelope struct {
	Data      json.RawMessage `json:"data"`
	UpdatedAt string          `json:"updatedAt"`
}

func TestGraphDailyNotes(t *testing.T) {
	db, router := setupTestServer(t)

	now := time.Now().UTC()
	seedNote(t, db, "n1", "", models.RawStatusHelpful, 10, 0, now.AddDate(0, 0, -2))
	seedNote(t, db, "n2", "", models.RawStatusNeedsMore, 1, 1, now.AddDate(0, 0, -2))

	rec := get(t, router, "/api/v1/graphs/daily-notes?period=1week")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var env graphEnvelope
	decodeJSON(t, rec, &env)
	if env.UpdatedAt == "" {
		t.Error("updatedAt missing from envelope")
	}

	var data []models.DailyNoteCount
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if len(data) != 7 {
		t.Fatalf("got %d days for 1week, want 7", len(data))
	}
	var published, evaluating int
	for _, d := range data {
		published += d.Published
		evaluating += d.Evaluating
	}
	if published != 1 || evaluating != 1 {
		t.Errorf("counts published=%d evaluating=%d, want 1 each", published, evaluating)
	}
}

func TestGraphDailyNotesInvalidParams(t *testing.T) {
	_, router := setupTestServer(t)

	rec := get(t, router, "/api/v1/graphs/daily-notes?period=2weeks")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid period status = %d, want 400", rec.Code)
	}
	var errBody models.ErrorResponse
	decodeJSON(t, rec, &errBody)
	if errBody.Detail == "" {
		t.Error("error body must carry a detail message")
	}

	rec = get(t, router, "/api/v1/graphs/daily-notes?period=1week&status=bogus")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid status = %d, want 400", rec.Code)
	}
}

func TestGraphDailyNotesEmptyResult(t *testing.T) {
	_, router := setupTestServer(t)

	rec := get(t, router, "/api/v1/graphs/daily-notes?period=1week")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for empty store", rec.Code)
	}
	var env graphEnvelope
	decodeJSON(t, rec, &env)
	if _, err := time.Parse("2006-01-02", env.UpdatedAt); err != nil {
		t.Errorf("updatedAt %q is not a date: %v", env.UpdatedAt, err)
	}
}

func TestGraphDailyPosts(t *testing.T) {
	db, router := setupTestServer(t)

	seedPost(t, db, "p1", "alice", 1000, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	seedNote(t, db, "n1", "p1", models.RawStatusHelpful, 5, 0, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))

	rec := get(t, router, "/api/v1/graphs/daily-posts?range=2025-01_2025-02")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var env graphEnvelope
	decodeJSON(t, rec, &env)
	var data []models.DailyPostCount
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	// Jan 1 through Feb 28: the range covers whole months.
	if len(data) != 59 {
		t.Fatalf("got %d days, want 59", len(data))
	}
	if data[0].Date != "2025-01-01" || data[len(data)-1].Date != "2025-02-28" {
		t.Errorf("range boundaries wrong: %s .. %s", data[0].Date, data[len(data)-1].Date)
	}
	var total int
	for _, d := range data {
		total += d.PostCount
		if d.Status != nil {
			t.Fatalf("unfiltered status must be null, got %q", *d.Status)
		}
	}
	if total != 1 {
		t.Errorf("total posts = %d, want 1", total)
	}
}

func TestGraphDailyPostsRangeErrors(t *testing.T) {
	_, router := setupTestServer(t)

	tests := []struct {
		name  string
		query string
	}{
		{"bad format", "range=2025-1_2025-02"},
		{"reversed", "range=2025-05_2025-01"},
		{"too large", "range=2024-01_2025-06"},
		{"missing", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, router, "/api/v1/graphs/daily-posts?"+tt.query)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestGraphNotesAnnual(t *testing.T) {
	db, router := setupTestServer(t)

	jan := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	seedNote(t, db, "n1", "", models.RawStatusHelpful, 5, 0, jan)
	seedNote(t, db, "n2", "", models.RawStatusNeedsMore, 1, 1, jan)

	rec := get(t, router, "/api/v1/graphs/notes-annual?range=2025-01_2025-03")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var env graphEnvelope
	decodeJSON(t, rec, &env)
	var data []models.MonthlyNoteCount
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if len(data) != 3 {
		t.Fatalf("got %d months, want 3", len(data))
	}
	if data[0].PublicationRate != 0.5 {
		t.Errorf("January rate = %v, want 0.5", data[0].PublicationRate)
	}
	if data[1].PublicationRate != 0 || data[1].Total() != 0 {
		t.Errorf("empty February = %+v", data[1])
	}

	// 24-month limit: 25 months must be rejected.
	rec = get(t, router, "/api/v1/graphs/notes-annual?range=2023-01_2025-01")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("25-month range status = %d, want 400", rec.Code)
	}
	rec = get(t, router, "/api/v1/graphs/notes-annual?range=2023-02_2025-01")
	if rec.Code != http.StatusOK {
		t.Errorf("24-month range status = %d, want 200", rec.Code)
	}
}

func TestGraphNotesEvaluation(t *testing.T) {
	db, router := setupTestServer(t)

	now := time.Now().UTC()
	seedPost(t, db, "p1", "alice", 9000, now.AddDate(0, 0, -3))
	seedPost(t, db, "p2", "bob", 100, now.AddDate(0, 0, -3))
	seedNote(t, db, "n1", "p2", models.RawStatusHelpful, 50, 1, now.AddDate(0, 0, -2))
	seedNote(t, db, "n2", "p1", models.RawStatusNeedsMore, 3, 1, now.AddDate(0, 0, -1))

	rec := get(t, router, "/api/v1/graphs/notes-evaluation?period=1week")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var env graphEnvelope
	decodeJSON(t, rec, &env)
	var data []models.NoteEvaluationItem
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if len(data) != 2 {
		t.Fatalf("got %d items, want 2", len(data))
	}
	if data[0].NoteID != "n2" || data[0].ImpressionCount != 9000 {
		t.Errorf("top item = %+v, want n2 ranked first on impressions", data[0])
	}

	// Status filter narrows the ranking.
	rec = get(t, router, "/api/v1/graphs/notes-evaluation?period=1week&status=published")
	decodeJSON(t, rec, &env)
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if len(data) != 1 || data[0].NoteID != "n1" {
		t.Errorf("filtered items = %+v, want only n1", data)
	}
}

func TestGraphNotesEvaluationLimitBoundaries(t *testing.T) {
	_, router := setupTestServer(t)

	tests := []struct {
		limit string
		want  int
	}{
		{"1000", http.StatusOK},
		{"1", http.StatusOK},
		{"1001", http.StatusUnprocessableEntity},
		{"0", http.StatusUnprocessableEntity},
		{"-5", http.StatusUnprocessableEntity},
		{"abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run("limit="+tt.limit, func(t *testing.T) {
			rec := get(t, router, fmt.Sprintf("/api/v1/graphs/notes-evaluation?period=1week&limit=%s", tt.limit))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestGraphNotesEvaluationStatus(t *testing.T) {
	db, router := setupTestServer(t)

	now := time.Now().UTC()
	seedNote(t, db, "n1", "", models.RawStatusHelpful, 30, 5, now.AddDate(0, 0, -1))
	seedNote(t, db, "n2", "", models.RawStatusHelpful, 30, 2, now.AddDate(0, 0, -1))
	seedNote(t, db, "n3", "", models.RawStatusHelpful, 50, 1, now.AddDate(0, 0, -1))

	rec := get(t, router, "/api/v1/graphs/notes-evaluation-status?period=1week&status=published")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var env graphEnvelope
	decodeJSON(t, rec, &env)
	var data []models.NoteEvaluationItem
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	wantOrder := []string{"n3", "n2", "n1"}
	for i, want := range wantOrder {
		if data[i].NoteID != want {
			t.Errorf("rank %d = %s, want %s", i, data[i].NoteID, want)
		}
	}
}

func TestGraphPostInfluence(t *testing.T) {
	db, router := setupTestServer(t)

	now := time.Now().UTC()
	seedPost(t, db, "p1", "alice", 9000, now.AddDate(0, 0, -2))
	// Post without note must surface as unpublished.
	if err := db.InsertPost(t.Context(), models.Post{
		PostID: "p2", AuthorName: "bob", Text: "text", CreatedAt: now.AddDate(0, 0, -2),
	}); err != nil {
		t.Fatalf("insert error: %v", err)
	}
	seedNote(t, db, "n1", "p1", models.RawStatusHelpful, 5, 0, now.AddDate(0, 0, -2))

	rec := get(t, router, "/api/v1/graphs/post-influence?period=1month")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var env graphEnvelope
	decodeJSON(t, rec, &env)
	var data []models.PostInfluenceItem
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if len(data) != 2 {
		t.Fatalf("got %d items, want 2", len(data))
	}
	if data[0].PostID != "p1" || data[0].Status != models.StatusPublished {
		t.Errorf("top item = %+v", data[0])
	}
	if data[1].PostID != "p2" || data[1].Status != models.StatusUnpublished {
		t.Errorf("noteless post = %+v, want unpublished", data[1])
	}
	if data[1].ImpressionCount != 0 || data[1].LikeCount != 0 {
		t.Errorf("null counters must coerce to zero: %+v", data[1])
	}
}

func TestDataNotes(t *testing.T) {
	db, router := setupTestServer(t)

	now := time.Now().UTC()
	seedNote(t, db, "n1", "", models.RawStatusHelpful, 5, 0, now.AddDate(0, 0, -2))
	seedNote(t, db, "n2", "", models.RawStatusNeedsMore, 1, 1, now.AddDate(0, 0, -1))

	rec := get(t, router, "/api/v1/data/notes")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body models.NoteListResponse
	decodeJSON(t, rec, &body)
	if len(body.Data) != 2 || body.Data[0].NoteID != "n2" {
		t.Errorf("notes = %+v, want newest first", body.Data)
	}

	rec = get(t, router, "/api/v1/data/notes?status=published")
	decodeJSON(t, rec, &body)
	if len(body.Data) != 1 || body.Data[0].NoteID != "n1" {
		t.Errorf("filtered notes = %+v", body.Data)
	}

	rec = get(t, router, "/api/v1/data/notes?limit=0")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("limit=0 status = %d, want 422", rec.Code)
	}
}

func TestDataListingsMalformedPagination(t *testing.T) {
	_, router := setupTestServer(t)

	// Malformed values are rejected, not silently defaulted, matching
	// the graph endpoints.
	for _, path := range []string{
		"/api/v1/data/notes?limit=abc",
		"/api/v1/data/notes?offset=abc",
		"/api/v1/data/posts?limit=abc",
		"/api/v1/data/posts?offset=1.5",
	} {
		rec := get(t, router, path)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s status = %d, want 400", path, rec.Code)
		}
		var body models.ErrorResponse
		decodeJSON(t, rec, &body)
		if body.Detail == "" {
			t.Errorf("%s: detail must name the bad parameter", path)
		}
	}
}

func TestDataPosts(t *testing.T) {
	db, router := setupTestServer(t)

	seedPost(t, db, "p1", "alice", 500, time.Now().UTC())

	rec := get(t, router, "/api/v1/data/posts")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body models.PostListResponse
	decodeJSON(t, rec, &body)
	if len(body.Data) != 1 || body.Data[0].PostID != "p1" {
		t.Errorf("posts = %+v", body.Data)
	}
}

func TestSystemAndHealthEndpoints(t *testing.T) {
	_, router := setupTestServer(t)

	rec := get(t, router, "/api/v1/system/ping")
	if rec.Code != http.StatusOK {
		t.Fatalf("ping status = %d", rec.Code)
	}
	var ping map[string]string
	decodeJSON(t, rec, &ping)
	if ping["message"] != "pong" {
		t.Errorf("ping body = %v", ping)
	}

	for _, path := range []string{"/api/v1/health/live", "/api/v1/health/ready"} {
		if rec := get(t, router, path); rec.Code != http.StatusOK {
			t.Errorf("%s status = %d", path, rec.Code)
		}
	}

	rec = get(t, router, "/metrics")
	if rec.Code != http.StatusOK {
		t.Errorf("/metrics status = %d", rec.Code)
	}
}

func TestTruncateName(t *testing.T) {
	long := make([]rune, 450)
	for i := range long {
		long[i] = 'あ'
	}
	got := truncateName(string(long))
	if n := len([]rune(got)); n != maxNameRunes {
		t.Errorf("truncated to %d runes, want %d", n, maxNameRunes)
	}
	if truncateName("short") != "short" {
		t.Error("short names must pass through unchanged")
	}
}
