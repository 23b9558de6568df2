// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package database

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/notelens/notelens/internal/logging"
	"github.com/notelens/notelens/internal/models"
)

// SeedMockData populates an empty store with sample notes and posts
// spread over the past year. Intended for demos and screenshot capture
// only; it refuses to touch a store that already holds data.
func (db *DB) SeedMockData(ctx context.Context) error {
	ctx = ensureContext(ctx)

	noteCount, err := db.CountNotes(ctx)
	if err != nil {
		return err
	}
	if noteCount > 0 {
		logging.Info().Int64("notes", noteCount).Msg("Store already populated, skipping mock data seed")
		return nil
	}

	logging.Info().Msg("Seeding store with mock notes and posts...")

	const (
		numPosts      = 120
		numNotes      = 200
		daysOfHistory = 365
	)

	rng := rand.New(rand.NewSource(42)) //nolint:gosec // deterministic demo data

	authors := []string{
		"newsdesk_global", "factwatch", "science_daily", "policy_lens",
		"health_monitor", "market_pulse", "civic_signal", "open_data_jp",
	}
	summaries := []string{
		"The figure cited is from a 2019 report and has since been revised.",
		"This image is from a different event; the original was taken in 2021.",
		"The quote is accurate but omits the surrounding context.",
		"Official statistics contradict the claim made in this post.",
		"The study referenced was retracted by the journal.",
		"This is satire originally published by a comedy site.",
	}
	rawStatuses := []string{
		models.RawStatusHelpful,
		models.RawStatusNeedsMore,
		models.RawStatusNotHelpful,
	}
	languages := []string{"en", "ja", "es", "pt", "fr"}

	now := time.Now().UTC()

	postIDs := make([]string, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		post := models.Post{
			PostID:     uuid.NewString(),
			AuthorName: authors[rng.Intn(len(authors))],
			Text:       fmt.Sprintf("Sample post %d about a trending claim.", i+1),
			CreatedAt:  now.AddDate(0, 0, -rng.Intn(daysOfHistory)),
		}
		// Roughly a fifth of posts have no reported engagement.
		if rng.Intn(5) != 0 {
			like := rng.Intn(50000)
			repost := rng.Intn(10000)
			impression := rng.Intn(2000000)
			post.LikeCount = &like
			post.RepostCount = &repost
			post.ImpressionCount = &impression
		}

		if err := db.InsertPost(ctx, post); err != nil {
			return err
		}
		postIDs = append(postIDs, post.PostID)
	}

	for i := 0; i < numNotes; i++ {
		note := models.Note{
			NoteID:          uuid.NewString(),
			Language:        languages[rng.Intn(len(languages))],
			Summary:         summaries[rng.Intn(len(summaries))],
			RawStatus:       rawStatuses[rng.Intn(len(rawStatuses))],
			HasBeenHelpful:  rng.Intn(3) == 0,
			HelpfulCount:    rng.Intn(500),
			NotHelpfulCount: rng.Intn(200),
			CreatedAt:       now.AddDate(0, 0, -rng.Intn(daysOfHistory)),
		}
		// Most notes link to a post; some arrive before the post is known.
		if rng.Intn(10) != 0 {
			note.PostID = &postIDs[rng.Intn(len(postIDs))]
		}

		if err := db.InsertNote(ctx, note); err != nil {
			return err
		}
	}

	logging.Info().Int("posts", numPosts).Int("notes", numNotes).Msg("Mock data seeded")
	return nil
}
