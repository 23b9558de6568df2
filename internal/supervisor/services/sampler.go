// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package services

import (
	"context"
	"time"

	"github.com/notelens/notelens/internal/database"
	"github.com/notelens/notelens/internal/logging"
	"github.com/notelens/notelens/internal/metrics"
)

// DatasetSamplerService periodically refreshes the dataset size gauges
// from the store. The ingestion pipeline writes out of band, so the
// gauges are a sampled view, not an exact live count.
type DatasetSamplerService struct {
	db       *database.DB
	interval time.Duration
}

// NewDatasetSamplerService creates a sampler refreshing every interval.
func NewDatasetSamplerService(db *database.DB, interval time.Duration) *DatasetSamplerService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &DatasetSamplerService{db: db, interval: interval}
}

// Serve implements suture.Service. A failed sample is counted and
// logged but does not stop the service.
func (s *DatasetSamplerService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sample(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sample(ctx)
		}
	}
}

func (s *DatasetSamplerService) sample(ctx context.Context) {
	notes, err := s.db.CountNotes(ctx)
	if err != nil {
		metrics.DatasetSampleErrors.Inc()
		logging.Warn().Err(err).Msg("Failed to sample note count")
		return
	}
	posts, err := s.db.CountPosts(ctx)
	if err != nil {
		metrics.DatasetSampleErrors.Inc()
		logging.Warn().Err(err).Msg("Failed to sample post count")
		return
	}

	metrics.DatasetNotes.Set(float64(notes))
	metrics.DatasetPosts.Set(float64(posts))
}

// String implements fmt.Stringer for supervisor logging.
func (s *DatasetSamplerService) String() string {
	return "dataset-sampler"
}
