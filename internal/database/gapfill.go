// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package database

import (
	"time"

	"github.com/notelens/notelens/internal/daterange"
)

// fillDailyGaps walks day by day from start through end inclusive and
// assembles the final time series: the queried row when one exists for
// the day, otherwise build(date) for a zero-valued placeholder. Charts
// rely on every bucket being present so that empty days render as
// troughs instead of being skipped.
func fillDailyGaps[T any](rows map[string]T, start, end time.Time, build func(date string) T) []T {
	size := int(end.Sub(start).Hours()/24) + 1
	if size < 0 {
		size = 0
	}
	out := make([]T, 0, size)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		if row, ok := rows[date]; ok {
			out = append(out, row)
		} else {
			out = append(out, build(date))
		}
	}
	return out
}

// fillMonthlyGaps is the month-granularity counterpart of
// fillDailyGaps, keyed by YYYY-MM.
func fillMonthlyGaps[T any](rows map[string]T, start, end daterange.Month, build func(month string) T) []T {
	out := make([]T, 0, start.MonthsUntil(end))
	for m := start; !end.Before(m); m = m.Next() {
		key := m.String()
		if row, ok := rows[key]; ok {
			out = append(out, row)
		} else {
			out = append(out, build(key))
		}
	}
	return out
}
