// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

// Package daterange converts the graph API's period and month-range
// tokens into concrete UTC date boundaries.
//
// Two token forms exist:
//
//   - relative periods: 1week, 1month, 3months, 6months, 1year
//   - absolute month ranges: YYYY-MM_YYYY-MM (e.g. 2025-01_2025-03)
//
// All functions are pure. Maximum-span enforcement is deliberately left
// to callers because the limit differs per endpoint (12 months for
// daily post queries, 24 months for monthly note queries).
package daterange

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors surfaced to the HTTP boundary as 4xx responses.
var (
	// ErrInvalidPeriod indicates a period token outside the allowed set.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidRangeFormat indicates a month-range token that does not
	// parse as two YYYY-MM parts joined by an underscore.
	ErrInvalidRangeFormat = errors.New("invalid range format")

	// ErrInvalidRangeOrder indicates a month range whose start is after
	// its end.
	ErrInvalidRangeOrder = errors.New("invalid range order")

	// ErrRangeTooLarge indicates a month range exceeding the caller's
	// maximum span.
	ErrRangeTooLarge = errors.New("range too large")
)

// periodDays maps each valid period token to its span in calendar days.
var periodDays = map[string]int{
	"1week":   7,
	"1month":  30,
	"3months": 90,
	"6months": 180,
	"1year":   365,
}

// ValidPeriods lists the accepted period tokens in ascending span order.
var ValidPeriods = []string{"1week", "1month", "3months", "6months", "1year"}

// PeriodToRange resolves a relative period token against asOf. The end
// of the range is asOf truncated to its UTC day; the start is chosen so
// the range covers exactly the period's day count, both ends inclusive.
// Tokens are case-sensitive and must match exactly.
func PeriodToRange(period string, asOf time.Time) (start, end time.Time, err error) {
	days, ok := periodDays[period]
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q (expected one of %s)",
			ErrInvalidPeriod, period, strings.Join(ValidPeriods, ", "))
	}
	end = truncateToDay(asOf.UTC())
	start = end.AddDate(0, 0, -(days - 1))
	return start, end, nil
}

// Month is a calendar month in UTC.
type Month struct {
	Year  int
	Month time.Month
}

// String formats the month as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// FirstDay returns midnight UTC on the first day of the month.
func (m Month) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight UTC on the last day of the month.
func (m Month) LastDay() time.Time {
	return m.FirstDay().AddDate(0, 1, -1)
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	t := m.FirstDay().AddDate(0, 1, 0)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Before reports whether m precedes other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// MonthsUntil returns the inclusive month count from m through end.
// It returns 0 when end precedes m.
func (m Month) MonthsUntil(end Month) int {
	n := (end.Year-m.Year)*12 + int(end.Month) - int(m.Month) + 1
	if n < 0 {
		return 0
	}
	return n
}

// ParseMonthRange parses a YYYY-MM_YYYY-MM token into its start and end
// months. The two parts must be zero-padded and joined by exactly one
// underscore; "2024-1_2024-12" is rejected, "2024-01_2024-12" is not.
func ParseMonthRange(token string) (start, end Month, err error) {
	parts := strings.Split(token, "_")
	if len(parts) != 2 {
		return Month{}, Month{}, fmt.Errorf("%w: expected YYYY-MM_YYYY-MM, got %q", ErrInvalidRangeFormat, token)
	}
	if start, err = parseMonth(parts[0]); err != nil {
		return Month{}, Month{}, err
	}
	if end, err = parseMonth(parts[1]); err != nil {
		return Month{}, Month{}, err
	}
	if end.Before(start) {
		return Month{}, Month{}, fmt.Errorf("%w: start month %s is after end month %s",
			ErrInvalidRangeOrder, start, end)
	}
	return start, end, nil
}

// CheckMaxSpan enforces an inclusive month-count limit on a parsed
// range. The limit belongs to the endpoint, not the parser.
func CheckMaxSpan(start, end Month, maxMonths int) error {
	if span := start.MonthsUntil(end); span > maxMonths {
		return fmt.Errorf("%w: range spans %d months, maximum is %d", ErrRangeTooLarge, span, maxMonths)
	}
	return nil
}

// parseMonth parses a single zero-padded YYYY-MM component.
func parseMonth(s string) (Month, error) {
	t, err := time.ParseInLocation("2006-01", s, time.UTC)
	if err != nil || len(s) != 7 {
		return Month{}, fmt.Errorf("%w: invalid month %q (expected YYYY-MM)", ErrInvalidRangeFormat, s)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// truncateToDay drops the time-of-day component, keeping UTC midnight.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
