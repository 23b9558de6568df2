// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package models

import "testing"

func TestDeriveNoteStatus(t *testing.T) {
	tests := []struct {
		name           string
		rawStatus      string
		hasBeenHelpful bool
		want           NoteStatus
	}{
		{"helpful", RawStatusHelpful, false, StatusPublished},
		{"helpful with history", RawStatusHelpful, true, StatusPublished},
		{"needs more ratings", RawStatusNeedsMore, false, StatusEvaluating},
		{"needs more after helpful", RawStatusNeedsMore, true, StatusTemporarilyPublished},
		{"not helpful", RawStatusNotHelpful, false, StatusUnpublished},
		{"not helpful after helpful", RawStatusNotHelpful, true, StatusTemporarilyPublished},
		{"unknown raw status", "SOMETHING_ELSE", false, StatusUnpublished},
		{"unknown raw status with history", "SOMETHING_ELSE", true, StatusUnpublished},
		{"empty raw status", "", false, StatusUnpublished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveNoteStatus(tt.rawStatus, tt.hasBeenHelpful); got != tt.want {
				t.Errorf("DeriveNoteStatus(%q, %v) = %q, want %q",
					tt.rawStatus, tt.hasBeenHelpful, got, tt.want)
			}
		})
	}
}

func TestStatusFilter(t *testing.T) {
	for _, f := range []StatusFilter{"", "all", "published", "evaluating", "unpublished", "temporarilyPublished"} {
		if !f.Valid() {
			t.Errorf("filter %q should be valid", f)
		}
	}
	for _, f := range []StatusFilter{"Published", "PUBLISHED", "deleted", "temporarily_published"} {
		if f.Valid() {
			t.Errorf("filter %q should be invalid", f)
		}
	}

	if !StatusFilter("").IsAll() || !StatusFilter("all").IsAll() {
		t.Error("empty and \"all\" filters must report IsAll")
	}
	if StatusFilter("published").IsAll() {
		t.Error("status filter must not report IsAll")
	}
}

func TestMonthlyNoteCountTotal(t *testing.T) {
	m := MonthlyNoteCount{Published: 3, Evaluating: 2, Unpublished: 1, TemporarilyPublished: 4}
	if got := m.Total(); got != 10 {
		t.Errorf("Total = %d, want 10", got)
	}
	if got := (MonthlyNoteCount{}).Total(); got != 0 {
		t.Errorf("empty Total = %d, want 0", got)
	}
}

func TestNoteStatusMethod(t *testing.T) {
	n := Note{RawStatus: RawStatusNeedsMore, HasBeenHelpful: true}
	if got := n.Status(); got != StatusTemporarilyPublished {
		t.Errorf("Status = %q, want %q", got, StatusTemporarilyPublished)
	}
}
