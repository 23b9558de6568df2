// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package validation

import (
	"strings"
	"testing"
)

type limitQuery struct {
	Limit int `validate:"min=1,max=1000"`
}

type statusQuery struct {
	Status string `validate:"omitempty,oneof=all published evaluating unpublished temporarilyPublished"`
}

func TestValidateStructPasses(t *testing.T) {
	for _, limit := range []int{1, 200, 1000} {
		if err := ValidateStruct(&limitQuery{Limit: limit}); err != nil {
			t.Errorf("limit %d should validate: %v", limit, err)
		}
	}
	for _, status := range []string{"", "all", "published", "temporarilyPublished"} {
		if err := ValidateStruct(&statusQuery{Status: status}); err != nil {
			t.Errorf("status %q should validate: %v", status, err)
		}
	}
}

func TestValidateStructFails(t *testing.T) {
	err := ValidateStruct(&limitQuery{Limit: 1001})
	if err == nil {
		t.Fatal("limit 1001 should fail validation")
	}
	if len(err.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(err.Errors()))
	}
	fe := err.Errors()[0]
	if fe.Field() != "Limit" || fe.Tag() != "max" || fe.Param() != "1000" {
		t.Errorf("unexpected field error: field=%s tag=%s param=%s", fe.Field(), fe.Tag(), fe.Param())
	}
	if !strings.Contains(err.Detail(), "at most 1000") {
		t.Errorf("Detail = %q, want mention of the limit", err.Detail())
	}

	if err := ValidateStruct(&limitQuery{Limit: 0}); err == nil {
		t.Error("limit 0 should fail validation")
	}
	if err := ValidateStruct(&statusQuery{Status: "deleted"}); err == nil {
		t.Error("unknown status should fail validation")
	}
}

func TestValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator must return the same instance")
	}
}
