// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package identity

import (
	"testing"

	"github.com/tomtom215/cratedigger/internal/models"
)

func TestTierForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  models.ConfidenceTier
	}{
		{100, models.TierExact},
		{95, models.TierExact},
		{94.99, models.TierHigh},
		{85, models.TierHigh},
		{84.99, models.TierMedium},
		{70, models.TierMedium},
		{69.99, models.TierLow},
		{50, models.TierLow},
		{49.99, models.TierUncertain},
		{0, models.TierUncertain},
	}
	for _, tt := range tests {
		if got := TierForScore(tt.score); got != tt.want {
			t.Errorf("TierForScore(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestRequiresReview(t *testing.T) {
	tests := []struct {
		tier models.ConfidenceTier
		want bool
	}{
		{models.TierExact, false},
		{models.TierHigh, false},
		{models.TierMedium, false},
		{models.TierLow, true},
		{models.TierUncertain, true},
	}
	for _, tt := range tests {
		if got := RequiresReview(tt.tier); got != tt.want {
			t.Errorf("RequiresReview(%v) = %v, want %v", tt.tier, got, tt.want)
		}
	}
}

func TestScoreMatchFullAgreement(t *testing.T) {
	year := 1969
	item := &models.CanonicalItem{
		Title:         "Abbey Road",
		Artist:        "The Beatles",
		Year:          &year,
		Format:        "Vinyl",
		CatalogNumber: "PCS 7088",
	}
	listing := &models.Listing{
		Title:         "Abbey Road",
		Artist:        "The Beatles",
		Year:          &year,
		Format:        "Vinyl",
		CatalogNumber: "PCS 7088",
	}

	tier, score, comp := ScoreMatch(item, listing)
	if score != 100 {
		t.Errorf("score = %v, want 100 (capped)", score)
	}
	if tier != models.TierExact {
		t.Errorf("tier = %v, want %v", tier, models.TierExact)
	}
	if !comp.YearMatch || !comp.CatalogMatch || !comp.FormatMatch {
		t.Errorf("components = %+v, want all attribute matches true", comp)
	}
}

func TestScoreMatchRemasterVariant(t *testing.T) {
	year := 1969
	item := &models.CanonicalItem{
		Title:  "Abbey Road",
		Artist: "The Beatles",
		Year:   &year,
	}
	listing := &models.Listing{
		Title:  "Abbey Road (Remastered)",
		Artist: "The Beatles",
		Year:   &year,
	}

	tier, score, comp := ScoreMatch(item, listing)
	if score != 90 {
		t.Errorf("score = %v, want 90 (title 100, artist 100, year bonus)", score)
	}
	if tier != models.TierHigh {
		t.Errorf("tier = %v, want %v", tier, models.TierHigh)
	}
	if !comp.YearMatch {
		t.Error("YearMatch = false, want true")
	}
	if comp.CatalogMatch || comp.FormatMatch {
		t.Errorf("components = %+v, want no catalog/format match for absent attributes", comp)
	}
}

func TestScoreMatchUnrelated(t *testing.T) {
	item := &models.CanonicalItem{Title: "Abbey Road", Artist: "The Beatles"}
	listing := &models.Listing{Title: "Trans-Europe Express", Artist: "Kraftwerk"}

	tier, score, _ := ScoreMatch(item, listing)
	if score >= ThresholdMedium {
		t.Errorf("score = %v for unrelated items, want < %v", score, ThresholdMedium)
	}
	if tier == models.TierExact || tier == models.TierHigh {
		t.Errorf("tier = %v for unrelated items", tier)
	}
}

func TestYearsMatch(t *testing.T) {
	y1969, y1970, y1975 := 1969, 1970, 1975
	tests := []struct {
		name string
		a, b *int
		want bool
	}{
		{"both absent is neutral-true", nil, nil, true},
		{"one absent", &y1969, nil, false},
		{"exact", &y1969, &y1969, true},
		{"off by one", &y1969, &y1970, true},
		{"off by one reversed", &y1970, &y1969, true},
		{"too far apart", &y1969, &y1975, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := yearsMatch(tt.a, tt.b); got != tt.want {
				t.Errorf("yearsMatch = %v, want %v", got, tt.want)
			}
		})
	}
}
