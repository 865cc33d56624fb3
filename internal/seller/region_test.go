// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package seller

import (
	"testing"

	"github.com/tomtom215/cratedigger/internal/models"
)

func TestNormalizeRegion(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     models.RegionCode
	}{
		{"empty", "", models.RegionOther},
		{"whitespace only", "   ", models.RegionOther},

		{"us state abbreviation", "Portland, OR", models.RegionUS},
		{"ambiguous CA is US state", "Sacramento, CA", models.RegionUS},
		{"us country token", "Chicago, USA", models.RegionUS},
		{"us spelled out", "Brooklyn, United States", models.RegionUS},
		{"us dotted", "Austin, U.S.", models.RegionUS},

		{"canada country", "Toronto, Canada", models.RegionCA},
		{"canadian province", "Montreal, QC", models.RegionCA},
		{"ontario abbreviation", "Ottawa, ON", models.RegionCA},

		{"uk token", "London, UK", models.RegionUK},
		{"gb token", "Manchester, GB", models.RegionUK},
		{"england spelled out", "Bristol, England", models.RegionUK},
		{"northern ireland is UK not EU", "Belfast, Northern Ireland", models.RegionUK},

		{"germany", "Berlin, Germany", models.RegionEU},
		{"france", "Paris, France", models.RegionEU},
		{"ireland is EU", "Dublin, Ireland", models.RegionEU},
		{"eu token", "Somewhere, EU", models.RegionEU},

		{"japan unrecognized", "Tokyo, Japan", models.RegionOther},
		{"australia unrecognized", "Sydney, Australia", models.RegionOther},
		{"free text noise", "ships from my garage", models.RegionOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRegion(tt.location); got != tt.want {
				t.Errorf("NormalizeRegion(%q) = %v, want %v", tt.location, got, tt.want)
			}
		})
	}
}

func TestSplitLocationTokens(t *testing.T) {
	got := splitLocationTokens("PORTLAND, OR / USA")
	want := []string{"PORTLAND", "OR", "USA"}
	if len(got) != len(want) {
		t.Fatalf("splitLocationTokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
