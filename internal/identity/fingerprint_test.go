// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package identity

import (
	"testing"
)

func TestFingerprintDeterministic(t *testing.T) {
	year := 1969
	a := Fingerprint("Abbey Road", "The Beatles", &year, "PCS 7088")
	b := Fingerprint("Abbey Road", "The Beatles", &year, "PCS 7088")
	if a != b {
		t.Errorf("same inputs produced different fingerprints: %q != %q", a, b)
	}
	if len(a) != 32 {
		t.Errorf("fingerprint length = %d, want 32", len(a))
	}
}

func TestFingerprintNormalizationInvariance(t *testing.T) {
	year := 1969
	tests := []struct {
		name             string
		titleA, titleB   string
		artistA, artistB string
	}{
		{
			name:    "case insensitive",
			titleA:  "Abbey Road",
			titleB:  "ABBEY ROAD",
			artistA: "The Beatles",
			artistB: "the beatles",
		},
		{
			name:    "punctuation and articles stripped",
			titleA:  "Abbey Road",
			titleB:  "Abbey  Road!",
			artistA: "The Beatles",
			artistB: "Beatles, The",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Fingerprint(tt.titleA, tt.artistA, &year, "")
			b := Fingerprint(tt.titleB, tt.artistB, &year, "")
			if a != b {
				t.Errorf("equivalent inputs produced different fingerprints: %q != %q", a, b)
			}
		})
	}
}

func TestFingerprintDistinguishes(t *testing.T) {
	y1969, y1970 := 1969, 1970

	base := Fingerprint("Abbey Road", "The Beatles", &y1969, "")
	tests := []struct {
		name string
		got  string
	}{
		{"different title", Fingerprint("Let It Be", "The Beatles", &y1969, "")},
		{"different artist", Fingerprint("Abbey Road", "Pink Floyd", &y1969, "")},
		{"different year", Fingerprint("Abbey Road", "The Beatles", &y1970, "")},
		{"absent year", Fingerprint("Abbey Road", "The Beatles", nil, "")},
		{"catalog number added", Fingerprint("Abbey Road", "The Beatles", &y1969, "PCS 7088")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got == base {
				t.Errorf("fingerprint collision with base for %s", tt.name)
			}
		})
	}
}
