// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package identity

import (
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 0,
		},
		{
			name: "one empty",
			a:    "Abbey Road",
			b:    "",
			want: 0,
		},
		{
			name: "identical",
			a:    "Abbey Road",
			b:    "Abbey Road",
			want: 100,
		},
		{
			name: "identical after normalization",
			a:    "The Beatles",
			b:    "BEATLES, the!",
			want: 100,
		},
		{
			name: "token subset scores full match",
			a:    "Abbey Road",
			b:    "Abbey Road (Remastered)",
			want: 100,
		},
		{
			name: "reordered tokens score full match",
			a:    "Kind of Blue",
			b:    "Blue, Kind of",
			want: 100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); got != tt.want {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"Abbey Road", "Abbey Road (Remastered)"},
		{"Pink Floyd", "Pink Freud"},
		{"Kind of Blue", "Sketches of Spain"},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilarityRange(t *testing.T) {
	pairs := [][2]string{
		{"Abbey Road", "Let It Be"},
		{"Pink Floyd", "Pink Freud"},
		{"x", "completely different string"},
	}
	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		if got < 0 || got > 100 {
			t.Errorf("Similarity(%q, %q) = %v, out of [0,100]", p[0], p[1], got)
		}
	}
}

func TestSimilarityCloseTypo(t *testing.T) {
	// One substituted rune in a ten-rune string: 90 via the Levenshtein
	// component.
	got := Similarity("pink floyd", "pink flord")
	if got < 85 {
		t.Errorf("Similarity for one-rune typo = %v, want >= 85", got)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"same", "same", 0},
	}
	for _, tt := range tests {
		if got := levenshtein([]rune(tt.a), []rune(tt.b)); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
