// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package textnorm

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty input yields empty string",
			in:   "",
			want: "",
		},
		{
			name: "lowercases and strips punctuation",
			in:   "Abbey Road (Remastered)",
			want: "abbey road remastered",
		},
		{
			name: "removes leading article",
			in:   "The Beatles",
			want: "beatles",
		},
		{
			name: "collapses internal whitespace",
			in:   "  Dark   Side \t of\nthe Moon ",
			want: "dark side moon",
		},
		{
			name: "unicode dashes become separators",
			in:   "The Beatles – Abbey Road",
			want: "beatles abbey road",
		},
		{
			name: "slash-joined names split",
			in:   "AC/DC",
			want: "ac dc",
		},
		{
			name: "only stop words yields empty string",
			in:   "The And Of",
			want: "",
		},
		{
			name: "digits preserved",
			in:   "COL 472336-2",
			want: "col 472336 2",
		},
		{
			name: "trailing comma article form",
			in:   "Beatles, The",
			want: "beatles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"The Beatles – Abbey Road",
		"Pink Floyd: The Wall",
		"miles davis / kind of blue",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "empty input yields nil",
			in:   "",
			want: nil,
		},
		{
			name: "splits and filters",
			in:   "The Rise and Fall of Ziggy Stardust",
			want: []string{"rise", "fall", "ziggy", "stardust"},
		},
		{
			name: "all stop words yields nil",
			in:   "of the and",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tokens(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokens(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
