// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

// Package textnorm provides deterministic text canonicalization for
// identity resolution. Every string comparison in the matching pipeline
// goes through Normalize first so that platform-specific punctuation,
// casing, and filler words ("The Beatles" vs "Beatles, The") do not
// fragment item identities.
package textnorm

import (
	"strings"
	"unicode"
)

// stopWords is the fixed removal set: articles, conjunctions, and short
// prepositions that marketplace titles include inconsistently.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"and": {}, "or": {}, "nor": {}, "but": {},
	"of": {}, "in": {}, "on": {}, "at": {}, "to": {},
	"by": {}, "for": {}, "with": {}, "from": {},
}

// Normalize lowercases the input, strips punctuation, collapses
// whitespace, and removes stop words. It is pure and total: empty input
// yields an empty string, and no input can fail.
func Normalize(text string) string {
	return strings.Join(Tokens(text), " ")
}

// Tokens returns the normalized token sequence for the input, applying
// the same canonicalization as Normalize. Order is preserved.
func Tokens(text string) []string {
	if text == "" {
		return nil
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			// Punctuation and symbols become separators so "AC/DC"
			// tokenizes as "ac dc" rather than fusing.
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
