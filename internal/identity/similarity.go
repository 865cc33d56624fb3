// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package identity

import (
	"sort"
	"strings"

	"github.com/tomtom215/cratedigger/internal/textnorm"
)

// Similarity scores two strings on a 0-100 scale. Inputs are normalized
// first; an exact post-normalization match short-circuits to 100 and an
// empty side scores 0. Otherwise the score is the better of a Levenshtein
// ratio and a token-set ratio — the token-set component keeps suffix noise
// like "(Remastered)" or reordered word forms from sinking otherwise
// identical titles. Symmetric by construction.
func Similarity(a, b string) float64 {
	na := textnorm.Normalize(a)
	nb := textnorm.Normalize(b)

	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 100
	}

	score := levenshteinRatio(na, nb)
	if ts := tokenSetRatio(na, nb); ts > score {
		score = ts
	}
	return score
}

// levenshteinRatio is the normalized edit-distance ratio scaled to 0-100.
func levenshteinRatio(a, b string) float64 {
	if a == b {
		return 100
	}
	ra := []rune(a)
	rb := []rune(b)
	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}
	if longer == 0 {
		return 100
	}
	dist := levenshtein(ra, rb)
	return (1 - float64(dist)/float64(longer)) * 100
}

// levenshtein computes edit distance with a two-row dynamic program.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// tokenSetRatio compares the sorted token sets of both strings. The
// intersection is scored against each side's full token set; when one
// side's tokens are a subset of the other's the ratio is 100. This mirrors
// the token_set_ratio family of fuzzy-matching scores.
func tokenSetRatio(a, b string) float64 {
	ta := tokenSet(a)
	tb := tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	var common, onlyA, onlyB []string
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			common = append(common, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range tb {
		if _, ok := ta[tok]; !ok {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(common, " ")
	full1 := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	full2 := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	best := levenshteinRatio(full1, full2)
	if base != "" {
		if r := levenshteinRatio(base, full1); r > best {
			best = r
		}
		if r := levenshteinRatio(base, full2); r > best {
			best = r
		}
	}
	return best
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range textnorm.Tokens(s) {
		set[tok] = struct{}{}
	}
	return set
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
