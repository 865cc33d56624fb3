// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package identity

import (
	"github.com/tomtom215/cratedigger/internal/models"
)

// Confidence tier thresholds (inclusive lower bounds).
const (
	ThresholdExact  = 95.0
	ThresholdHigh   = 85.0
	ThresholdMedium = 70.0
	ThresholdLow    = 50.0
)

// Scoring weights and bonuses for listing-to-item matches.
const (
	titleWeight  = 0.4
	artistWeight = 0.4

	yearBonus    = 10.0
	catalogBonus = 15.0
	formatBonus  = 5.0

	catalogSimCutoff = 80.0
	formatSimCutoff  = 70.0
)

// MatchComponents carries the per-attribute evidence behind a match score.
type MatchComponents struct {
	TitleSimilarity  float64
	ArtistSimilarity float64
	YearMatch        bool
	CatalogMatch     bool
	FormatMatch      bool
}

// ScoreMatch scores how well a listing matches a canonical item.
//
// The base score is the weighted title and artist similarity; year,
// catalog, and format agreement add fixed bonuses. Years match within ±1,
// and two absent years are treated as neutral-true (absence is not
// evidence of a mismatch). The final score is capped at 100.
func ScoreMatch(item *models.CanonicalItem, listing *models.Listing) (models.ConfidenceTier, float64, MatchComponents) {
	comp := MatchComponents{
		TitleSimilarity:  Similarity(item.Title, listing.Title),
		ArtistSimilarity: Similarity(item.Artist, listing.Artist),
	}

	score := titleWeight*comp.TitleSimilarity + artistWeight*comp.ArtistSimilarity

	if yearsMatch(item.Year, listing.Year) {
		comp.YearMatch = true
		score += yearBonus
	}
	if Similarity(item.CatalogNumber, listing.CatalogNumber) > catalogSimCutoff {
		comp.CatalogMatch = true
		score += catalogBonus
	}
	if Similarity(item.Format, listing.Format) > formatSimCutoff {
		comp.FormatMatch = true
		score += formatBonus
	}

	if score > 100 {
		score = 100
	}
	return TierForScore(score), score, comp
}

// TierForScore classifies a 0-100 match score into a confidence tier.
func TierForScore(score float64) models.ConfidenceTier {
	switch {
	case score >= ThresholdExact:
		return models.TierExact
	case score >= ThresholdHigh:
		return models.TierHigh
	case score >= ThresholdMedium:
		return models.TierMedium
	case score >= ThresholdLow:
		return models.TierLow
	default:
		return models.TierUncertain
	}
}

// RequiresReview reports whether matches in the given tier need manual
// review before they are trusted.
func RequiresReview(tier models.ConfidenceTier) bool {
	return tier == models.TierLow || tier == models.TierUncertain
}

// yearsMatch applies the ±1 tolerance. Both absent is neutral-true; one
// absent is false.
func yearsMatch(a, b *int) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	diff := *a - *b
	return diff >= -1 && diff <= 1
}
