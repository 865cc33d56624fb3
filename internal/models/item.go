// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package models

import (
	"time"

	"github.com/google/uuid"
)

// ConfidenceTier classifies the quality of a listing-to-item match.
// Tiers are ordered EXACT > HIGH > MEDIUM > LOW > UNCERTAIN.
type ConfidenceTier string

const (
	TierExact     ConfidenceTier = "EXACT"
	TierHigh      ConfidenceTier = "HIGH"
	TierMedium    ConfidenceTier = "MEDIUM"
	TierLow       ConfidenceTier = "LOW"
	TierUncertain ConfidenceTier = "UNCERTAIN"
)

// IsValid reports whether the tier is a known value.
func (t ConfidenceTier) IsValid() bool {
	switch t {
	case TierExact, TierHigh, TierMedium, TierLow, TierUncertain:
		return true
	default:
		return false
	}
}

// Rank returns the tier's ordering, 0 = EXACT (best). Unknown tiers rank
// below UNCERTAIN.
func (t ConfidenceTier) Rank() int {
	switch t {
	case TierExact:
		return 0
	case TierHigh:
		return 1
	case TierMedium:
		return 2
	case TierLow:
		return 3
	case TierUncertain:
		return 4
	default:
		return 5
	}
}

// ReviewState tracks manual review of low-confidence matches.
type ReviewState string

const (
	ReviewUnreviewed ReviewState = "unreviewed"
	ReviewConfirmed  ReviewState = "confirmed"
	ReviewRejected   ReviewState = "rejected"
)

// IsValid reports whether the review state is a known value.
func (s ReviewState) IsValid() bool {
	switch s {
	case ReviewUnreviewed, ReviewConfirmed, ReviewRejected:
		return true
	default:
		return false
	}
}

// CanonicalItem is the deduplicated, cross-platform identity a group of
// listings resolve to: one real-world release.
//
// The Fingerprint is a pure function of the normalized (artist, title,
// year, catalog number) tuple — two listings with the same fingerprint
// always resolve to the same item. Items are created lazily the first time
// a fingerprint is seen and never deleted within a search's lifetime.
// MatchCount and AvgConfidence are running aggregates updated on every
// match.
type CanonicalItem struct {
	ID          uuid.UUID `json:"id"`
	Fingerprint string    `json:"fingerprint"`

	// Ordinal is the item's creation sequence within the store. Candidate
	// scans iterate in ordinal order so fuzzy resolution is deterministic.
	Ordinal uint64 `json:"ordinal"`

	Title         string `json:"title"`
	Artist        string `json:"artist"`
	Year          *int   `json:"year,omitempty"`
	Format        string `json:"format,omitempty"`
	CatalogNumber string `json:"catalog_number,omitempty"`

	MatchCount    int     `json:"match_count"`
	AvgConfidence float64 `json:"avg_confidence"`

	FirstSeenAt time.Time `json:"first_seen_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MatchResult is the edge between one Listing and one CanonicalItem.
// Immutable once created except for the review state.
type MatchResult struct {
	ID        uuid.UUID `json:"id"`
	ListingID uuid.UUID `json:"listing_id"`
	ItemID    uuid.UUID `json:"item_id"`

	Tier  ConfidenceTier `json:"tier"`
	Score float64        `json:"score"` // 0-100

	// Component similarities and attribute agreement flags, kept so a
	// reviewer can see why the score landed where it did.
	TitleSimilarity  float64 `json:"title_similarity"`
	ArtistSimilarity float64 `json:"artist_similarity"`
	YearMatch        bool    `json:"year_match"`
	CatalogMatch     bool    `json:"catalog_match"`
	FormatMatch      bool    `json:"format_match"`

	RequiresReview bool        `json:"requires_review"`
	ReviewState    ReviewState `json:"review_state"`

	CreatedAt time.Time `json:"created_at"`
}
