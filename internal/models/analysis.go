// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package models

import (
	"time"

	"github.com/google/uuid"
)

// SearchAnalysis is the per-search summary produced once a search's
// listings are fully collected. Finalized at the end of analysis and never
// mutated afterward.
//
// Price statistics are computed excluding listings flagged in_collection:
// an item already owned should not distort the market picture for items
// the user could still buy. Min/Max/Avg are nil when no non-collection
// listing carries price data.
//
// WantlistMatches and CollectionDuplicates are independent tallies: a
// listing flagged both increments both. NewDiscoveries is the plain
// subtraction total - wantlist - duplicates, which can go negative for
// small result sets with double-flagged listings. The subtraction is
// preserved as-is rather than clamped so downstream consumers see the
// double counting instead of a silently adjusted number.
type SearchAnalysis struct {
	ID       uuid.UUID `json:"id"`
	SearchID uuid.UUID `json:"search_id"`

	TotalListings    int `json:"total_listings"`
	DistinctSellers  int `json:"distinct_sellers"`
	MultiItemSellers int `json:"multi_item_sellers"` // sellers with >= 2 listings

	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
	AvgPrice *float64 `json:"avg_price,omitempty"`

	WantlistMatches      int `json:"wantlist_matches"`
	CollectionDuplicates int `json:"collection_duplicates"`
	NewDiscoveries       int `json:"new_discoveries"`

	CompletedAt time.Time `json:"completed_at"`
}

// SellerAnalysis is the per-(search, seller) scoring row. One exists for
// every seller with at least one listing in the search. Rank is unique
// within the search analysis, 1 = best overall score.
type SellerAnalysis struct {
	ID         uuid.UUID `json:"id"`
	AnalysisID uuid.UUID `json:"analysis_id"`
	SellerID   uuid.UUID `json:"seller_id"`

	// Denormalized for display and persistence
	Platform   string `json:"platform"`
	SellerName string `json:"seller_name"`

	ItemCount            int     `json:"item_count"`
	WantlistItems        int     `json:"wantlist_items"`
	CollectionDuplicates int     `json:"collection_duplicates"`
	TotalValue           float64 `json:"total_value"`
	AvgValue             float64 `json:"avg_value"`
	EstimatedShipping    float64 `json:"estimated_shipping"`

	// Sub-scores, each 0-100
	PriceCompetitiveness float64 `json:"price_competitiveness"`
	InventoryDepth       float64 `json:"inventory_depth"`
	Reputation           float64 `json:"reputation"`
	LocationPreference   float64 `json:"location_preference"`

	// Weighted composite. The sub-score weights sum to 0.90, capping the
	// achievable range at 90 — intentional as-built behavior; downstream
	// deal-quality buckets are tuned against this range.
	OverallScore float64 `json:"overall_score"`

	Rank int `json:"rank"`
}
