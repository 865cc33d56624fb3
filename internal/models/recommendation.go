// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package models

import (
	"time"

	"github.com/google/uuid"
)

// DealType classifies why a recommendation was generated.
type DealType string

const (
	DealBestPrice          DealType = "BEST_PRICE"
	DealMultiItem          DealType = "MULTI_ITEM_DEAL"
	DealConditionValue     DealType = "CONDITION_VALUE"
	DealLocationPreference DealType = "LOCATION_PREFERENCE"
	DealHighFeedback       DealType = "HIGH_FEEDBACK"
)

// IsValid reports whether the deal type is a known value.
func (t DealType) IsValid() bool {
	switch t {
	case DealBestPrice, DealMultiItem, DealConditionValue,
		DealLocationPreference, DealHighFeedback:
		return true
	default:
		return false
	}
}

// DealQuality buckets a composite score into a human-facing label.
type DealQuality string

const (
	QualityExcellent DealQuality = "EXCELLENT"
	QualityVeryGood  DealQuality = "VERY_GOOD"
	QualityGood      DealQuality = "GOOD"
	QualityFair      DealQuality = "FAIR"
	QualityPoor      DealQuality = "POOR"
)

// IsValid reports whether the quality bucket is a known value.
func (q DealQuality) IsValid() bool {
	switch q {
	case QualityExcellent, QualityVeryGood, QualityGood, QualityFair, QualityPoor:
		return true
	default:
		return false
	}
}

// DealRecommendation is one ranked, explainable purchase suggestion.
//
// ListingIDs is the set of listings the deal covers. It never contains a
// listing flagged in_collection — the generator filters every rule's
// output, so the invariant holds regardless of which rule produced the
// recommendation.
type DealRecommendation struct {
	ID         uuid.UUID `json:"id"`
	AnalysisID uuid.UUID `json:"analysis_id"`
	SellerID   uuid.UUID `json:"seller_id"`

	Type    DealType    `json:"type"`
	Quality DealQuality `json:"quality"`
	Score   float64     `json:"score"`

	ItemCount        int     `json:"item_count"`
	TotalValue       float64 `json:"total_value"`
	EstimatedCost    float64 `json:"estimated_cost"`    // value + shipping
	EstimatedSavings float64 `json:"estimated_savings"` // >= 0

	Title       string `json:"title"`
	Description string `json:"description"`
	Reason      string `json:"reason"`

	ListingIDs []uuid.UUID `json:"listing_ids"`

	CreatedAt time.Time `json:"created_at"`
}
