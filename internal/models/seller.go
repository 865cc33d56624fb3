// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package models

import (
	"time"

	"github.com/google/uuid"
)

// RegionCode is the coarse geographic bucket used for shipping estimates
// and location-preference scoring.
type RegionCode string

const (
	RegionUS    RegionCode = "US"
	RegionCA    RegionCode = "CA"
	RegionEU    RegionCode = "EU"
	RegionUK    RegionCode = "UK"
	RegionOther RegionCode = "OTHER"
)

// IsValid reports whether the region code is a known value.
func (r RegionCode) IsValid() bool {
	switch r {
	case RegionUS, RegionCA, RegionEU, RegionUK, RegionOther:
		return true
	default:
		return false
	}
}

// Seller is the registry record for one marketplace seller. Identity is
// the (Platform, PlatformSellerID) pair; those fields are immutable.
// Mutable fields are refreshed with the latest observation on every
// sighting, and the region code is recomputed from the latest location.
type Seller struct {
	ID uuid.UUID `json:"id"`

	// Identity (immutable after creation)
	Platform         string `json:"platform"`
	PlatformSellerID string `json:"platform_seller_id"`

	Name     string     `json:"name"`
	Location string     `json:"location,omitempty"`
	Region   RegionCode `json:"region"`

	FeedbackScore       *float64 `json:"feedback_score,omitempty"`
	FeedbackCount       *int     `json:"feedback_count,omitempty"`
	PositiveFeedbackPct *float64 `json:"positive_feedback_pct,omitempty"`

	ShipsInternational bool     `json:"ships_international"`
	ShippingEstimate   *float64 `json:"shipping_estimate,omitempty"`

	Metadata map[string]string `json:"metadata,omitempty"`

	FirstSeenAt time.Time `json:"first_seen_at"`
	LastSeenAt  time.Time `json:"last_seen_at"`
}

// HasFeedbackData reports whether any reputation input was observed.
func (s *Seller) HasFeedbackData() bool {
	return s.FeedbackScore != nil || s.FeedbackCount != nil || s.PositiveFeedbackPct != nil
}
