// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package models

import (
	"github.com/google/uuid"
)

// Listing represents one externally observed marketplace offer for a
// physical-media item. Listings arrive pre-fetched and normalized from the
// collection layer and are read-only to the analysis core; each listing is
// owned by the search run that produced it.
//
// Key Fields:
//   - Platform/ExternalID: the marketplace identity of the offer. The
//     collection layer guarantees (search, platform, external id) is unique.
//   - Title/Artist/Year/Format/CatalogNumber: free-form item attributes used
//     for identity resolution. Any of them may be empty or absent.
//   - InCollection/InWantlist: membership flags against the user's library.
//     The two flags are independent; a listing may carry both.
//
// JSON serialization uses omitempty for optional pointer fields to keep
// snapshot files compact.
type Listing struct {
	ID       uuid.UUID `json:"id"`
	SearchID uuid.UUID `json:"search_id"`

	Platform   string `json:"platform" validate:"required,lowercase"`
	ExternalID string `json:"external_id" validate:"required"`

	// Item attributes (noisy, differently shaped per platform)
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	Year          *int   `json:"year,omitempty" validate:"omitempty,min=1000,max=2100"`
	Format        string `json:"format,omitempty"`
	CatalogNumber string `json:"catalog_number,omitempty"`

	Price     float64 `json:"price" validate:"min=0"`
	Currency  string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	Condition string  `json:"condition,omitempty"`

	Seller SellerAttrs `json:"seller"`

	InCollection bool `json:"in_collection"`
	InWantlist   bool `json:"in_wantlist"`
}

// SellerAttrs carries the raw seller attributes observed on a listing.
// They are upserted into the seller registry; the listing keeps the raw
// observation for auditability.
type SellerAttrs struct {
	PlatformSellerID string `json:"platform_seller_id" validate:"required"`
	Name             string `json:"name"`
	Location         string `json:"location,omitempty"`

	// Reputation inputs. Pointers distinguish "not reported by the
	// platform" from a reported zero.
	FeedbackScore       *float64 `json:"feedback_score,omitempty" validate:"omitempty,min=0"`
	FeedbackCount       *int     `json:"feedback_count,omitempty" validate:"omitempty,min=0"`
	PositiveFeedbackPct *float64 `json:"positive_feedback_pct,omitempty" validate:"omitempty,min=0,max=100"`

	ShipsInternational bool     `json:"ships_international,omitempty"`
	ShippingEstimate   *float64 `json:"shipping_estimate,omitempty" validate:"omitempty,min=0"`

	// Metadata holds platform-specific attributes that the core treats as
	// opaque (storefront URLs, badges, etc.).
	Metadata map[string]string `json:"metadata,omitempty"`
}

// HasPrice reports whether the listing carries usable price data.
func (l *Listing) HasPrice() bool {
	return l.Price > 0
}
