// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package recommend

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/cratedigger/internal/analysis"
	"github.com/tomtom215/cratedigger/internal/logging"
	"github.com/tomtom215/cratedigger/internal/models"
	"github.com/tomtom215/cratedigger/internal/seller"
)

func newTestGenerator() *Generator {
	return NewGenerator(logging.NewTestLogger(&bytes.Buffer{}))
}

func sellerListing(sellerID string, price float64, wantlist, collection bool) *models.Listing {
	return &models.Listing{
		ID:           uuid.New(),
		Platform:     "discogs",
		ExternalID:   uuid.NewString(),
		Title:        "Abbey Road",
		Artist:       "The Beatles",
		Price:        price,
		InWantlist:   wantlist,
		InCollection: collection,
		Seller: models.SellerAttrs{
			PlatformSellerID: sellerID,
			Name:             sellerID,
			Location:         "Portland, OR",
		},
	}
}

func aggregate(t *testing.T, listings []*models.Listing, preferred *models.RegionCode) *analysis.Result {
	t.Helper()
	return analysis.Aggregate(analysis.Input{
		SearchID:        uuid.New(),
		Listings:        listings,
		PreferredRegion: preferred,
	}, seller.NewRegistry())
}

func TestGenerateMultiItemDeal(t *testing.T) {
	us := models.RegionUS
	res := aggregate(t, []*models.Listing{
		sellerListing("s1", 20, true, false),
		sellerListing("s1", 25, true, false),
		sellerListing("s1", 15, false, false),
	}, &us)

	recs := newTestGenerator().Generate(res)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	rec := recs[0]
	if rec.Type != models.DealMultiItem {
		t.Errorf("Type = %v, want %v", rec.Type, models.DealMultiItem)
	}
	if rec.ItemCount != 3 {
		t.Errorf("ItemCount = %d, want 3", rec.ItemCount)
	}
	// Domestic US: three single shipments cost 3*5.99, the bundle costs
	// 5.99*1.4; the savings must be positive.
	if rec.EstimatedSavings <= 0 {
		t.Errorf("EstimatedSavings = %v, want > 0", rec.EstimatedSavings)
	}
	if rec.TotalValue != 60 {
		t.Errorf("TotalValue = %v, want 60", rec.TotalValue)
	}
	if rec.EstimatedCost <= rec.TotalValue {
		t.Errorf("EstimatedCost = %v, want value plus shipping", rec.EstimatedCost)
	}
}

func TestGenerateNeverRecommendsOwnedListings(t *testing.T) {
	owned := sellerListing("s1", 10, true, true)
	res := aggregate(t, []*models.Listing{
		owned,
		sellerListing("s1", 20, true, false),
		sellerListing("s1", 25, true, false),
	}, nil)

	recs := newTestGenerator().Generate(res)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	for _, id := range recs[0].ListingIDs {
		if id == owned.ID {
			t.Fatal("recommendation covers an in-collection listing")
		}
	}
	if recs[0].ItemCount != 2 {
		t.Errorf("ItemCount = %d, want 2 (owned listing excluded)", recs[0].ItemCount)
	}
}

func TestGenerateSkipsCollectionOnlySeller(t *testing.T) {
	res := aggregate(t, []*models.Listing{
		sellerListing("s1", 10, false, true),
		sellerListing("s1", 12, false, true),
	}, nil)

	recs := newTestGenerator().Generate(res)
	if len(recs) != 0 {
		t.Errorf("got %d recommendations for a collection-only seller, want 0", len(recs))
	}
}

func TestGenerateRulePriority(t *testing.T) {
	// Seller qualifies for both the multi-item rule (2 want-list items)
	// and the high-feedback rule; multi-item must win.
	score := 99.5
	count := 2500
	pct := 99.8
	l1 := sellerListing("s1", 20, true, false)
	l2 := sellerListing("s1", 25, true, false)
	for _, l := range []*models.Listing{l1, l2} {
		l.Seller.FeedbackScore = &score
		l.Seller.FeedbackCount = &count
		l.Seller.PositiveFeedbackPct = &pct
	}

	res := aggregate(t, []*models.Listing{l1, l2}, nil)
	recs := newTestGenerator().Generate(res)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if recs[0].Type != models.DealMultiItem {
		t.Errorf("Type = %v, want %v (rule priority)", recs[0].Type, models.DealMultiItem)
	}
}

func TestGenerateHighFeedbackDeal(t *testing.T) {
	score := 99.5
	count := 2500
	pct := 99.8
	l := sellerListing("s1", 20, false, false)
	l.Seller.FeedbackScore = &score
	l.Seller.FeedbackCount = &count
	l.Seller.PositiveFeedbackPct = &pct

	res := aggregate(t, []*models.Listing{l}, nil)
	recs := newTestGenerator().Generate(res)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if recs[0].Type != models.DealHighFeedback {
		t.Errorf("Type = %v, want %v", recs[0].Type, models.DealHighFeedback)
	}
}

func TestGenerateLocationPreferenceDeal(t *testing.T) {
	us := models.RegionUS
	l := sellerListing("s1", 20, false, false) // Portland, OR seller
	res := aggregate(t, []*models.Listing{l}, &us)

	recs := newTestGenerator().Generate(res)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if recs[0].Type != models.DealLocationPreference {
		t.Errorf("Type = %v, want %v", recs[0].Type, models.DealLocationPreference)
	}
}

func TestGenerateAtMostOnePerSeller(t *testing.T) {
	us := models.RegionUS
	score := 99.5
	count := 2500
	pct := 99.8

	var listings []*models.Listing
	for i := 0; i < 3; i++ {
		l := sellerListing("s1", 20, true, false)
		l.Seller.FeedbackScore = &score
		l.Seller.FeedbackCount = &count
		l.Seller.PositiveFeedbackPct = &pct
		listings = append(listings, l)
	}
	res := aggregate(t, listings, &us)

	recs := newTestGenerator().Generate(res)
	if len(recs) != 1 {
		t.Errorf("got %d recommendations for one seller, want 1", len(recs))
	}
}

func TestGenerateCapsRankedSellers(t *testing.T) {
	us := models.RegionUS
	var listings []*models.Listing
	for i := 0; i < 15; i++ {
		listings = append(listings, sellerListing(fmt.Sprintf("s%d", i), 20, false, false))
	}
	res := aggregate(t, listings, &us)

	recs := newTestGenerator().Generate(res)
	if len(recs) > maxRankedSellers {
		t.Errorf("got %d recommendations, want at most %d", len(recs), maxRankedSellers)
	}
}

func TestQualityForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  models.DealQuality
	}{
		{95, models.QualityExcellent},
		{90, models.QualityExcellent},
		{89.99, models.QualityVeryGood},
		{80, models.QualityVeryGood},
		{75, models.QualityGood},
		{65, models.QualityFair},
		{59.99, models.QualityPoor},
		{0, models.QualityPoor},
	}
	for _, tt := range tests {
		if got := QualityForScore(tt.score); got != tt.want {
			t.Errorf("QualityForScore(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}
