// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package recommend

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tomtom215/cratedigger/internal/models"
	"github.com/tomtom215/cratedigger/internal/seller"
)

// Rule trigger thresholds.
const (
	multiItemMinWantlist = 2
	bestPriceMinScore    = 85
	highFeedbackMinScore = 90
	locationPrefMinScore = 90
)

// rule is one (predicate, builder) pair in the dispatch table.
type rule struct {
	name    string
	applies func(candidate) bool
	build   func(candidate) *models.DealRecommendation
}

// defaultRules returns the rule table in priority order. The first rule
// whose predicate holds wins, so ordering is part of the contract:
// bundle deals beat single-item price calls, which beat pure reputation
// or location plays.
//
// DealConditionValue is reserved for a grading-aware rule; no rule in
// the current table emits it.
func defaultRules() []rule {
	return []rule{
		{name: "multi_item", applies: multiItemApplies, build: buildMultiItem},
		{name: "best_price", applies: bestPriceApplies, build: buildBestPrice},
		{name: "high_feedback", applies: highFeedbackApplies, build: buildHighFeedback},
		{name: "location_preference", applies: locationPrefApplies, build: buildLocationPref},
	}
}

func multiItemApplies(c candidate) bool {
	return c.wantlist >= multiItemMinWantlist
}

func bestPriceApplies(c candidate) bool {
	return c.analysis.OverallScore >= bestPriceMinScore && len(c.purchasable) == 1
}

func highFeedbackApplies(c candidate) bool {
	return c.analysis.Reputation >= highFeedbackMinScore
}

func locationPrefApplies(c candidate) bool {
	return c.analysis.LocationPreference >= locationPrefMinScore
}

// baseRecommendation fills the fields shared by every rule: covered
// listings, value, combined shipping cost, and the quality bucket
// derived from the seller's composite score.
func baseRecommendation(c candidate) *models.DealRecommendation {
	ids := make([]uuid.UUID, 0, len(c.purchasable))
	var total float64
	for _, l := range c.purchasable {
		ids = append(ids, l.ID)
		if l.HasPrice() {
			total += l.Price
		}
	}

	shipping := seller.EstimateShipping(c.seller, len(c.purchasable), c.buyerRegion)

	return &models.DealRecommendation{
		Score:         c.analysis.OverallScore,
		Quality:       QualityForScore(c.analysis.OverallScore),
		ItemCount:     len(c.purchasable),
		TotalValue:    total,
		EstimatedCost: total + shipping,
		ListingIDs:    ids,
	}
}

func buildMultiItem(c candidate) *models.DealRecommendation {
	rec := baseRecommendation(c)
	rec.Type = models.DealMultiItem

	n := len(c.purchasable)
	combined := seller.EstimateShipping(c.seller, n, c.buyerRegion)
	individual := seller.EstimateShipping(c.seller, 1, c.buyerRegion) * float64(n)
	savings := individual - combined
	if savings < 0 {
		savings = 0
	}
	rec.EstimatedSavings = savings

	rec.Title = fmt.Sprintf("Bundle %d items from %s", n, c.seller.Name)
	rec.Description = fmt.Sprintf("%s has %d items from this search, including %d from your want list.",
		c.seller.Name, n, c.wantlist)
	rec.Reason = fmt.Sprintf("Combined shipping saves an estimated $%.2f versus ordering each item separately.", savings)
	return rec
}

func buildBestPrice(c candidate) *models.DealRecommendation {
	rec := baseRecommendation(c)
	rec.Type = models.DealBestPrice
	rec.Title = fmt.Sprintf("Best overall deal from %s", c.seller.Name)
	rec.Description = fmt.Sprintf("Top-scoring single-item offer at $%.2f plus shipping.", rec.TotalValue)
	rec.Reason = fmt.Sprintf("Seller scores %.0f/100 overall with below-market pricing.", c.analysis.OverallScore)
	return rec
}

func buildHighFeedback(c candidate) *models.DealRecommendation {
	rec := baseRecommendation(c)
	rec.Type = models.DealHighFeedback
	rec.Title = fmt.Sprintf("Trusted seller: %s", c.seller.Name)
	rec.Description = fmt.Sprintf("%d items available from a seller with an outstanding track record.", rec.ItemCount)
	rec.Reason = reputationReason(c)
	return rec
}

func reputationReason(c candidate) string {
	s := c.seller
	if s.FeedbackCount != nil && s.PositiveFeedbackPct != nil {
		return fmt.Sprintf("%.1f%% positive feedback across %d transactions.",
			*s.PositiveFeedbackPct, *s.FeedbackCount)
	}
	return fmt.Sprintf("Reputation score %.0f/100.", c.analysis.Reputation)
}

func buildLocationPref(c candidate) *models.DealRecommendation {
	rec := baseRecommendation(c)
	rec.Type = models.DealLocationPreference
	rec.Title = fmt.Sprintf("Local shipping from %s", c.seller.Name)
	rec.Description = fmt.Sprintf("%d items shipping within %s.", rec.ItemCount, c.seller.Region)
	rec.Reason = "Seller is in your preferred region, keeping shipping cost and transit time down."
	return rec
}
