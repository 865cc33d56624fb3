// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package analysis

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/cratedigger/internal/models"
	"github.com/tomtom215/cratedigger/internal/seller"
)

// Composite score weights. They intentionally sum to 0.90, capping the
// achievable composite at 90; the deal-quality buckets downstream are
// tuned against this as-built range, so the weights must not be
// renormalized without retuning those thresholds.
const (
	weightPrice      = 0.35
	weightInventory  = 0.25
	weightReputation = 0.20
	weightLocation   = 0.10
)

// Input is one search's closed analysis snapshot.
type Input struct {
	SearchID uuid.UUID

	// Listings in collection order. Seller grouping and rank tie-breaks
	// follow this order, so it must be stable between runs.
	Listings []*models.Listing

	// PreferredRegion is the search's location preference; nil means no
	// preference. It doubles as the buyer region for shipping estimates.
	PreferredRegion *models.RegionCode
}

// SellerGroup pairs one seller's scored analysis with the listings that
// produced it.
type SellerGroup struct {
	Seller   *models.Seller
	Analysis *models.SellerAnalysis
	Listings []*models.Listing
}

// Result is the aggregated output for one search: the finalized summary
// plus seller groups in rank order.
type Result struct {
	Search *models.SearchAnalysis
	Groups []*SellerGroup

	// BuyerRegion is the resolved shipping destination (OTHER when the
	// search has no location preference).
	BuyerRegion models.RegionCode
}

// Aggregate computes the SearchAnalysis and ranked SellerAnalysis rows
// for one search. Sellers are upserted into the registry as a side
// effect, refreshing their mutable fields from the latest observations.
func Aggregate(in Input, registry *seller.Registry) *Result {
	buyerRegion := models.RegionOther
	if in.PreferredRegion != nil {
		buyerRegion = *in.PreferredRegion
	}

	search := &models.SearchAnalysis{
		ID:            uuid.New(),
		SearchID:      in.SearchID,
		TotalListings: len(in.Listings),
	}

	// Membership tallies are independent: a listing flagged both counts
	// toward both, which is why NewDiscoveries can go negative. Price
	// statistics exclude in_collection listings.
	var (
		priceSum   float64
		priceCount int
		minPrice   float64
		maxPrice   float64
	)
	groups := make(map[uuid.UUID]*SellerGroup)
	var groupOrder []*SellerGroup

	for _, l := range in.Listings {
		if l.InWantlist {
			search.WantlistMatches++
		}
		if l.InCollection {
			search.CollectionDuplicates++
		}

		if !l.InCollection && l.HasPrice() {
			if priceCount == 0 || l.Price < minPrice {
				minPrice = l.Price
			}
			if priceCount == 0 || l.Price > maxPrice {
				maxPrice = l.Price
			}
			priceSum += l.Price
			priceCount++
		}

		s := registry.Upsert(l.Platform, l.Seller)
		g, ok := groups[s.ID]
		if !ok {
			g = &SellerGroup{Seller: s}
			groups[s.ID] = g
			groupOrder = append(groupOrder, g)
		} else {
			g.Seller = s // latest observation wins
		}
		g.Listings = append(g.Listings, l)
	}

	search.NewDiscoveries = search.TotalListings - search.WantlistMatches - search.CollectionDuplicates
	search.DistinctSellers = len(groupOrder)

	var searchAvg *float64
	if priceCount > 0 {
		avg := priceSum / float64(priceCount)
		searchAvg = &avg
		search.MinPrice = &minPrice
		search.MaxPrice = &maxPrice
		search.AvgPrice = &avg
	}

	for _, g := range groupOrder {
		if len(g.Listings) >= 2 {
			search.MultiItemSellers++
		}
		g.Analysis = scoreSeller(search.ID, g, searchAvg, in.PreferredRegion, buyerRegion)
	}

	rankGroups(groupOrder)
	search.CompletedAt = time.Now()

	return &Result{
		Search:      search,
		Groups:      groupOrder,
		BuyerRegion: buyerRegion,
	}
}

// scoreSeller builds the SellerAnalysis row for one seller group.
func scoreSeller(analysisID uuid.UUID, g *SellerGroup, searchAvg *float64, preferred *models.RegionCode, buyerRegion models.RegionCode) *models.SellerAnalysis {
	sa := &models.SellerAnalysis{
		ID:         uuid.New(),
		AnalysisID: analysisID,
		SellerID:   g.Seller.ID,
		Platform:   g.Seller.Platform,
		SellerName: g.Seller.Name,
		ItemCount:  len(g.Listings),
	}

	var (
		valueSum   float64
		valueCount int
	)
	for _, l := range g.Listings {
		if l.InWantlist {
			sa.WantlistItems++
		}
		if l.InCollection {
			sa.CollectionDuplicates++
			continue
		}
		if l.HasPrice() {
			valueSum += l.Price
			valueCount++
		}
	}
	sa.TotalValue = valueSum
	if valueCount > 0 {
		sa.AvgValue = valueSum / float64(valueCount)
	}

	sa.EstimatedShipping = seller.EstimateShipping(g.Seller, sa.ItemCount, buyerRegion)

	sa.PriceCompetitiveness = scorePriceCompetitiveness(sa.AvgValue, valueCount, searchAvg)
	sa.InventoryDepth = scoreInventoryDepth(sa.ItemCount, sa.WantlistItems)
	sa.Reputation = seller.ScoreReputation(g.Seller)
	sa.LocationPreference = seller.ScoreLocationPreference(g.Seller, preferred)

	sa.OverallScore = weightPrice*sa.PriceCompetitiveness +
		weightInventory*sa.InventoryDepth +
		weightReputation*sa.Reputation +
		weightLocation*sa.LocationPreference

	return sa
}

// scorePriceCompetitiveness buckets the ratio of the seller's average
// price to the search's overall average. Cheaper than the market scores
// high; no usable price data on either side is neutral.
func scorePriceCompetitiveness(sellerAvg float64, sellerPriced int, searchAvg *float64) float64 {
	if sellerPriced == 0 || searchAvg == nil || *searchAvg <= 0 {
		return 50
	}
	ratio := sellerAvg / *searchAvg
	switch {
	case ratio <= 0.8:
		return 100
	case ratio <= 0.9:
		return 85
	case ratio <= 1.0:
		return 70
	case ratio <= 1.1:
		return 50
	case ratio <= 1.2:
		return 30
	default:
		return 10
	}
}

// scoreInventoryDepth scores how much of the search one seller can
// satisfy: a count base plus a capped want-list bonus.
func scoreInventoryDepth(itemCount, wantlistItems int) float64 {
	var base float64
	switch {
	case itemCount >= 3:
		base = 80
	case itemCount == 2:
		base = 60
	default:
		base = 30
	}

	bonus := float64(wantlistItems) * 10
	if bonus > 20 {
		bonus = 20
	}

	score := base + bonus
	if score > 100 {
		score = 100
	}
	return score
}

// rankGroups sorts groups by overall score descending and assigns ranks.
// The sort is stable, so equal scores keep first-seen input order.
func rankGroups(groups []*SellerGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Analysis.OverallScore > groups[j].Analysis.OverallScore
	})
	for i, g := range groups {
		g.Analysis.Rank = i + 1
	}
}
