// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package recommend

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cratedigger/internal/analysis"
	"github.com/tomtom215/cratedigger/internal/metrics"
	"github.com/tomtom215/cratedigger/internal/models"
)

// maxRankedSellers caps how many sellers (in rank order) are considered
// for recommendations per analysis.
const maxRankedSellers = 10

// candidate is one seller's view as the rule table sees it: the scored
// analysis plus only the listings a recommendation may cover.
type candidate struct {
	seller      *models.Seller
	analysis    *models.SellerAnalysis
	purchasable []*models.Listing // in_collection already stripped
	wantlist    int               // purchasable listings on the want-list
	buyerRegion models.RegionCode
}

// Generator produces deal recommendations from an aggregated analysis
// result. Safe for concurrent use; it holds no per-analysis state.
type Generator struct {
	rules  []rule
	logger zerolog.Logger
}

// NewGenerator creates a generator with the default rule table.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewGenerator(logger zerolog.Logger) *Generator {
	return &Generator{
		rules:  defaultRules(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}
}

// Generate evaluates the rule table against the top ranked sellers and
// returns recommendations in seller rank order. At most one
// recommendation is produced per seller: rules earlier in the table take
// priority.
func (g *Generator) Generate(res *analysis.Result) []*models.DealRecommendation {
	var recs []*models.DealRecommendation

	limit := len(res.Groups)
	if limit > maxRankedSellers {
		limit = maxRankedSellers
	}

	for _, grp := range res.Groups[:limit] {
		c := newCandidate(grp, res.BuyerRegion)
		if len(c.purchasable) == 0 {
			continue // nothing the user can buy from this seller
		}

		for _, r := range g.rules {
			if !r.applies(c) {
				continue
			}
			rec := r.build(c)
			rec.ID = uuid.New()
			rec.AnalysisID = res.Search.ID
			rec.SellerID = c.seller.ID
			rec.CreatedAt = time.Now()

			metrics.RecommendationsEmitted.WithLabelValues(string(rec.Type)).Inc()
			g.logger.Debug().
				Str("seller_id", c.seller.ID.String()).
				Str("type", string(rec.Type)).
				Float64("score", rec.Score).
				Msg("emitted recommendation")

			recs = append(recs, rec)
			break
		}
	}
	return recs
}

func newCandidate(grp *analysis.SellerGroup, buyerRegion models.RegionCode) candidate {
	c := candidate{
		seller:      grp.Seller,
		analysis:    grp.Analysis,
		buyerRegion: buyerRegion,
	}
	for _, l := range grp.Listings {
		if l.InCollection {
			continue
		}
		c.purchasable = append(c.purchasable, l)
		if l.InWantlist {
			c.wantlist++
		}
	}
	return c
}

// QualityForScore buckets a composite score into a deal-quality label.
func QualityForScore(score float64) models.DealQuality {
	switch {
	case score >= 90:
		return models.QualityExcellent
	case score >= 80:
		return models.QualityVeryGood
	case score >= 70:
		return models.QualityGood
	case score >= 60:
		return models.QualityFair
	default:
		return models.QualityPoor
	}
}
