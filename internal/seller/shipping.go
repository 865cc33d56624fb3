// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package seller

import (
	"github.com/tomtom215/cratedigger/internal/models"
)

// baseShipping tabulates the base single-item shipping cost (USD) for
// every origin x destination region pair. Unknown combinations fall back
// to the OTHER->OTHER cell.
var baseShipping = map[models.RegionCode]map[models.RegionCode]float64{
	models.RegionUS: {
		models.RegionUS:    5.99,
		models.RegionCA:    14.99,
		models.RegionEU:    24.99,
		models.RegionUK:    22.99,
		models.RegionOther: 29.99,
	},
	models.RegionCA: {
		models.RegionUS:    12.99,
		models.RegionCA:    7.99,
		models.RegionEU:    24.99,
		models.RegionUK:    22.99,
		models.RegionOther: 29.99,
	},
	models.RegionEU: {
		models.RegionUS:    24.99,
		models.RegionCA:    24.99,
		models.RegionEU:    9.99,
		models.RegionUK:    12.99,
		models.RegionOther: 29.99,
	},
	models.RegionUK: {
		models.RegionUS:    22.99,
		models.RegionCA:    22.99,
		models.RegionEU:    12.99,
		models.RegionUK:    4.99,
		models.RegionOther: 29.99,
	},
	models.RegionOther: {
		models.RegionUS:    24.99,
		models.RegionCA:    24.99,
		models.RegionEU:    24.99,
		models.RegionUK:    24.99,
		models.RegionOther: 19.99,
	},
}

// multiItemFactor is the marginal shipping share per additional item:
// each item after the first adds 20% of the base cost.
const multiItemFactor = 0.2

// Seller-reported estimates are trusted only within this band around the
// computed value; outside it the matrix value wins.
const (
	sellerEstimateFloor   = 0.5
	sellerEstimateCeiling = 1.5
)

// EstimateShipping estimates the shipping cost for itemCount items from
// the seller's region to the buyer's region.
//
// The region matrix provides the base; additional items add a diminished
// marginal cost. When the seller carries its own estimate and it lies
// within 50%-150% of the computed value, the seller's figure is preferred
// (the computed value acts as a sanity bound, not a hard override).
func EstimateShipping(s *models.Seller, itemCount int, buyerRegion models.RegionCode) float64 {
	if itemCount < 1 {
		return 0
	}

	base := lookupBase(s.Region, buyerRegion)
	computed := base
	if itemCount > 1 {
		computed += base * multiItemFactor * float64(itemCount-1)
	}

	if s.ShippingEstimate != nil {
		own := *s.ShippingEstimate
		if own >= computed*sellerEstimateFloor && own <= computed*sellerEstimateCeiling {
			return own
		}
	}
	return computed
}

func lookupBase(origin, destination models.RegionCode) float64 {
	row, ok := baseShipping[origin]
	if !ok {
		row = baseShipping[models.RegionOther]
	}
	cost, ok := row[destination]
	if !ok {
		cost = baseShipping[models.RegionOther][models.RegionOther]
	}
	return cost
}
