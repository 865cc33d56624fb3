// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package seller

import (
	"github.com/tomtom215/cratedigger/internal/models"
)

// reputationNeutral is the prior for sellers with no feedback data at
// all: unknown sellers are neither trusted nor penalized.
const reputationNeutral = 50.0

// ScoreReputation scores a seller's marketplace reputation 0-100.
//
// Starts from the neutral prior and adds evidence as it is available:
// the raw feedback score (weighted), a feedback-volume bucket bonus, and
// a positive-percentage bucket bonus. A seller with no feedback data
// scores exactly the neutral 50.
func ScoreReputation(s *models.Seller) float64 {
	score := reputationNeutral

	if s.FeedbackScore != nil {
		score += *s.FeedbackScore * 0.4
	}

	if s.FeedbackCount != nil {
		switch count := *s.FeedbackCount; {
		case count >= 1000:
			score += 30
		case count >= 500:
			score += 25
		case count >= 100:
			score += 20
		case count >= 50:
			score += 15
		case count >= 10:
			score += 10
		default:
			score += 5
		}
	}

	if s.PositiveFeedbackPct != nil {
		switch pct := *s.PositiveFeedbackPct; {
		case pct >= 99:
			score += 30
		case pct >= 98:
			score += 25
		case pct >= 95:
			score += 20
		case pct >= 90:
			score += 15
		default:
			score += 10
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}

// ScoreLocationPreference scores how well a seller's region suits the
// buyer's preferred region. No preference is neutral (50); an exact
// region match scores 100; when either side is unresolvable (OTHER) the
// score is a cautious 30; a known mismatch scores 10.
func ScoreLocationPreference(s *models.Seller, preferred *models.RegionCode) float64 {
	if preferred == nil {
		return 50
	}
	if s.Region == *preferred {
		return 100
	}
	if s.Region == models.RegionOther || *preferred == models.RegionOther {
		return 30
	}
	return 10
}
