// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package models

// AnalysisRun is the complete output snapshot of one search analysis,
// shaped for persistence and export. Slices are in final presentation
// order (sellers by rank, recommendations by seller rank).
type AnalysisRun struct {
	Search          *SearchAnalysis       `json:"search"`
	Sellers         []*SellerAnalysis     `json:"sellers"`
	Recommendations []*DealRecommendation `json:"recommendations"`
	Listings        []*Listing            `json:"listings"`
	Matches         []*MatchResult        `json:"matches"`
}
