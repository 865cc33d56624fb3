// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the analysis pipeline:
// - Identity resolution (matches per tier, items created)
// - Per-search analysis throughput and duration
// - Recommendation output mix
// - DuckDB query performance

var (
	// Identity Resolution Metrics
	MatchesByTier = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "identity_matches_total",
			Help: "Total listing-to-item matches by confidence tier",
		},
		[]string{"tier"},
	)

	ItemsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "identity_items_created_total",
			Help: "Total canonical items created",
		},
	)

	ListingsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_listings_skipped_total",
			Help: "Listings skipped during analysis",
		},
		[]string{"reason"}, // "not_comparable", "validation", "store"
	)

	// Analysis Metrics
	AnalysesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analysis_runs_completed_total",
			Help: "Total completed search analyses",
		},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_run_duration_seconds",
			Help:    "Duration of one search analysis in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	ListingsAnalyzed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_listings_total",
			Help: "Total listings fed into analysis by platform",
		},
		[]string{"platform"},
	)

	// Recommendation Metrics
	RecommendationsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_deals_emitted_total",
			Help: "Total deal recommendations emitted by type",
		},
		[]string{"type"},
	)

	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)
)
