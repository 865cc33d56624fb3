// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cratedigger/internal/analysis"
	"github.com/tomtom215/cratedigger/internal/identity"
	"github.com/tomtom215/cratedigger/internal/metrics"
	"github.com/tomtom215/cratedigger/internal/models"
	"github.com/tomtom215/cratedigger/internal/recommend"
	"github.com/tomtom215/cratedigger/internal/seller"
	"github.com/tomtom215/cratedigger/internal/validation"
)

// Sink persists a completed analysis run. Implemented by the database
// layer; optional.
type Sink interface {
	PersistRun(ctx context.Context, run *models.AnalysisRun) error
}

// Options configures an Engine.
type Options struct {
	// Resolver clusters listings into canonical items. Required.
	Resolver *identity.Resolver

	// Registry deduplicates sellers across runs. Required.
	Registry *seller.Registry

	// PreferredRegion is the default location preference applied when a
	// request carries none.
	PreferredRegion *models.RegionCode

	// RecommendEnabled turns recommendation generation on.
	RecommendEnabled bool

	// Sink receives completed runs for persistence. Optional.
	Sink Sink

	Logger zerolog.Logger
}

// Request is one search analysis invocation.
type Request struct {
	SearchID uuid.UUID

	// Listings is the search's complete result snapshot, in collection
	// order.
	Listings []*models.Listing

	// PreferredRegion overrides the engine default for this request.
	PreferredRegion *models.RegionCode
}

// Response is the completed analysis.
type Response struct {
	Search          *models.SearchAnalysis
	Sellers         []*models.SellerAnalysis
	Recommendations []*models.DealRecommendation
	Matches         []*models.MatchResult

	// Skipped counts listings dropped by the per-listing error policy.
	Skipped int
}

// Engine runs search analyses. Safe for concurrent use: the resolver
// store and seller registry serialize their own mutations.
type Engine struct {
	resolver         *identity.Resolver
	registry         *seller.Registry
	generator        *recommend.Generator
	preferredRegion  *models.RegionCode
	recommendEnabled bool
	sink             Sink
	logger           zerolog.Logger
}

// New creates an engine from options.
func New(opts Options) (*Engine, error) {
	if opts.Resolver == nil {
		return nil, errors.New("engine: resolver is required")
	}
	if opts.Registry == nil {
		return nil, errors.New("engine: registry is required")
	}
	logger := opts.Logger.With().Str("component", "engine").Logger()
	return &Engine{
		resolver:         opts.Resolver,
		registry:         opts.Registry,
		generator:        recommend.NewGenerator(opts.Logger),
		preferredRegion:  opts.PreferredRegion,
		recommendEnabled: opts.RecommendEnabled,
		sink:             opts.Sink,
		logger:           logger,
	}, nil
}

// AnalyzeSearch runs the full pipeline for one search: resolve every
// listing to a canonical item, aggregate seller statistics, generate
// recommendations, and persist the run when a sink is configured.
//
// Individual listings that fail validation or resolution are skipped and
// counted; they do not appear in the analysis. A sink failure is
// reported but does not discard the computed response.
func (e *Engine) AnalyzeSearch(ctx context.Context, req Request) (*Response, error) {
	if req.SearchID == uuid.Nil {
		return nil, errors.New("engine: search id is required")
	}
	start := time.Now()

	preferred := req.PreferredRegion
	if preferred == nil {
		preferred = e.preferredRegion
	}

	accepted := make([]*models.Listing, 0, len(req.Listings))
	matches := make([]*models.MatchResult, 0, len(req.Listings))
	skipped := 0

	for _, listing := range req.Listings {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if listing.ID == uuid.Nil {
			listing.ID = uuid.New()
		}
		listing.SearchID = req.SearchID

		if verr := validation.ValidateStruct(listing); verr != nil {
			skipped++
			metrics.ListingsSkipped.WithLabelValues("validation").Inc()
			e.logger.Warn().
				Str("listing_id", listing.ID.String()).
				Str("platform", listing.Platform).
				Err(verr).
				Msg("skipping invalid listing")
			continue
		}

		match, err := e.resolver.MatchListing(ctx, listing)
		if err != nil {
			skipped++
			reason := "store"
			if errors.Is(err, identity.ErrNotComparable) {
				reason = "not_comparable"
			}
			metrics.ListingsSkipped.WithLabelValues(reason).Inc()
			e.logger.Warn().
				Str("listing_id", listing.ID.String()).
				Str("reason", reason).
				Err(err).
				Msg("skipping unresolvable listing")
			continue
		}

		metrics.ListingsAnalyzed.WithLabelValues(listing.Platform).Inc()
		accepted = append(accepted, listing)
		matches = append(matches, match)
	}

	res := analysis.Aggregate(analysis.Input{
		SearchID:        req.SearchID,
		Listings:        accepted,
		PreferredRegion: preferred,
	}, e.registry)

	sellers := make([]*models.SellerAnalysis, 0, len(res.Groups))
	for _, g := range res.Groups {
		sellers = append(sellers, g.Analysis)
	}

	var recs []*models.DealRecommendation
	if e.recommendEnabled {
		recs = e.generator.Generate(res)
	}

	resp := &Response{
		Search:          res.Search,
		Sellers:         sellers,
		Recommendations: recs,
		Matches:         matches,
		Skipped:         skipped,
	}

	metrics.AnalysesCompleted.Inc()
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	e.logger.Info().
		Str("search_id", req.SearchID.String()).
		Int("listings", len(accepted)).
		Int("skipped", skipped).
		Int("sellers", len(sellers)).
		Int("recommendations", len(recs)).
		Dur("duration", time.Since(start)).
		Msg("search analysis completed")

	if e.sink != nil {
		run := &models.AnalysisRun{
			Search:          resp.Search,
			Sellers:         resp.Sellers,
			Recommendations: resp.Recommendations,
			Listings:        accepted,
			Matches:         matches,
		}
		if err := e.sink.PersistRun(ctx, run); err != nil {
			return resp, fmt.Errorf("persist run: %w", err)
		}
	}
	return resp, nil
}
