// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cratedigger/internal/metrics"
	"github.com/tomtom215/cratedigger/internal/models"
	"github.com/tomtom215/cratedigger/internal/textnorm"
)

// ErrNotComparable marks listings whose attributes cannot support
// identity resolution (no usable title or artist after normalization).
// Callers treat this as a per-item skip, not a batch failure.
var ErrNotComparable = errors.New("listing has no comparable attributes")

// DefaultAttachThreshold is the minimum match score at which a listing
// with an unseen fingerprint attaches to an existing item instead of
// creating a new one. Set at the HIGH tier boundary: MEDIUM-confidence
// lookalikes create separate items and surface through review instead of
// silently merging.
const DefaultAttachThreshold = ThresholdHigh

// ResolverConfig tunes fuzzy resolution.
type ResolverConfig struct {
	// AttachThreshold is the minimum score for fuzzy attachment (0-100).
	// Zero means DefaultAttachThreshold.
	AttachThreshold float64
}

// Resolver clusters listings into canonical items: fingerprint fast path
// first, fuzzy candidate scan second. Safe for concurrent use when its
// ItemStore is.
type Resolver struct {
	store           ItemStore
	attachThreshold float64
	logger          zerolog.Logger
}

// NewResolver creates a resolver on the given registry.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewResolver(store ItemStore, cfg ResolverConfig, logger zerolog.Logger) *Resolver {
	threshold := cfg.AttachThreshold
	if threshold <= 0 {
		threshold = DefaultAttachThreshold
	}
	return &Resolver{
		store:           store,
		attachThreshold: threshold,
		logger:          logger.With().Str("component", "identity").Logger(),
	}
}

// Resolve returns the canonical item for a listing, creating one when no
// existing item matches by fingerprint or by fuzzy score.
func (r *Resolver) Resolve(ctx context.Context, listing *models.Listing) (*models.CanonicalItem, error) {
	if textnorm.Normalize(listing.Title) == "" && textnorm.Normalize(listing.Artist) == "" {
		return nil, fmt.Errorf("listing %s: %w", listing.ID, ErrNotComparable)
	}

	fingerprint := Fingerprint(listing.Title, listing.Artist, listing.Year, listing.CatalogNumber)

	item, err := r.store.FindByFingerprint(ctx, fingerprint)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, ErrItemNotFound) {
		return nil, fmt.Errorf("fingerprint lookup: %w", err)
	}

	// Unseen fingerprint: scan existing items for a fuzzy match. Creation
	// order with strict-greater comparison keeps resolution deterministic
	// (first-seen wins ties).
	candidates, err := r.store.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	var (
		best      *models.CanonicalItem
		bestScore float64
	)
	for _, candidate := range candidates {
		_, score, _ := ScoreMatch(candidate, listing)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	if best != nil && bestScore >= r.attachThreshold {
		r.logger.Debug().
			Str("listing_id", listing.ID.String()).
			Str("item_id", best.ID.String()).
			Float64("score", bestScore).
			Msg("fuzzy-attached listing to existing item")
		return best, nil
	}

	created := &models.CanonicalItem{
		ID:            uuid.New(),
		Fingerprint:   fingerprint,
		Title:         listing.Title,
		Artist:        listing.Artist,
		Year:          listing.Year,
		Format:        listing.Format,
		CatalogNumber: listing.CatalogNumber,
	}
	stored, wasCreated, err := r.store.FindOrCreate(ctx, created)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	if wasCreated {
		metrics.ItemsCreated.Inc()
		r.logger.Debug().
			Str("item_id", stored.ID.String()).
			Str("fingerprint", fingerprint).
			Msg("created canonical item")
	}
	return stored, nil
}

// MatchListing resolves the listing's canonical item, scores the match,
// persists a MatchResult, and folds the score into the item's running
// average confidence.
func (r *Resolver) MatchListing(ctx context.Context, listing *models.Listing) (*models.MatchResult, error) {
	item, err := r.Resolve(ctx, listing)
	if err != nil {
		return nil, err
	}

	tier, score, comp := ScoreMatch(item, listing)

	result := &models.MatchResult{
		ID:               uuid.New(),
		ListingID:        listing.ID,
		ItemID:           item.ID,
		Tier:             tier,
		Score:            score,
		TitleSimilarity:  comp.TitleSimilarity,
		ArtistSimilarity: comp.ArtistSimilarity,
		YearMatch:        comp.YearMatch,
		CatalogMatch:     comp.CatalogMatch,
		FormatMatch:      comp.FormatMatch,
		RequiresReview:   RequiresReview(tier),
		ReviewState:      models.ReviewUnreviewed,
		CreatedAt:        time.Now(),
	}

	if err := r.store.SaveMatchResult(ctx, result); err != nil {
		return nil, fmt.Errorf("save match result: %w", err)
	}
	if _, err := r.store.RecordMatch(ctx, item.ID, score); err != nil {
		return nil, fmt.Errorf("record match: %w", err)
	}

	metrics.MatchesByTier.WithLabelValues(string(tier)).Inc()
	return result, nil
}
