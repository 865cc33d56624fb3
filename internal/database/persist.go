// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cratedigger/internal/logging"
	"github.com/tomtom215/cratedigger/internal/models"
)

// PersistRun writes one completed analysis run in a single transaction.
// It implements the engine's persistence sink.
func (db *DB) PersistRun(ctx context.Context, run *models.AnalysisRun) (err error) {
	start := time.Now()
	defer func() { observe("persist_run", "all", start, err) }()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Warn().Err(rbErr).Msg("rollback failed")
			}
		}
	}()

	for _, l := range run.Listings {
		if err = insertListing(ctx, tx, l); err != nil {
			return fmt.Errorf("insert listing %s: %w", l.ID, err)
		}
	}
	for _, m := range run.Matches {
		if err = insertMatchResult(ctx, tx, m); err != nil {
			return fmt.Errorf("insert match result %s: %w", m.ID, err)
		}
	}
	if run.Search != nil {
		if err = insertSearchAnalysis(ctx, tx, run.Search); err != nil {
			return fmt.Errorf("insert search analysis %s: %w", run.Search.ID, err)
		}
	}
	for _, sa := range run.Sellers {
		if err = insertSellerAnalysis(ctx, tx, sa); err != nil {
			return fmt.Errorf("insert seller analysis %s: %w", sa.ID, err)
		}
	}
	for _, rec := range run.Recommendations {
		if err = insertRecommendation(ctx, tx, rec); err != nil {
			return fmt.Errorf("insert recommendation %s: %w", rec.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func insertListing(ctx context.Context, tx *sql.Tx, l *models.Listing) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO listings (
			id, search_id, platform, external_id, title, artist, year,
			format, catalog_number, price, currency, condition,
			seller_platform_id, seller_name, seller_location,
			in_collection, in_wantlist
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.SearchID, l.Platform, l.ExternalID, l.Title, l.Artist,
		nullableInt(l.Year), l.Format, l.CatalogNumber, l.Price, l.Currency,
		l.Condition, l.Seller.PlatformSellerID, l.Seller.Name,
		l.Seller.Location, l.InCollection, l.InWantlist,
	)
	return err
}

func insertMatchResult(ctx context.Context, tx *sql.Tx, m *models.MatchResult) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO match_results (
			id, listing_id, item_id, tier, score,
			title_similarity, artist_similarity,
			year_match, catalog_match, format_match,
			requires_review, review_state, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.ListingID, m.ItemID, string(m.Tier), m.Score,
		m.TitleSimilarity, m.ArtistSimilarity,
		m.YearMatch, m.CatalogMatch, m.FormatMatch,
		m.RequiresReview, string(m.ReviewState), m.CreatedAt,
	)
	return err
}

func insertSearchAnalysis(ctx context.Context, tx *sql.Tx, sa *models.SearchAnalysis) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO search_analyses (
			id, search_id, total_listings, distinct_sellers,
			multi_item_sellers, min_price, max_price, avg_price,
			wantlist_matches, collection_duplicates, new_discoveries,
			completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sa.ID, sa.SearchID, sa.TotalListings, sa.DistinctSellers,
		sa.MultiItemSellers, nullableFloat(sa.MinPrice),
		nullableFloat(sa.MaxPrice), nullableFloat(sa.AvgPrice),
		sa.WantlistMatches, sa.CollectionDuplicates, sa.NewDiscoveries,
		sa.CompletedAt,
	)
	return err
}

func insertSellerAnalysis(ctx context.Context, tx *sql.Tx, sa *models.SellerAnalysis) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO seller_analyses (
			id, analysis_id, seller_id, platform, seller_name,
			item_count, wantlist_items, collection_duplicates,
			total_value, avg_value, estimated_shipping,
			price_competitiveness, inventory_depth, reputation,
			location_preference, overall_score, seller_rank
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sa.ID, sa.AnalysisID, sa.SellerID, sa.Platform, sa.SellerName,
		sa.ItemCount, sa.WantlistItems, sa.CollectionDuplicates,
		sa.TotalValue, sa.AvgValue, sa.EstimatedShipping,
		sa.PriceCompetitiveness, sa.InventoryDepth, sa.Reputation,
		sa.LocationPreference, sa.OverallScore, sa.Rank,
	)
	return err
}

func insertRecommendation(ctx context.Context, tx *sql.Tx, rec *models.DealRecommendation) error {
	listingIDs, err := json.Marshal(rec.ListingIDs)
	if err != nil {
		return fmt.Errorf("marshal listing ids: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO deal_recommendations (
			id, analysis_id, seller_id, type, quality, score,
			item_count, total_value, estimated_cost, estimated_savings,
			title, description, reason, listing_ids, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.AnalysisID, rec.SellerID, string(rec.Type),
		string(rec.Quality), rec.Score, rec.ItemCount, rec.TotalValue,
		rec.EstimatedCost, rec.EstimatedSavings, rec.Title,
		rec.Description, rec.Reason, string(listingIDs), rec.CreatedAt,
	)
	return err
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
