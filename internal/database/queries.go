// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/cratedigger/internal/models"
)

// PriceComparisonRow is one purchasable listing in the cross-platform
// price view for a canonical item.
type PriceComparisonRow struct {
	ItemID     uuid.UUID `json:"item_id"`
	ListingID  uuid.UUID `json:"listing_id"`
	Platform   string    `json:"platform"`
	Title      string    `json:"title"`
	Artist     string    `json:"artist"`
	Price      float64   `json:"price"`
	Currency   string    `json:"currency"`
	SellerName string    `json:"seller_name"`
}

// PriceComparison returns every priced, purchasable listing of a search
// grouped by canonical item, cheapest first within each item. Listings
// flagged in_collection and listings without price data are excluded.
func (db *DB) PriceComparison(ctx context.Context, searchID uuid.UUID) (rows []PriceComparisonRow, err error) {
	start := time.Now()
	defer func() { observe("price_comparison", "listings", start, err) }()

	result, err := db.conn.QueryContext(ctx, `
		SELECT
			CAST(m.item_id AS VARCHAR),
			CAST(l.id AS VARCHAR),
			l.platform, l.title, l.artist, l.price,
			COALESCE(l.currency, ''), COALESCE(l.seller_name, '')
		FROM match_results m
		JOIN listings l ON l.id = m.listing_id
		WHERE l.search_id = ?
		  AND l.price > 0
		  AND NOT l.in_collection
		ORDER BY CAST(m.item_id AS VARCHAR), l.price ASC`,
		searchID,
	)
	if err != nil {
		return nil, fmt.Errorf("price comparison query: %w", err)
	}
	defer func() {
		if closeErr := result.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for result.Next() {
		var (
			row       PriceComparisonRow
			itemID    string
			listingID string
		)
		if err = result.Scan(&itemID, &listingID, &row.Platform, &row.Title,
			&row.Artist, &row.Price, &row.Currency, &row.SellerName); err != nil {
			return nil, fmt.Errorf("scan price comparison row: %w", err)
		}
		if row.ItemID, err = uuid.Parse(itemID); err != nil {
			return nil, fmt.Errorf("parse item id: %w", err)
		}
		if row.ListingID, err = uuid.Parse(listingID); err != nil {
			return nil, fmt.Errorf("parse listing id: %w", err)
		}
		rows = append(rows, row)
	}
	if err = result.Err(); err != nil {
		return nil, fmt.Errorf("iterate price comparison rows: %w", err)
	}
	return rows, nil
}

// RecentAnalyses returns the most recent search analyses, newest first.
func (db *DB) RecentAnalyses(ctx context.Context, limit int) (analyses []*models.SearchAnalysis, err error) {
	start := time.Now()
	defer func() { observe("recent_analyses", "search_analyses", start, err) }()

	if limit <= 0 {
		limit = 20
	}

	result, err := db.conn.QueryContext(ctx, `
		SELECT
			CAST(id AS VARCHAR), CAST(search_id AS VARCHAR),
			total_listings, distinct_sellers, multi_item_sellers,
			min_price, max_price, avg_price,
			wantlist_matches, collection_duplicates, new_discoveries,
			completed_at
		FROM search_analyses
		ORDER BY completed_at DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent analyses query: %w", err)
	}
	defer func() {
		if closeErr := result.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for result.Next() {
		var (
			sa       models.SearchAnalysis
			id       string
			searchID string
		)
		if err = result.Scan(&id, &searchID, &sa.TotalListings,
			&sa.DistinctSellers, &sa.MultiItemSellers,
			&sa.MinPrice, &sa.MaxPrice, &sa.AvgPrice,
			&sa.WantlistMatches, &sa.CollectionDuplicates,
			&sa.NewDiscoveries, &sa.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan search analysis row: %w", err)
		}
		if sa.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse analysis id: %w", err)
		}
		if sa.SearchID, err = uuid.Parse(searchID); err != nil {
			return nil, fmt.Errorf("parse search id: %w", err)
		}
		analyses = append(analyses, &sa)
	}
	if err = result.Err(); err != nil {
		return nil, fmt.Errorf("iterate search analysis rows: %w", err)
	}
	return analyses, nil
}
