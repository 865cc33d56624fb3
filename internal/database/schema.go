// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package database

import "fmt"

// schemaStatements creates the run-history tables. Statements are
// idempotent; they run on every open.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS listings (
		id UUID PRIMARY KEY,
		search_id UUID NOT NULL,
		platform VARCHAR NOT NULL,
		external_id VARCHAR NOT NULL,
		title VARCHAR,
		artist VARCHAR,
		year INTEGER,
		format VARCHAR,
		catalog_number VARCHAR,
		price DOUBLE NOT NULL,
		currency VARCHAR,
		condition VARCHAR,
		seller_platform_id VARCHAR NOT NULL,
		seller_name VARCHAR,
		seller_location VARCHAR,
		in_collection BOOLEAN NOT NULL,
		in_wantlist BOOLEAN NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS match_results (
		id UUID PRIMARY KEY,
		listing_id UUID NOT NULL,
		item_id UUID NOT NULL,
		tier VARCHAR NOT NULL,
		score DOUBLE NOT NULL,
		title_similarity DOUBLE NOT NULL,
		artist_similarity DOUBLE NOT NULL,
		year_match BOOLEAN NOT NULL,
		catalog_match BOOLEAN NOT NULL,
		format_match BOOLEAN NOT NULL,
		requires_review BOOLEAN NOT NULL,
		review_state VARCHAR NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS search_analyses (
		id UUID PRIMARY KEY,
		search_id UUID NOT NULL,
		total_listings INTEGER NOT NULL,
		distinct_sellers INTEGER NOT NULL,
		multi_item_sellers INTEGER NOT NULL,
		min_price DOUBLE,
		max_price DOUBLE,
		avg_price DOUBLE,
		wantlist_matches INTEGER NOT NULL,
		collection_duplicates INTEGER NOT NULL,
		new_discoveries INTEGER NOT NULL,
		completed_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS seller_analyses (
		id UUID PRIMARY KEY,
		analysis_id UUID NOT NULL,
		seller_id UUID NOT NULL,
		platform VARCHAR NOT NULL,
		seller_name VARCHAR,
		item_count INTEGER NOT NULL,
		wantlist_items INTEGER NOT NULL,
		collection_duplicates INTEGER NOT NULL,
		total_value DOUBLE NOT NULL,
		avg_value DOUBLE NOT NULL,
		estimated_shipping DOUBLE NOT NULL,
		price_competitiveness DOUBLE NOT NULL,
		inventory_depth DOUBLE NOT NULL,
		reputation DOUBLE NOT NULL,
		location_preference DOUBLE NOT NULL,
		overall_score DOUBLE NOT NULL,
		seller_rank INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS deal_recommendations (
		id UUID PRIMARY KEY,
		analysis_id UUID NOT NULL,
		seller_id UUID NOT NULL,
		type VARCHAR NOT NULL,
		quality VARCHAR NOT NULL,
		score DOUBLE NOT NULL,
		item_count INTEGER NOT NULL,
		total_value DOUBLE NOT NULL,
		estimated_cost DOUBLE NOT NULL,
		estimated_savings DOUBLE NOT NULL,
		title VARCHAR NOT NULL,
		description VARCHAR,
		reason VARCHAR,
		listing_ids VARCHAR NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
}

func (db *DB) initSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}
