// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

// Package main is the entry point for the cratedigger analyzer CLI.
//
// The analyzer reads one search snapshot (a JSON file of marketplace
// listings), runs the full analysis pipeline, and writes the resulting
// analysis, seller rankings, and deal recommendations as JSON.
//
// # Pipeline
//
//  1. Configuration: Koanf v2 layered loading (defaults, YAML file,
//     environment variables)
//  2. Item store: in-memory for one-shot runs, or Badger for a
//     persistent item registry across runs (STORE_BACKEND=badger)
//  3. Identity resolution: fingerprint + fuzzy matching of listings to
//     canonical items
//  4. Analysis: per-search statistics and per-seller scoring
//  5. Recommendations: rule-driven deal generation
//  6. Persistence (optional): DuckDB run history (PERSIST_ENABLED=true)
//
// # Input Format
//
// The input file carries one search:
//
//	{
//	  "search_id": "6d1f...",
//	  "preferred_region": "US",
//	  "listings": [ { "platform": "discogs", "external_id": "123", ... } ]
//	}
//
// An omitted search_id gets a generated one; preferred_region falls back
// to the configured default.
//
// # Example Usage
//
//	export LOG_LEVEL=debug
//	export PREFERRED_REGION=US
//	analyzer -input search.json -output analysis.json
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/cratedigger/internal/config"
	"github.com/tomtom215/cratedigger/internal/database"
	"github.com/tomtom215/cratedigger/internal/engine"
	"github.com/tomtom215/cratedigger/internal/identity"
	"github.com/tomtom215/cratedigger/internal/logging"
	"github.com/tomtom215/cratedigger/internal/models"
	"github.com/tomtom215/cratedigger/internal/seller"
)

// searchInput is the JSON shape of one search snapshot.
type searchInput struct {
	SearchID        uuid.UUID         `json:"search_id"`
	PreferredRegion string            `json:"preferred_region,omitempty"`
	Listings        []*models.Listing `json:"listings"`
}

// output is the JSON shape written for one completed run.
type output struct {
	Search          *models.SearchAnalysis       `json:"search"`
	Sellers         []*models.SellerAnalysis     `json:"sellers"`
	Recommendations []*models.DealRecommendation `json:"recommendations"`
	Matches         []*models.MatchResult        `json:"matches"`
	Skipped         int                          `json:"skipped_listings"`
}

func main() {
	configPath := flag.String("config", "", "config file path (default: search standard locations)")
	inputPath := flag.String("input", "", "input search snapshot JSON file (required)")
	outputPath := flag.String("output", "", "output JSON file (default: stdout)")
	flag.Parse()

	if err := run(*configPath, *inputPath, *outputPath); err != nil {
		logging.Error().Err(err).Msg("analyzer failed")
		os.Exit(1)
	}
}

func run(configPath, inputPath, outputPath string) error {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	if inputPath == "" {
		return fmt.Errorf("-input is required")
	}
	in, err := readInput(inputPath)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var sink engine.Sink
	if cfg.Database.Enabled {
		db, err := database.New(&cfg.Database)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logging.Warn().Err(err).Msg("failed to close database")
			}
		}()
		sink = db
	}

	resolver := identity.NewResolver(store, identity.ResolverConfig{
		AttachThreshold: cfg.Resolver.AttachThreshold,
	}, logging.Logger())

	eng, err := engine.New(engine.Options{
		Resolver:         resolver,
		Registry:         seller.NewRegistry(),
		PreferredRegion:  cfg.PreferredRegion(),
		RecommendEnabled: cfg.Recommend.Enabled,
		Sink:             sink,
		Logger:           logging.Logger(),
	})
	if err != nil {
		return err
	}

	req := engine.Request{
		SearchID: in.SearchID,
		Listings: in.Listings,
	}
	if in.SearchID == uuid.Nil {
		req.SearchID = uuid.New()
	}
	if in.PreferredRegion != "" {
		region := models.RegionCode(in.PreferredRegion)
		if !region.IsValid() {
			return fmt.Errorf("invalid preferred_region %q", in.PreferredRegion)
		}
		req.PreferredRegion = &region
	}

	resp, err := eng.AnalyzeSearch(context.Background(), req)
	if err != nil {
		return fmt.Errorf("analyze search: %w", err)
	}

	return writeOutput(outputPath, &output{
		Search:          resp.Search,
		Sellers:         resp.Sellers,
		Recommendations: resp.Recommendations,
		Matches:         resp.Matches,
		Skipped:         resp.Skipped,
	})
}

// openStore builds the canonical-item store from config and returns a
// close function.
func openStore(cfg *config.Config) (identity.ItemStore, func(), error) {
	if cfg.Store.Backend != "badger" {
		return identity.NewMemoryItemStore(), func() {}, nil
	}

	opts := badger.DefaultOptions(cfg.Store.Path)
	opts.Logger = nil // badger's own logger is noisy; rely on ours
	db, err := badger.Open(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("open badger at %s: %w", cfg.Store.Path, err)
	}
	store, err := identity.NewBadgerItemStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("open item store: %w", err)
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logging.Warn().Err(err).Msg("failed to close item store")
		}
		if err := db.Close(); err != nil {
			logging.Warn().Err(err).Msg("failed to close badger")
		}
	}, nil
}

func readInput(path string) (*searchInput, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied input path is the CLI contract
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	in := &searchInput{}
	if err := json.Unmarshal(data, in); err != nil {
		return nil, fmt.Errorf("parse input file: %w", err)
	}
	return in, nil
}

func writeOutput(path string, out *output) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}
