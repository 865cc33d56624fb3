// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package config

import (
	"fmt"

	"github.com/tomtom215/cratedigger/internal/models"
	"github.com/tomtom215/cratedigger/internal/validation"
)

// Config is the root configuration for the analysis engine.
type Config struct {
	Logging   LoggingConfig   `koanf:"logging"`
	Store     StoreConfig     `koanf:"store"`
	Database  DatabaseConfig  `koanf:"database"`
	Resolver  ResolverConfig  `koanf:"resolver"`
	Analysis  AnalysisConfig  `koanf:"analysis"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// StoreConfig selects the canonical-item store backend.
type StoreConfig struct {
	// Backend is "memory" (ephemeral, single-run) or "badger"
	// (persistent across runs).
	Backend string `koanf:"backend" validate:"oneof=memory badger"`

	// Path is the Badger data directory. Ignored for the memory backend.
	Path string `koanf:"path"`
}

// DatabaseConfig controls DuckDB persistence of analysis runs.
type DatabaseConfig struct {
	// Enabled turns on run persistence. When false no database is opened.
	Enabled bool `koanf:"enabled"`

	// Path is the DuckDB database file. Empty means in-memory.
	Path string `koanf:"path"`

	// MaxMemory caps DuckDB memory usage (e.g. "2GB").
	MaxMemory string `koanf:"max_memory"`

	// Threads sets DuckDB's thread count. 0 uses the DuckDB default.
	Threads int `koanf:"threads" validate:"min=0,max=256"`
}

// ResolverConfig tunes identity resolution.
type ResolverConfig struct {
	// AttachThreshold is the minimum fuzzy score (0-100) for attaching an
	// unseen listing to an existing item. 0 uses the built-in default.
	AttachThreshold float64 `koanf:"attach_threshold" validate:"min=0,max=100"`
}

// AnalysisConfig tunes search analysis.
type AnalysisConfig struct {
	// PreferredRegion biases seller scoring and shipping estimates toward
	// a region (US, CA, EU, UK, OTHER). Empty means no preference.
	PreferredRegion string `koanf:"preferred_region" validate:"omitempty,region"`
}

// RecommendConfig tunes recommendation generation.
type RecommendConfig struct {
	// Enabled turns recommendation generation on. Analyses still run and
	// score sellers when disabled.
	Enabled bool `koanf:"enabled"`
}

// defaultConfig returns a Config with all defaults applied. Defaults load
// first, then config file, then environment variables.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Store: StoreConfig{
			Backend: "memory",
			Path:    "/data/cratedigger/items",
		},
		Database: DatabaseConfig{
			Enabled:   false,
			Path:      "/data/cratedigger/cratedigger.duckdb",
			MaxMemory: "1GB",
			Threads:   0,
		},
		Resolver: ResolverConfig{
			AttachThreshold: 0, // 0 = built-in default
		},
		Analysis: AnalysisConfig{
			PreferredRegion: "",
		},
		Recommend: RecommendConfig{
			Enabled: true,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// PreferredRegion returns the configured region preference as a typed
// code, or nil when no preference is set.
func (c *Config) PreferredRegion() *models.RegionCode {
	if c.Analysis.PreferredRegion == "" {
		return nil
	}
	region := models.RegionCode(c.Analysis.PreferredRegion)
	return &region
}
