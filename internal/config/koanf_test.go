// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tomtom215/cratedigger/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
	if cfg.Store.Backend != "memory" {
		t.Errorf("Store.Backend = %q, want memory", cfg.Store.Backend)
	}
	if cfg.Database.Enabled {
		t.Error("Database.Enabled = true, want false by default")
	}
	if !cfg.Recommend.Enabled {
		t.Error("Recommend.Enabled = false, want true by default")
	}
	if cfg.PreferredRegion() != nil {
		t.Errorf("PreferredRegion() = %v, want nil by default", cfg.PreferredRegion())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORE_BACKEND", "badger")
	t.Setenv("STORE_PATH", "/tmp/items")
	t.Setenv("PREFERRED_REGION", "US")
	t.Setenv("RESOLVER_ATTACH_THRESHOLD", "90")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Store.Backend != "badger" {
		t.Errorf("Store.Backend = %q, want badger", cfg.Store.Backend)
	}
	if cfg.Store.Path != "/tmp/items" {
		t.Errorf("Store.Path = %q, want /tmp/items", cfg.Store.Path)
	}
	if cfg.Resolver.AttachThreshold != 90 {
		t.Errorf("Resolver.AttachThreshold = %v, want 90", cfg.Resolver.AttachThreshold)
	}

	region := cfg.PreferredRegion()
	if region == nil || *region != models.RegionUS {
		t.Errorf("PreferredRegion() = %v, want US", region)
	}
}

func TestLoadUnmappedEnvIgnored(t *testing.T) {
	t.Setenv("PATH_EXTRA_NOISE", "should-not-appear")
	t.Setenv("LEVEL", "debug") // not a mapped name

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, unmapped env leaked into config", cfg.Logging.Level)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("logging:\n  level: warn\nanalysis:\n  preferred_region: UK\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn from file", cfg.Logging.Level)
	}
	if cfg.Analysis.PreferredRegion != "UK" {
		t.Errorf("Analysis.PreferredRegion = %q, want UK", cfg.Analysis.PreferredRegion)
	}
	// File did not touch store config: defaults survive layering.
	if cfg.Store.Backend != "memory" {
		t.Errorf("Store.Backend = %q, want memory", cfg.Store.Backend)
	}
}

func TestLoadEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env beats file)", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"bad backend", "STORE_BACKEND", "redis"},
		{"bad region", "PREFERRED_REGION", "MARS"},
		{"threshold out of range", "RESOLVER_ATTACH_THRESHOLD", "250"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadFile(""); err == nil {
				t.Errorf("LoadFile() with %s=%s succeeded, want validation error", tt.key, tt.value)
			}
		})
	}
}
