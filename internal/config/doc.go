// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

// Package config loads and validates engine configuration with Koanf v2.
//
// Configuration is layered, highest priority last:
//
//  1. Built-in defaults
//  2. Optional YAML config file (CONFIG_PATH or standard locations)
//  3. Environment variables (LOG_LEVEL, STORE_BACKEND, DUCKDB_PATH, ...)
//
// Only explicitly mapped environment variables are read; unrelated
// variables never leak into the configuration. The final Config is
// validated with go-playground/validator before use.
package config
