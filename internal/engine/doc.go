// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

// Package engine orchestrates one search analysis end to end: listing
// validation, identity resolution, seller aggregation, recommendation
// generation, and optional persistence.
//
// Error policy is per-listing skip-and-continue: a malformed or
// unresolvable listing is dropped from the run (counted and logged),
// never failing the batch. Only infrastructure failures (store access,
// persistence) surface as errors.
package engine
