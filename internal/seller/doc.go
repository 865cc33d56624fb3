// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

// Package seller maintains the cross-search seller registry and the
// seller-level scoring primitives: geographic normalization, shipping
// estimation, reputation scoring, and location-preference scoring.
//
// Sellers are identified by their (platform, platform-native id) pair.
// Repeat sightings refresh mutable fields with the latest observation;
// identity fields never change. Scoring functions are pure over the
// seller record so results are reproducible for a given snapshot.
package seller
