// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

// Package analysis computes per-search summary statistics and per-seller
// scoring rollups from a closed snapshot of one search's listings.
//
// The aggregator partitions listings against the user's collection and
// want-list, computes price statistics over non-collection listings,
// groups listings by seller, scores each seller on four 0-100 axes
// (price competitiveness, inventory depth, reputation, location
// preference), and ranks sellers by the weighted composite. Output feeds
// the recommendation generator.
package analysis
