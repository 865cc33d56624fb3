// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

// Package models defines data structures shared across the Cratedigger
// analysis pipeline: marketplace listings, canonical items, match results,
// sellers, per-search analyses, and deal recommendations.
//
// All records that cross a persistence or serialization boundary live here
// so that the identity, seller, analysis, and recommend packages can
// exchange data without importing each other.
package models
