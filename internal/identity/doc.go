// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

// Package identity resolves marketplace listings to canonical items.
//
// # Architecture
//
// Resolution is a two-stage process:
//
//   - Fingerprint fast path: a stable SHA-256-derived fingerprint of the
//     normalized (artist, title, year, catalog) tuple. Listings with equal
//     fingerprints always resolve to the same item, by construction.
//   - Fuzzy fallback: listings whose fingerprint is unseen are scored
//     against existing items with a weighted similarity model and attach
//     to the best candidate when the score clears the attach threshold.
//     Otherwise a new canonical item is created.
//
// Every resolution produces a MatchResult recording the confidence tier,
// the numeric score, and the component similarities, so matches are
// explainable and low-confidence ones can be routed to manual review.
//
// # Determinism
//
// Same inputs produce identical outputs: fingerprints are pure functions,
// candidate scans iterate items in creation order with first-seen
// tie-breaking, and no randomness or wall-clock input affects scoring.
//
// # Stores
//
// The ItemStore interface abstracts the canonical-item registry, which is
// the only state shared across search runs. MemoryItemStore serves
// single-process runs and tests; BadgerItemStore provides a durable
// registry whose transactional find-or-create serializes concurrent
// upserts per fingerprint.
package identity
