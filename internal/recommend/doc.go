// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

// Package recommend turns ranked seller analyses into explainable deal
// recommendations.
//
// Generation is rule-driven: an ordered table of (predicate, builder)
// pairs is evaluated against each of the top ranked sellers, and the
// first matching rule wins, so a seller produces at most one
// recommendation per analysis. Every recommendation carries a type, a
// quality bucket, and human-readable title/description/reason strings.
//
// Listings flagged in_collection are stripped centrally before any rule
// runs: no recommendation ever covers an item the user already owns, and
// sellers with nothing purchasable are skipped outright.
package recommend
