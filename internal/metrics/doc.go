// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

// Package metrics defines the Prometheus collectors for the analysis
// pipeline. Collectors are package-level and registered via promauto at
// init, so importing packages can instrument without wiring.
package metrics
