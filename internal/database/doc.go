// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

// Package database persists analysis runs in an embedded DuckDB
// database and serves analytical queries over the accumulated history.
//
// DuckDB is used through database/sql with the duckdb-go driver. Writes
// happen once per run in a single transaction (PersistRun); reads are
// columnar analytical queries such as the cross-platform price
// comparison. All queries are instrumented with Prometheus histograms.
package database
