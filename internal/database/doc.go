// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

// Package database provides DuckDB-backed storage access for NoteLens.
//
// The store holds two tables written by the external ingestion pipeline:
// notes (community notes with their raw evaluation state) and posts
// (the social-media posts notes attach to). This package only reads
// them, aside from schema creation and optional mock-data seeding.
//
// Aggregation happens store-side: the publication-status decision table
// is expressed as a SQL CASE so that DuckDB groups millions of rows
// without shipping them to Go. Time-series results are then gap-filled
// in Go so that every day or month in the requested range appears,
// zero-valued when empty.
package database
