// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

// Package models defines the data model shared across NoteLens: the
// note and post entities read from the store, the derived publication
// status and its decision table, and the response shapes served by the
// graph and data APIs.
//
// The publication status is intentionally a closed enumeration rather
// than a bare string so that a typo cannot silently propagate through
// an aggregation.
package models
