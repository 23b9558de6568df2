// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

// Package api implements the NoteLens HTTP surface with chi:
//
//   - /api/v1/graphs/*  aggregated chart data with {data, updatedAt} envelopes
//   - /api/v1/data/*    raw note and post listings
//   - /api/v1/health/*  liveness and readiness probes
//   - /api/v1/system/*  utility endpoints
//   - /metrics          Prometheus exposition
//
// Errors are served as {"detail": "<message>"}: 400 for malformed
// period or range tokens, 422 for out-of-range parameters, and a
// generic 500 for storage failures whose cause is only logged.
package api
