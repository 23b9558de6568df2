// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

// Package config loads and validates NoteLens configuration from
// layered sources: built-in defaults, an optional YAML file, and
// environment variables, in ascending precedence.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("failed to load configuration")
//	}
//	db, err := database.New(cfg.Database)
package config
