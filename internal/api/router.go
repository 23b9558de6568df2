// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/notelens/notelens/internal/config"
	"github.com/notelens/notelens/internal/database"
)

// Handler bundles the dependencies of the HTTP handlers.
type Handler struct {
	db           *database.DB
	defaultLimit int
}

// NewHandler creates a Handler backed by db. defaultLimit is the item
// limit applied to ranked views and listings when the caller omits one.
func NewHandler(db *database.DB, defaultLimit int) *Handler {
	return &Handler{db: db, defaultLimit: defaultLimit}
}

// NewRouter builds the chi router with all NoteLens routes and
// middleware wired.
func NewRouter(h *Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.API.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Probes stay outside the metrics middleware so scrapes and
	// orchestrator polling do not drown the request series.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Metrics.Enabled {
			r.Use(prometheusMiddleware)
		}

		r.Route("/graphs", func(r chi.Router) {
			r.Get("/daily-notes", h.GraphDailyNotes)
			r.Get("/daily-posts", h.GraphDailyPosts)
			r.Get("/notes-annual", h.GraphNotesAnnual)
			r.Get("/notes-evaluation", h.GraphNotesEvaluation)
			r.Get("/notes-evaluation-status", h.GraphNotesEvaluationStatus)
			r.Get("/post-influence", h.GraphPostInfluence)
		})

		r.Route("/data", func(r chi.Router) {
			r.Get("/notes", h.DataNotes)
			r.Get("/posts", h.DataPosts)
		})

		r.Get("/system/ping", h.SystemPing)
	})

	if cfg.Metrics.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}
