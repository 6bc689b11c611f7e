// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the engo backend.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, CORS, and rate-limit
// concerns are all handled at this layer; the behaviour of every middleware
// is driven by the resolved configuration the handler was constructed with.
package http

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/engo-config/internal/app"
	"github.com/MKhiriev/engo-config/internal/auth"
	"github.com/MKhiriev/engo-config/internal/config"
	"github.com/MKhiriev/engo-config/internal/logger"
)

type Handler struct {
	cfg      app.AppConfig
	resolved *config.Resolved
	tokens   *auth.TokenManager

	// limiter is nil when rate limiting is disabled (RATE_LIMIT_RPS <= 0).
	limiter *rate.Limiter

	logger  *logger.Logger
	started time.Time
}

// NewHandler wires the HTTP handler with its dependencies. Both the typed
// configuration and the raw resolved value are threaded in explicitly: the
// typed value drives behaviour, the resolved value backs the introspection
// endpoint.
func NewHandler(cfg app.AppConfig, resolved *config.Resolved, tokens *auth.TokenManager, logger *logger.Logger) *Handler {
	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), burst)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		cfg:      cfg,
		resolved: resolved,
		tokens:   tokens,
		limiter:  limiter,
		logger:   logger,
		started:  time.Now(),
	}
}
