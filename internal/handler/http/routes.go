package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/engo-config/internal/config"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	router.Use(h.withRateLimit)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)

		// Debug token issuance exists in the local environment only.
		if h.cfg.Environment == config.EnvLocal {
			r.Post("/api/token", h.issueToken)
		}
	})

	// routes behind bearer-token authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/config", h.configInfo)
	})

	return router
}
