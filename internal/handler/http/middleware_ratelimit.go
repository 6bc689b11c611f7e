package http

import (
	"net/http"

	"github.com/MKhiriev/engo-config/internal/logger"
)

// withRateLimit applies the configured token-bucket limiter to every request.
// A nil limiter (RATE_LIMIT_RPS <= 0) disables limiting entirely.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.Allow() {
			logger.FromRequest(r).Warn().Msg("rate limit exceeded")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
