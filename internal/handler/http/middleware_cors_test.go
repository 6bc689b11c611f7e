package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/engo-config/internal/app"
	"github.com/MKhiriev/engo-config/internal/config"
)

func corsProbe(h *Handler) http.Handler {
	return h.withCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

// TestCORS_AllowedOrigin verifies that a listed origin is acknowledged.
func TestCORS_AllowedOrigin(t *testing.T) {
	h := newTestHandler(t, config.EnvLocal, map[string]string{
		app.KeyCORSAllowedOrigins: "http://a.com, http://b.com",
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://b.com")

	rec := httptest.NewRecorder()
	corsProbe(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://b.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))
}

// TestCORS_DisallowedOrigin verifies that unknown origins get no CORS headers
// while the request itself still succeeds.
func TestCORS_DisallowedOrigin(t *testing.T) {
	h := newTestHandler(t, config.EnvLocal, map[string]string{
		app.KeyCORSAllowedOrigins: "http://a.com",
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")

	rec := httptest.NewRecorder()
	corsProbe(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORS_Preflight verifies that preflight requests from an allowed origin
// are answered directly.
func TestCORS_Preflight(t *testing.T) {
	h := newTestHandler(t, config.EnvLocal, map[string]string{
		app.KeyCORSAllowedOrigins: "http://a.com",
	})

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://a.com")

	rec := httptest.NewRecorder()
	corsProbe(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

// TestCORS_EmptyAllowList verifies that with no configured origins the
// middleware never acknowledges cross-origin callers.
func TestCORS_EmptyAllowList(t *testing.T) {
	h := newTestHandler(t, config.EnvLocal, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://a.com")

	rec := httptest.NewRecorder()
	corsProbe(h).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORS_SameOriginRequest verifies that requests without an Origin header
// pass through untouched.
func TestCORS_SameOriginRequest(t *testing.T) {
	h := newTestHandler(t, config.EnvLocal, map[string]string{
		app.KeyCORSAllowedOrigins: "http://a.com",
	})

	rec := httptest.NewRecorder()
	corsProbe(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
