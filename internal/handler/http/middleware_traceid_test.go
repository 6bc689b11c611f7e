package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/engo-config/internal/config"
)

// TestTraceID_Generated verifies that a request without a trace header gets a
// fresh UUID echoed back.
func TestTraceID_Generated(t *testing.T) {
	h := newTestHandler(t, config.EnvLocal, nil)
	probe := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	probe.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	traceID := rec.Header().Get(traceIDHeader)
	require.NotEmpty(t, traceID)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
}

// TestTraceID_Propagated verifies that an incoming trace header is reused
// rather than replaced.
func TestTraceID_Propagated(t *testing.T) {
	h := newTestHandler(t, config.EnvLocal, nil)
	probe := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "incoming-trace")

	rec := httptest.NewRecorder()
	probe.ServeHTTP(rec, req)

	assert.Equal(t, "incoming-trace", rec.Header().Get(traceIDHeader))
}
