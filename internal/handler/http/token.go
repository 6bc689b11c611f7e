package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/engo-config/internal/logger"
)

// issueTokenRequest is the JSON body of POST /api/token.
type issueTokenRequest struct {
	Subject string `json:"subject"`
}

// issueTokenResponse is the JSON body returned on success.
type issueTokenResponse struct {
	Token string `json:"token"`
}

// issueToken hands out a bearer token for local development. The route is
// registered only when the resolved environment is local (see Init); staging
// and production obtain tokens from the real identity provider.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request issueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Subject == "" {
		log.Warn().Msg("invalid token request body")
		http.Error(w, "subject is required", http.StatusBadRequest)
		return
	}

	token, err := h.tokens.Issue(request.Subject)
	if err != nil {
		log.Err(err).Msg("error issuing token")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(issueTokenResponse{Token: token}); err != nil {
		log.Err(err).Msg("error encoding token response")
	}
}
