// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/MKhiriev/engo-config/internal/app"
	"github.com/MKhiriev/engo-config/internal/logger"
)

// redactedFields never have their value exposed by the introspection
// endpoint.
var redactedFields = map[string]struct{}{
	app.KeyJWTSecret: {},
}

const redactedPlaceholder = "[REDACTED]"

// configInfoResponse is the JSON body of GET /api/config.
type configInfoResponse struct {
	Environment string            `json:"environment"`
	Fields      map[string]string `json:"fields"`
}

// configInfo exposes the resolved configuration for operational debugging.
// The route sits behind the auth middleware; secrets are additionally
// redacted and URL credentials masked, so a leaked response body never
// discloses them.
func (h *Handler) configInfo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	log.Debug().Str("subject", subjectFromContext(r.Context())).Msg("config introspection requested")

	fields := make(map[string]string, len(h.resolved.Keys()))
	for _, name := range h.resolved.Keys() {
		if _, secret := redactedFields[name]; secret {
			fields[name] = redactedPlaceholder
			continue
		}
		fields[name] = maskURLCredentials(h.resolved.Raw(name))
	}

	w.Header().Set("Content-Type", "application/json")
	response := configInfoResponse{
		Environment: h.resolved.Environment().String(),
		Fields:      fields,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Err(err).Msg("error encoding config response")
	}
}

// maskURLCredentials replaces the password of a URL-shaped value with "xxxxx".
// Non-URL values and URLs without userinfo pass through unchanged.
func maskURLCredentials(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.User == nil {
		return raw
	}

	if _, hasPassword := parsed.User.Password(); hasPassword {
		parsed.User = url.UserPassword(parsed.User.Username(), "xxxxx")
	}

	return parsed.String()
}
