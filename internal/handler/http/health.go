// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/engo-config/internal/logger"
)

// healthResponse is the JSON body of GET /health.
type healthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Uptime      string `json:"uptime"`
}

// health reports liveness. When MAINTENANCE_MODE is set the endpoint answers
// 503 so load balancers drain traffic, while the process itself stays up.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	response := healthResponse{
		Status:      "ok",
		Environment: h.cfg.Environment.String(),
		Uptime:      time.Since(h.started).Round(time.Second).String(),
	}

	status := http.StatusOK
	if h.cfg.MaintenanceMode {
		response.Status = "maintenance"
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding health response")
	}
}
