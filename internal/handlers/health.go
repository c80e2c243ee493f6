package handlers

import (
	"net/http"
	"time"
)

// HealthResponse represents the liveness payload
// swagger:model HealthResponse
type HealthResponse struct {
	// Liveness status
	// default: healthy
	Status string `json:"status"`

	// Server timestamp, RFC 3339
	Timestamp string `json:"timestamp"`

	// Service version
	// default: 1.0.0
	Version string `json:"version"`
}

// NewHealthHandler returns an HTTP handler for the liveness check.
// @Summary Health check
// @Description Returns a fixed liveness payload with the server time
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is healthy"
// @Router /api/health [get]
func NewHealthHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   version,
		})
	}
}
