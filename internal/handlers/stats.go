package handlers

import (
	"context"
	"net/http"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
)

// StatsGetter defines the interface that the service must implement.
type StatsGetter interface {
	GetStats(ctx context.Context) (*models.Stats, error)
}

// NewStatsHandler returns an HTTP handler for marketplace counters.
// @Summary Marketplace stats
// @Description Returns total artwork, artist and user counts; auction and bid totals are zero until a bidding engine exists
// @Tags stats
// @Produce json
// @Success 200 {object} models.Stats "Counters"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/stats [get]
func NewStatsHandler(svc StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.GetStats(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
