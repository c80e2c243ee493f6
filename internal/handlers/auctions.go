package handlers

import (
	"context"
	"net/http"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
)

// AuctionLister defines the interface that the service must implement.
type AuctionLister interface {
	ListAuctions(ctx context.Context) (*models.AuctionPage, error)
}

// NewListAuctionsHandler returns an HTTP handler for the simulated
// auction listing.
// @Summary List auctions
// @Description Returns a synthetic live auction view for every artwork; bid figures are simulated, not real bids
// @Tags auctions
// @Produce json
// @Success 200 {object} models.AuctionPage "Auction views"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/auctions [get]
func NewListAuctionsHandler(svc AuctionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.ListAuctions(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
