package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
	"github.com/kunsthaus/canvas-bids/internal/services"
)

// UserArtworksLister defines the interface that the service must implement.
type UserArtworksLister interface {
	ListUserArtworks(ctx context.Context, userID int64) ([]models.ArtworkView, error)
}

// UserArtworksResponse represents the caller's artwork list
// swagger:model UserArtworksResponse
type UserArtworksResponse struct {
	// Artworks owned by the caller
	Artworks []models.ArtworkView `json:"artworks"`
}

// NewUserArtworksHandler returns an HTTP handler for listing the
// caller's artworks.
// @Summary List own artworks
// @Description Returns every artwork owned by the authenticated user
// @Tags user
// @Produce json
// @Success 200 {object} handlers.UserArtworksResponse "Artwork list"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/user/artworks [get]
// @Security BearerAuth
func NewUserArtworksHandler(svc UserArtworksLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized artworks request", "err", err)
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		artworks, err := svc.ListUserArtworks(ctx, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, UserArtworksResponse{Artworks: artworks})
	}
}
