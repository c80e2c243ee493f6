package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
	"github.com/kunsthaus/canvas-bids/internal/services"
)

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID int64) (*models.Profile, error)
}

// NewGetProfileHandler returns an HTTP handler for reading the caller's
// profile.
// @Summary Get user profile
// @Description Returns the user summary, plus the artist profile and artwork count for artists
// @Tags user
// @Produce json
// @Success 200 {object} models.Profile "User profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/user/profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized profile request", "err", err)
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		profile, err := svc.GetProfile(ctx, userID)
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

		writeJSON(w, http.StatusOK, profile)
	}
}
