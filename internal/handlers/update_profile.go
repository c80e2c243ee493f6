package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/services"
)

// ProfileUpdater defines the interface that the service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID int64, in services.UpdateProfileInput) error
}

// UpdateProfileRequest represents the JSON body for a partial profile
// update. Absent fields are left untouched; unknown fields are ignored.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// New email, revalidated for uniqueness
	Email *string `json:"email"`

	// Artist display name (artists only)
	ArtistName *string `json:"artist_name"`

	// Artist biography (artists only)
	Bio *string `json:"bio"`

	// Artist specialty (artists only)
	Specialty *string `json:"specialty"`

	// Artist profile image reference (artists only)
	ProfileImage *string `json:"profile_image"`
}

// UpdateProfileResponse represents a successful profile update
// swagger:model UpdateProfileResponse
type UpdateProfileResponse struct {
	// Success message
	// default: Profile updated successfully
	Message string `json:"message"`
}

// NewUpdateProfileHandler returns an HTTP handler for updating the
// caller's profile.
// @Summary Update user profile
// @Description Applies a partial update to the user and artist profile fields
// @Tags user
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile update request"
// @Success 200 {object} handlers.UpdateProfileResponse "Profile updated"
// @Failure 400 {object} handlers.ErrorResponse "Email already exists"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/user/profile [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized profile update", "err", err)
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		err = svc.UpdateProfile(ctx, userID, services.UpdateProfileInput{
			Email:        req.Email,
			ArtistName:   req.ArtistName,
			Bio:          req.Bio,
			Specialty:    req.Specialty,
			ProfileImage: req.ProfileImage,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailExists):
				writeError(w, http.StatusBadRequest, "Email already exists")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, UpdateProfileResponse{
			Message: "Profile updated successfully",
		})
	}
}
