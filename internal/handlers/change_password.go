package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/services"
)

// PasswordChanger defines the interface that the service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	CurrentPassword string `json:"current_password"`

	// New password, minimum 8 characters
	// required: true
	NewPassword string `json:"new_password"`
}

// ChangePasswordResponse represents a successful password change
// swagger:model ChangePasswordResponse
type ChangePasswordResponse struct {
	// Success message
	// default: Password changed successfully
	Message string `json:"message"`
}

// NewChangePasswordHandler returns an HTTP handler for changing the
// caller's password. Previously issued tokens stay valid until expiry.
// @Summary Change password
// @Description Verifies the current password and replaces the stored hash
// @Tags user
// @Accept json
// @Produce json
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Password change request"
// @Success 200 {object} handlers.ChangePasswordResponse "Password changed"
// @Failure 400 {object} handlers.ErrorResponse "Wrong current password or weak new password"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/user/change-password [post]
// @Security BearerAuth
func NewChangePasswordHandler(svc PasswordChanger, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized password change", "err", err)
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		err = svc.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				writeError(w, http.StatusBadRequest, "Current password and new password are required")
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusBadRequest, "Current password is incorrect")
			case errors.Is(err, services.ErrWeakPassword):
				writeError(w, http.StatusBadRequest, "New password must be at least 8 characters long")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, ChangePasswordResponse{
			Message: "Password changed successfully",
		})
	}
}
