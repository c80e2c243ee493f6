package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
	"github.com/kunsthaus/canvas-bids/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, identifier, password string) (string, *models.User, error)
}

// LoginRequest represents the JSON body for user login. The username
// field accepts either the username or the email address.
// swagger:model LoginRequest
type LoginRequest struct {
	// Username or email
	// required: true
	// default: sarah_mitchell
	Username string `json:"username"`

	// Password
	// required: true
	// default: password123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Success message
	// default: Login successful
	Message string `json:"message"`

	// Bearer token, valid 24 hours
	AccessToken string `json:"access_token"`

	// Public user summary
	User *models.User `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate by username or email and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Token returned"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, user, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				writeError(w, http.StatusBadRequest, "Username and password are required")
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid credentials")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Message:     "Login successful",
			AccessToken: token,
			User:        user,
		})
	}
}
