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

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in services.RegisterInput) (string, *models.User, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: sarah_mitchell
	Username string `json:"username"`

	// Email
	// required: true
	// default: sarah@example.com
	Email string `json:"email"`

	// Password, minimum 8 characters
	// required: true
	// default: password123
	Password string `json:"password"`

	// Whether the user may list artworks
	IsArtist bool `json:"is_artist"`

	// Artist display name, defaults to the username
	ArtistName string `json:"artist_name"`

	// Artist biography
	Bio string `json:"bio"`

	// Artist specialty
	Specialty string `json:"specialty"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`

	// Bearer token, valid 24 hours
	AccessToken string `json:"access_token"`

	// Public user summary
	User *models.User `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account, and an artist profile when is_artist is set. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure or duplicate username/email"
// @Router /api/auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, user, err := svc.Register(r.Context(), services.RegisterInput{
			Username:   req.Username,
			Email:      req.Email,
			Password:   req.Password,
			IsArtist:   req.IsArtist,
			ArtistName: req.ArtistName,
			Bio:        req.Bio,
			Specialty:  req.Specialty,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				writeError(w, http.StatusBadRequest, "Username, email, and password are required")
			case errors.Is(err, services.ErrWeakPassword):
				writeError(w, http.StatusBadRequest, "Password must be at least 8 characters long")
			case errors.Is(err, services.ErrUsernameExists):
				writeError(w, http.StatusBadRequest, "Username already exists")
			case errors.Is(err, services.ErrEmailExists):
				writeError(w, http.StatusBadRequest, "Email already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message:     "User registered successfully",
			AccessToken: token,
			User:        user,
		})
	}
}
