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

// ArtworkCreator defines the interface that the service must implement.
type ArtworkCreator interface {
	CreateArtwork(ctx context.Context, userID int64, in services.CreateArtworkInput) (*models.ArtworkView, error)
}

// CreateArtworkRequest represents the JSON body for creating an artwork
// swagger:model CreateArtworkRequest
type CreateArtworkRequest struct {
	// Listing title
	// required: true
	// default: Sunset Dreams
	Title string `json:"title"`

	// Free-text description
	Description string `json:"description"`

	// Category, defaults to "contemporary"
	Category string `json:"category"`

	// Starting price, must be zero or positive
	// required: true
	// default: 3200
	StartingPrice *float64 `json:"starting_price"`

	// Optional image reference
	ImageURL string `json:"image_url"`
}

// CreateArtworkResponse represents a successful artwork creation
// swagger:model CreateArtworkResponse
type CreateArtworkResponse struct {
	// Success message
	// default: Artwork created successfully
	Message string `json:"message"`

	// Created artwork with its resolved artist name
	Artwork *models.ArtworkView `json:"artwork"`
}

// NewCreateArtworkHandler returns an HTTP handler for creating an
// artwork listing.
// @Summary Create an artwork
// @Description Creates a listing for an artist-flagged user, provisioning an artist profile when missing
// @Tags artworks
// @Accept json
// @Produce json
// @Param createArtworkRequest body handlers.CreateArtworkRequest true "Artwork creation request"
// @Success 201 {object} handlers.CreateArtworkResponse "Artwork created"
// @Failure 400 {object} handlers.ErrorResponse "Missing title or invalid starting price"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not an artist"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/artworks [post]
// @Security BearerAuth
func NewCreateArtworkHandler(svc ArtworkCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized artwork creation", "err", err)
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CreateArtworkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		artwork, err := svc.CreateArtwork(ctx, userID, services.CreateArtworkInput{
			Title:         req.Title,
			Description:   req.Description,
			Category:      req.Category,
			StartingPrice: req.StartingPrice,
			ImageURL:      req.ImageURL,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotAnArtist):
				writeError(w, http.StatusForbidden, "Only artists can create artworks")
			case errors.Is(err, services.ErrInvalidArtwork):
				writeError(w, http.StatusBadRequest, "Valid title and starting price are required")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, CreateArtworkResponse{
			Message: "Artwork created successfully",
			Artwork: artwork,
		})
	}
}
