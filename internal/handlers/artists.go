package handlers

import (
	"context"
	"net/http"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
	"github.com/kunsthaus/canvas-bids/internal/services"
)

// ArtistLister defines the interface that the service must implement.
type ArtistLister interface {
	ListArtists(ctx context.Context, page, perPage int, search string) (*models.ArtistPage, error)
}

// NewListArtistsHandler returns an HTTP handler for the public artist
// directory.
// @Summary List artists
// @Description Paginated directory with optional substring search over name, bio and specialty; each entry carries its artwork count
// @Tags artists
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(12)
// @Param search query string false "Substring search"
// @Success 200 {object} models.ArtistPage "One page of artists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/artists [get]
func NewListArtistsHandler(svc ArtistLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := queryInt(r, "page", 1)
		perPage := queryInt(r, "per_page", services.DefaultPerPage)
		search := r.URL.Query().Get("search")

		result, err := svc.ListArtists(r.Context(), page, perPage, search)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
