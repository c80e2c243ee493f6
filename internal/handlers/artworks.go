package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
	"github.com/kunsthaus/canvas-bids/internal/services"
)

// ArtworkLister defines the interface that the service must implement.
type ArtworkLister interface {
	ListArtworks(ctx context.Context, page, perPage int, category, search string) (*models.ArtworkPage, error)
}

// NewListArtworksHandler returns an HTTP handler for the public artwork
// listing.
// @Summary List artworks
// @Description Paginated public listing with optional exact category filter and substring search over title and description
// @Tags artworks
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(12)
// @Param category query string false "Exact category filter"
// @Param search query string false "Substring search"
// @Success 200 {object} models.ArtworkPage "One page of artworks"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/artworks [get]
func NewListArtworksHandler(svc ArtworkLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := queryInt(r, "page", 1)
		perPage := queryInt(r, "per_page", services.DefaultPerPage)
		category := r.URL.Query().Get("category")
		search := r.URL.Query().Get("search")

		result, err := svc.ListArtworks(r.Context(), page, perPage, category, search)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// queryInt parses an integer query parameter, falling back to def on
// absent or malformed values.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
