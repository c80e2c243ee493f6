package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
)

// Searcher defines the interface that the service must implement.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.SearchArtwork, []models.SearchArtist, error)
}

// SearchResponse represents a unified search result
// swagger:model SearchResponse
type SearchResponse struct {
	// The query searched for
	Query string `json:"query"`

	// Matching artworks, up to 12, tagged type=artwork
	Artworks []models.SearchArtwork `json:"artworks"`

	// Matching artists, up to 12, tagged type=artist
	Artists []models.SearchArtist `json:"artists"`

	// Combined result count
	TotalResults int `json:"total_results"`
}

// EmptySearchResponse is returned for a blank query
// swagger:model EmptySearchResponse
type EmptySearchResponse struct {
	Artworks []models.SearchArtwork `json:"artworks"`
	Artists  []models.SearchArtist  `json:"artists"`

	// Prompt message
	// default: Please provide a search query
	Message string `json:"message"`
}

// NewSearchHandler returns an HTTP handler for the unified search.
// @Summary Unified search
// @Description Substring search across artworks (title, description) and artists (name, bio, specialty)
// @Tags search
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} handlers.SearchResponse "Search results"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/search [get]
func NewSearchHandler(svc Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		artworks, artists, err := svc.Search(r.Context(), query)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if query == "" {
			writeJSON(w, http.StatusOK, EmptySearchResponse{
				Artworks: artworks,
				Artists:  artists,
				Message:  "Please provide a search query",
			})
			return
		}

		writeJSON(w, http.StatusOK, SearchResponse{
			Query:        query,
			Artworks:     artworks,
			Artists:      artists,
			TotalResults: len(artworks) + len(artists),
		})
	}
}
