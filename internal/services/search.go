package services

import (
	"context"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
)

// SearchLimit caps each result list of the unified search.
const SearchLimit = 12

// SearchService serves the unified artwork/artist search.
type SearchService struct {
	artworks ArtworkReader
	artists  ArtistReader
}

// NewSearchService creates a new SearchService instance.
func NewSearchService(artworks ArtworkReader, artists ArtistReader) *SearchService {
	return &SearchService{
		artworks: artworks,
		artists:  artists,
	}
}

// Search returns up to SearchLimit artworks and artists matching the
// query, each tagged by type. An empty query returns empty lists.
func (svc *SearchService) Search(ctx context.Context, query string) ([]models.SearchArtwork, []models.SearchArtist, error) {
	artworkResults := []models.SearchArtwork{}
	artistResults := []models.SearchArtist{}

	if query == "" {
		return artworkResults, artistResults, nil
	}

	artworks, err := svc.artworks.Search(ctx, query, SearchLimit)
	if err != nil {
		logger.Log.Errorw("failed to search artworks", "query", query, "err", err)
		return nil, nil, err
	}

	artists, err := svc.artists.Search(ctx, query, SearchLimit)
	if err != nil {
		logger.Log.Errorw("failed to search artists", "query", query, "err", err)
		return nil, nil, err
	}

	for _, w := range artworks {
		artworkResults = append(artworkResults, models.SearchArtwork{
			ID:          w.ID,
			Title:       w.Title,
			Description: w.Description,
			Category:    w.Category,
			Price:       w.Price,
			Image:       w.Image,
			Artist:      w.Artist,
			Type:        "artwork",
		})
	}

	for _, a := range artists {
		artistResults = append(artistResults, models.SearchArtist{
			ID:        a.ID,
			Name:      a.Name,
			Bio:       a.Bio,
			Specialty: a.Specialty,
			Image:     a.Image,
			Works:     a.Works,
			Type:      "artist",
		})
	}

	return artworkResults, artistResults, nil
}
