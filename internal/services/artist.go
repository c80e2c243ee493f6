package services

import (
	"context"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
)

// ArtistReader defines read-only operations for artist profiles.
type ArtistReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.ArtistDB, error)
	List(ctx context.Context, search string, limit, offset int) ([]models.ArtistView, error)
	Count(ctx context.Context, search string) (int64, error)
	Search(ctx context.Context, q string, limit int) ([]models.ArtistView, error)
}

// ArtistWriter defines write operations for artist profiles.
type ArtistWriter interface {
	Save(ctx context.Context, userID int64, name, bio, specialty string) (*models.ArtistDB, error)
	Update(ctx context.Context, artistID int64, name, bio, specialty, profileImage *string) error
}

// ArtistService serves the public artist directory.
type ArtistService struct {
	artists ArtistReader
}

// NewArtistService creates a new ArtistService instance.
func NewArtistService(artists ArtistReader) *ArtistService {
	return &ArtistService{artists: artists}
}

// ListArtists returns one page of the directory with pagination metadata.
// Each entry carries its artwork count.
func (svc *ArtistService) ListArtists(ctx context.Context, page, perPage int, search string) (*models.ArtistPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	total, err := svc.artists.Count(ctx, search)
	if err != nil {
		logger.Log.Errorw("failed to count artists", "err", err)
		return nil, err
	}

	artists, err := svc.artists.List(ctx, search, perPage, (page-1)*perPage)
	if err != nil {
		logger.Log.Errorw("failed to list artists", "err", err)
		return nil, err
	}

	return &models.ArtistPage{
		Artists:    artists,
		Pagination: models.NewPagination(page, perPage, total),
	}, nil
}
