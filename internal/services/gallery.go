package services

import (
	"context"
	"errors"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
)

// Error variables
var (
	ErrNotAnArtist    = errors.New("only artists can create artworks")
	ErrInvalidArtwork = errors.New("valid title and starting price are required")
)

// DefaultPerPage is the page size used when the caller omits per_page.
const DefaultPerPage = 12

// LazyArtistSpecialty is assigned to artist profiles provisioned on first
// artwork creation.
const LazyArtistSpecialty = "Contemporary Art"

// ArtworkReader defines read-only operations for artwork listings.
type ArtworkReader interface {
	List(ctx context.Context, category, search string, limit, offset int) ([]models.ArtworkView, error)
	Count(ctx context.Context, category, search string) (int64, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.ArtworkView, error)
	ListAll(ctx context.Context) ([]models.ArtworkView, error)
	Search(ctx context.Context, q string, limit int) ([]models.ArtworkView, error)
	CountByArtistID(ctx context.Context, artistID int64) (int64, error)
}

// ArtworkWriter defines write operations for artwork listings.
type ArtworkWriter interface {
	Save(ctx context.Context, title, description, category string, price float64, imageURL string, userID, artistID int64) (*models.ArtworkDB, error)
}

// CreateArtworkInput is the payload accepted by CreateArtwork. A nil
// StartingPrice is invalid; zero is a valid starting price.
type CreateArtworkInput struct {
	Title         string
	Description   string
	Category      string
	StartingPrice *float64
	ImageURL      string
}

// GalleryService handles the public artwork listing and artwork creation.
type GalleryService struct {
	users         UserReader
	artists       ArtistReader
	artistWriter  ArtistWriter
	artworks      ArtworkReader
	artworkWriter ArtworkWriter
	events        EventWriter
}

// NewGalleryService creates a new GalleryService instance.
func NewGalleryService(
	users UserReader,
	artists ArtistReader,
	artistWriter ArtistWriter,
	artworks ArtworkReader,
	artworkWriter ArtworkWriter,
	events EventWriter,
) *GalleryService {
	return &GalleryService{
		users:         users,
		artists:       artists,
		artistWriter:  artistWriter,
		artworks:      artworks,
		artworkWriter: artworkWriter,
		events:        events,
	}
}

// ListArtworks returns one page of the public listing with pagination
// metadata.
func (svc *GalleryService) ListArtworks(ctx context.Context, page, perPage int, category, search string) (*models.ArtworkPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	total, err := svc.artworks.Count(ctx, category, search)
	if err != nil {
		logger.Log.Errorw("failed to count artworks", "err", err)
		return nil, err
	}

	artworks, err := svc.artworks.List(ctx, category, search, perPage, (page-1)*perPage)
	if err != nil {
		logger.Log.Errorw("failed to list artworks", "err", err)
		return nil, err
	}

	return &models.ArtworkPage{
		Artworks:   artworks,
		Pagination: models.NewPagination(page, perPage, total),
	}, nil
}

// CreateArtwork creates a listing for an artist-flagged user, lazily
// provisioning an artist profile when the user has none yet.
func (svc *GalleryService) CreateArtwork(ctx context.Context, userID int64, in CreateArtworkInput) (*models.ArtworkView, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !user.IsArtist {
		return nil, ErrNotAnArtist
	}

	if in.Title == "" || in.StartingPrice == nil || *in.StartingPrice < 0 {
		return nil, ErrInvalidArtwork
	}

	artist, err := svc.artists.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get artist profile", "user_id", userID, "err", err)
		return nil, err
	}
	if artist == nil {
		artist, err = svc.artistWriter.Save(ctx, userID, user.Username, "", LazyArtistSpecialty)
		if err != nil {
			logger.Log.Errorw("failed to provision artist profile", "user_id", userID, "err", err)
			return nil, err
		}
	}

	category := in.Category
	if category == "" {
		category = models.DefaultCategory
	}

	artwork, err := svc.artworkWriter.Save(ctx, in.Title, in.Description, category, *in.StartingPrice, in.ImageURL, userID, artist.ID)
	if err != nil {
		logger.Log.Errorw("failed to save artwork", "user_id", userID, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.events, newEvent(models.EventArtworkListed, userID, artwork.ID))

	return &models.ArtworkView{
		ID:          artwork.ID,
		Title:       artwork.Title,
		Description: artwork.Description,
		Category:    artwork.Category,
		Price:       artwork.Price,
		Image:       artwork.ImageURL,
		Artist:      artist.Name,
		CreatedAt:   artwork.CreatedAt,
	}, nil
}
