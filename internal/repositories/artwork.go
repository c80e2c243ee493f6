package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
)

// selectArtworkView joins the owning artist so each listing carries a
// resolved display name, falling back to "Unknown Artist" when the
// artwork has no artist or the profile is gone.
const selectArtworkView = `
	SELECT w.id, w.title, w.description, w.category, w.price, w.image_url, w.created_at,
	       COALESCE(a.name, 'Unknown Artist') AS artist
	FROM artworks w
	LEFT JOIN artists a ON a.id = w.artist_id
`

// ArtworkReadRepository provides read access to artwork listings.
type ArtworkReadRepository struct {
	db *sqlx.DB
}

// NewArtworkReadRepository creates a new ArtworkReadRepository.
func NewArtworkReadRepository(db *sqlx.DB) *ArtworkReadRepository {
	return &ArtworkReadRepository{db: db}
}

// List returns one page of listings. The category filter is an exact
// match, the search a substring match over title and description; empty
// strings disable either filter.
func (r *ArtworkReadRepository) List(ctx context.Context, category, search string, limit, offset int) ([]models.ArtworkView, error) {
	const query = selectArtworkView + `
		WHERE ($1 = '' OR w.category = $1)
		  AND ($2 = '' OR w.title ILIKE '%' || $2 || '%' OR w.description ILIKE '%' || $2 || '%')
		ORDER BY w.id
		LIMIT $3 OFFSET $4
	`

	artworks := []models.ArtworkView{}
	err := executor(ctx, r.db).SelectContext(ctx, &artworks, query, category, search, limit, offset)

	logger.Log.Debugw("query", "sql", "artworks.List", "category", category, "search", search, "limit", limit, "offset", offset, "error", err)

	if err != nil {
		return nil, err
	}

	return artworks, nil
}

// Count returns the number of listings matching the filters.
func (r *ArtworkReadRepository) Count(ctx context.Context, category, search string) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM artworks w
		WHERE ($1 = '' OR w.category = $1)
		  AND ($2 = '' OR w.title ILIKE '%' || $2 || '%' OR w.description ILIKE '%' || $2 || '%')
	`

	var count int64
	err := executor(ctx, r.db).GetContext(ctx, &count, query, category, search)
	return count, err
}

// ListByUserID returns every artwork owned by the user.
func (r *ArtworkReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.ArtworkView, error) {
	const query = selectArtworkView + `
		WHERE w.user_id = $1
		ORDER BY w.id
	`

	artworks := []models.ArtworkView{}
	err := executor(ctx, r.db).SelectContext(ctx, &artworks, query, userID)

	logger.Log.Debugw("query", "sql", "artworks.ListByUserID", "user_id", userID, "error", err)

	if err != nil {
		return nil, err
	}

	return artworks, nil
}

// ListAll returns every artwork. The auction view synthesizes a lot for
// each one.
func (r *ArtworkReadRepository) ListAll(ctx context.Context) ([]models.ArtworkView, error) {
	const query = selectArtworkView + `
		ORDER BY w.id
	`

	artworks := []models.ArtworkView{}
	err := executor(ctx, r.db).SelectContext(ctx, &artworks, query)

	logger.Log.Debugw("query", "sql", "artworks.ListAll", "error", err)

	if err != nil {
		return nil, err
	}

	return artworks, nil
}

// Search returns up to limit artworks whose title or description contain
// the query.
func (r *ArtworkReadRepository) Search(ctx context.Context, q string, limit int) ([]models.ArtworkView, error) {
	return r.List(ctx, "", q, limit, 0)
}

// CountByArtistID returns the number of artworks attached to the artist.
func (r *ArtworkReadRepository) CountByArtistID(ctx context.Context, artistID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM artworks WHERE artist_id = $1`

	var count int64
	err := executor(ctx, r.db).GetContext(ctx, &count, query, artistID)
	return count, err
}

// CountAll returns the total number of artworks.
func (r *ArtworkReadRepository) CountAll(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM artworks`

	var count int64
	err := executor(ctx, r.db).GetContext(ctx, &count, query)
	return count, err
}

// ArtworkWriteRepository provides write access to artwork listings.
type ArtworkWriteRepository struct {
	db *sqlx.DB
}

// NewArtworkWriteRepository creates a new ArtworkWriteRepository.
func NewArtworkWriteRepository(db *sqlx.DB) *ArtworkWriteRepository {
	return &ArtworkWriteRepository{db: db}
}

// Save inserts a new artwork and returns the created row.
func (r *ArtworkWriteRepository) Save(ctx context.Context, title, description, category string, price float64, imageURL string, userID, artistID int64) (*models.ArtworkDB, error) {
	const query = `
		INSERT INTO artworks (title, description, category, price, image_url, user_id, artist_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, title, description, category, price, image_url, user_id, artist_id, created_at
	`

	var artwork models.ArtworkDB
	err := executor(ctx, r.db).GetContext(ctx, &artwork, query, title, description, category, price, imageURL, userID, artistID)

	logger.Log.Debugw("query", "sql", "artworks.Save", "title", title, "user_id", userID, "artist_id", artistID, "error", err)

	if err != nil {
		return nil, err
	}

	return &artwork, nil
}
