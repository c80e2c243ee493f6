package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
)

// ArtistReadRepository provides read access to artist profiles.
type ArtistReadRepository struct {
	db *sqlx.DB
}

// NewArtistReadRepository creates a new ArtistReadRepository.
func NewArtistReadRepository(db *sqlx.DB) *ArtistReadRepository {
	return &ArtistReadRepository{db: db}
}

// GetByUserID returns the artist profile owned by the user, or nil when
// the user has none.
func (r *ArtistReadRepository) GetByUserID(ctx context.Context, userID int64) (*models.ArtistDB, error) {
	const query = `
		SELECT id, user_id, name, bio, specialty, profile_image, featured, created_at
		FROM artists
		WHERE user_id = $1
		LIMIT 1
	`

	var artist models.ArtistDB
	err := executor(ctx, r.db).GetContext(ctx, &artist, query, userID)

	logger.Log.Debugw("query", "sql", "artists.GetByUserID", "user_id", userID, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &artist, nil
}

// List returns one page of the artist directory, each entry carrying its
// artwork count. An empty search matches everything; otherwise the search
// is a substring match over name, bio and specialty.
func (r *ArtistReadRepository) List(ctx context.Context, search string, limit, offset int) ([]models.ArtistView, error) {
	const query = `
		SELECT a.id, a.name, a.bio, a.specialty, a.profile_image, a.featured, a.created_at,
		       COUNT(w.id) AS works
		FROM artists a
		LEFT JOIN artworks w ON w.artist_id = a.id
		WHERE $1 = ''
		   OR a.name ILIKE '%' || $1 || '%'
		   OR a.bio ILIKE '%' || $1 || '%'
		   OR a.specialty ILIKE '%' || $1 || '%'
		GROUP BY a.id
		ORDER BY a.id
		LIMIT $2 OFFSET $3
	`

	artists := []models.ArtistView{}
	err := executor(ctx, r.db).SelectContext(ctx, &artists, query, search, limit, offset)

	logger.Log.Debugw("query", "sql", "artists.List", "search", search, "limit", limit, "offset", offset, "error", err)

	if err != nil {
		return nil, err
	}

	return artists, nil
}

// Count returns the number of artists matching the search.
func (r *ArtistReadRepository) Count(ctx context.Context, search string) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM artists
		WHERE $1 = ''
		   OR name ILIKE '%' || $1 || '%'
		   OR bio ILIKE '%' || $1 || '%'
		   OR specialty ILIKE '%' || $1 || '%'
	`

	var count int64
	err := executor(ctx, r.db).GetContext(ctx, &count, query, search)
	return count, err
}

// Search returns up to limit artists whose name, bio or specialty contain
// the query.
func (r *ArtistReadRepository) Search(ctx context.Context, q string, limit int) ([]models.ArtistView, error) {
	return r.List(ctx, q, limit, 0)
}

// ArtistWriteRepository provides write access to artist profiles.
type ArtistWriteRepository struct {
	db *sqlx.DB
}

// NewArtistWriteRepository creates a new ArtistWriteRepository.
func NewArtistWriteRepository(db *sqlx.DB) *ArtistWriteRepository {
	return &ArtistWriteRepository{db: db}
}

// Save inserts a new artist profile and returns the created row.
func (r *ArtistWriteRepository) Save(ctx context.Context, userID int64, name, bio, specialty string) (*models.ArtistDB, error) {
	const query = `
		INSERT INTO artists (user_id, name, bio, specialty, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, name, bio, specialty, profile_image, featured, created_at
	`

	var artist models.ArtistDB
	err := executor(ctx, r.db).GetContext(ctx, &artist, query, userID, name, bio, specialty)

	logger.Log.Debugw("query", "sql", "artists.Save", "user_id", userID, "name", name, "error", err)

	if err != nil {
		return nil, err
	}

	return &artist, nil
}

// Update applies the non-nil fields to the artist profile.
func (r *ArtistWriteRepository) Update(ctx context.Context, artistID int64, name, bio, specialty, profileImage *string) error {
	const query = `
		UPDATE artists
		SET name          = COALESCE($2, name),
		    bio           = COALESCE($3, bio),
		    specialty     = COALESCE($4, specialty),
		    profile_image = COALESCE($5, profile_image)
		WHERE id = $1
	`

	_, err := executor(ctx, r.db).ExecContext(ctx, query, artistID, name, bio, specialty, profileImage)

	logger.Log.Debugw("query", "sql", "artists.Update", "artist_id", artistID, "error", err)

	return err
}

// CountAll returns the total number of artists.
func (r *ArtistReadRepository) CountAll(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM artists`

	var count int64
	err := executor(ctx, r.db).GetContext(ctx, &count, query)
	return count, err
}
