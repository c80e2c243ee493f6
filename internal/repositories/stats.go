package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
)

// StatsReadRepository reads marketplace-wide counters.
type StatsReadRepository struct {
	db *sqlx.DB
}

// NewStatsReadRepository creates a new StatsReadRepository.
func NewStatsReadRepository(db *sqlx.DB) *StatsReadRepository {
	return &StatsReadRepository{db: db}
}

// Counts returns the artwork, artist and user totals in one round trip.
// Auction and bid counters stay at their zero values.
func (r *StatsReadRepository) Counts(ctx context.Context) (*models.Stats, error) {
	const query = `
		SELECT (SELECT COUNT(*) FROM artworks) AS total_artworks,
		       (SELECT COUNT(*) FROM artists)  AS total_artists,
		       (SELECT COUNT(*) FROM users)    AS total_users
	`

	var row struct {
		TotalArtworks int64 `db:"total_artworks"`
		TotalArtists  int64 `db:"total_artists"`
		TotalUsers    int64 `db:"total_users"`
	}
	err := executor(ctx, r.db).GetContext(ctx, &row, query)

	logger.Log.Debugw("query", "sql", "stats.Counts", "error", err)

	if err != nil {
		return nil, err
	}

	return &models.Stats{
		TotalArtworks: row.TotalArtworks,
		TotalArtists:  row.TotalArtists,
		TotalUsers:    row.TotalUsers,
	}, nil
}
