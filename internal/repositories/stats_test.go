package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsRepository_Counts(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	users := NewUserWriteRepository(db)
	artistWrite := NewArtistWriteRepository(db)
	artworkWrite := NewArtworkWriteRepository(db)
	repo := NewStatsReadRepository(db)
	ctx := context.Background()

	t.Run("empty database", func(t *testing.T) {
		stats, err := repo.Counts(ctx)
		assert.NoError(t, err)
		assert.Zero(t, stats.TotalArtworks)
		assert.Zero(t, stats.TotalArtists)
		assert.Zero(t, stats.TotalUsers)
	})

	sarah, _ := users.Save(ctx, "sarah_mitchell", "sarah@example.com", "hash", true)
	users.Save(ctx, "collector", "collector@example.com", "hash", false)
	artist, _ := artistWrite.Save(ctx, sarah.ID, "Sarah Mitchell", "", "")
	artworkWrite.Save(ctx, "Sunset Dreams", "", "abstract", 3200, "", sarah.ID, artist.ID)

	t.Run("seeded counts", func(t *testing.T) {
		stats, err := repo.Counts(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), stats.TotalArtworks)
		assert.Equal(t, int64(1), stats.TotalArtists)
		assert.Equal(t, int64(2), stats.TotalUsers)

		// No bidding engine yet, these stay zero.
		assert.Zero(t, stats.TotalAuctions)
		assert.Zero(t, stats.ActiveAuctions)
		assert.Zero(t, stats.TotalBids)
	})
}
