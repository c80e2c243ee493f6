package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kunsthaus/canvas-bids/internal/models"
)

func TestArtworkRepository_SaveAndList(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	users := NewUserWriteRepository(db)
	artistWrite := NewArtistWriteRepository(db)
	writeRepo := NewArtworkWriteRepository(db)
	readRepo := NewArtworkReadRepository(db)
	ctx := context.Background()

	sarah, _ := users.Save(ctx, "sarah_mitchell", "sarah@example.com", "hash", true)
	artist, _ := artistWrite.Save(ctx, sarah.ID, "Sarah Mitchell", "", "Abstract Expressionism")

	artwork, err := writeRepo.Save(ctx, "Sunset Dreams", "A vibrant exploration of color", "abstract", 3200, "img.jpg", sarah.ID, artist.ID)
	assert.NoError(t, err)
	assert.NotZero(t, artwork.ID)
	assert.Equal(t, "Sunset Dreams", artwork.Title)
	assert.Equal(t, 3200.0, artwork.Price)
	assert.NotNil(t, artwork.ArtistID)

	_, err = writeRepo.Save(ctx, "Urban Poetry", "Street art meets fine art", "contemporary", 1800, "", sarah.ID, artist.ID)
	assert.NoError(t, err)

	t.Run("list resolves artist names", func(t *testing.T) {
		artworks, err := readRepo.List(ctx, "", "", 12, 0)
		assert.NoError(t, err)
		assert.Len(t, artworks, 2)
		assert.Equal(t, "Sarah Mitchell", artworks[0].Artist)
	})

	t.Run("category filter is exact", func(t *testing.T) {
		artworks, err := readRepo.List(ctx, "abstract", "", 12, 0)
		assert.NoError(t, err)
		assert.Len(t, artworks, 1)
		assert.Equal(t, "Sunset Dreams", artworks[0].Title)

		artworks, err = readRepo.List(ctx, "abst", "", 12, 0)
		assert.NoError(t, err)
		assert.Empty(t, artworks)
	})

	t.Run("search matches title and description", func(t *testing.T) {
		artworks, err := readRepo.Search(ctx, "SUNSET", 12)
		assert.NoError(t, err)
		assert.Len(t, artworks, 1)

		artworks, err = readRepo.Search(ctx, "street art", 12)
		assert.NoError(t, err)
		assert.Len(t, artworks, 1)
		assert.Equal(t, "Urban Poetry", artworks[0].Title)
	})

	t.Run("count honors filters", func(t *testing.T) {
		count, err := readRepo.Count(ctx, "", "")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)

		count, err = readRepo.Count(ctx, "abstract", "")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("ListByUserID", func(t *testing.T) {
		artworks, err := readRepo.ListByUserID(ctx, sarah.ID)
		assert.NoError(t, err)
		assert.Len(t, artworks, 2)

		artworks, err = readRepo.ListByUserID(ctx, 999999)
		assert.NoError(t, err)
		assert.Empty(t, artworks)
	})

	t.Run("CountByArtistID", func(t *testing.T) {
		count, err := readRepo.CountByArtistID(ctx, artist.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("ListAll", func(t *testing.T) {
		artworks, err := readRepo.ListAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, artworks, 2)
	})
}

func TestArtworkRepository_UnknownArtistFallback(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	users := NewUserWriteRepository(db)
	readRepo := NewArtworkReadRepository(db)
	ctx := context.Background()

	owner, _ := users.Save(ctx, "orphan", "orphan@example.com", "hash", true)

	// Row without an artist reference, inserted directly since the write
	// repository always attaches one.
	_, err := db.ExecContext(ctx, `
		INSERT INTO artworks (title, description, category, price, user_id, artist_id)
		VALUES ('Orphaned Work', '', 'contemporary', 500, $1, NULL)
	`, owner.ID)
	assert.NoError(t, err)

	artworks, err := readRepo.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, artworks, 1)
	assert.Equal(t, models.UnknownArtist, artworks[0].Artist)
}
