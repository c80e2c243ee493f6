package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/kunsthaus/canvas-bids/internal/models"
	"github.com/kunsthaus/canvas-bids/internal/services"
)

func TestSearchService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("tags results by type", func(t *testing.T) {
		mockArtworks := services.NewMockArtworkReader(ctrl)
		mockArtists := services.NewMockArtistReader(ctrl)

		mockArtworks.EXPECT().
			Search(gomock.Any(), "sunset", 12).
			Return([]models.ArtworkView{{ID: 1, Title: "Sunset Dreams", Artist: "Sarah Mitchell", Price: 3200}}, nil)
		mockArtists.EXPECT().
			Search(gomock.Any(), "sunset", 12).
			Return([]models.ArtistView{{ID: 2, Name: "Sunset Collective", Works: 4}}, nil)

		svc := services.NewSearchService(mockArtworks, mockArtists)

		artworks, artists, err := svc.Search(context.Background(), "sunset")
		assert.NoError(t, err)
		assert.Len(t, artworks, 1)
		assert.Len(t, artists, 1)
		assert.Equal(t, "artwork", artworks[0].Type)
		assert.Equal(t, "artist", artists[0].Type)
		assert.Equal(t, "Sunset Dreams", artworks[0].Title)
		assert.Equal(t, int64(4), artists[0].Works)
	})

	t.Run("empty query returns empty lists without touching the database", func(t *testing.T) {
		svc := services.NewSearchService(services.NewMockArtworkReader(ctrl), services.NewMockArtistReader(ctrl))

		artworks, artists, err := svc.Search(context.Background(), "")
		assert.NoError(t, err)
		assert.NotNil(t, artworks)
		assert.NotNil(t, artists)
		assert.Empty(t, artworks)
		assert.Empty(t, artists)
	})

	t.Run("artwork search error", func(t *testing.T) {
		mockArtworks := services.NewMockArtworkReader(ctrl)
		mockArtworks.EXPECT().
			Search(gomock.Any(), "sunset", 12).
			Return(nil, errors.New("db error"))

		svc := services.NewSearchService(mockArtworks, services.NewMockArtistReader(ctrl))

		_, _, err := svc.Search(context.Background(), "sunset")
		assert.EqualError(t, err, "db error")
	})

	t.Run("artist search error", func(t *testing.T) {
		mockArtworks := services.NewMockArtworkReader(ctrl)
		mockArtists := services.NewMockArtistReader(ctrl)

		mockArtworks.EXPECT().
			Search(gomock.Any(), "sunset", 12).
			Return([]models.ArtworkView{}, nil)
		mockArtists.EXPECT().
			Search(gomock.Any(), "sunset", 12).
			Return(nil, errors.New("db error"))

		svc := services.NewSearchService(mockArtworks, mockArtists)

		_, _, err := svc.Search(context.Background(), "sunset")
		assert.EqualError(t, err, "db error")
	})
}
