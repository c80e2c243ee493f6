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

func TestStatsService_GetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := &models.Stats{TotalArtworks: 3, TotalArtists: 3, TotalUsers: 3}

	t.Run("cache hit skips the database", func(t *testing.T) {
		mockCache := services.NewMockStatsCache(ctrl)
		mockCache.EXPECT().Get(gomock.Any()).Return(stats, nil)

		svc := services.NewStatsService(services.NewMockStatsReader(ctrl), mockCache)

		got, err := svc.GetStats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("cache miss reads the database and refills", func(t *testing.T) {
		mockRepo := services.NewMockStatsReader(ctrl)
		mockCache := services.NewMockStatsCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any()).Return(nil, nil)
		mockRepo.EXPECT().Counts(gomock.Any()).Return(stats, nil)
		mockCache.EXPECT().Set(gomock.Any(), stats).Return(nil)

		svc := services.NewStatsService(mockRepo, mockCache)

		got, err := svc.GetStats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("cache errors are not fatal", func(t *testing.T) {
		mockRepo := services.NewMockStatsReader(ctrl)
		mockCache := services.NewMockStatsCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("redis down"))
		mockRepo.EXPECT().Counts(gomock.Any()).Return(stats, nil)
		mockCache.EXPECT().Set(gomock.Any(), stats).Return(errors.New("redis down"))

		svc := services.NewStatsService(mockRepo, mockCache)

		got, err := svc.GetStats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("works without a cache", func(t *testing.T) {
		mockRepo := services.NewMockStatsReader(ctrl)
		mockRepo.EXPECT().Counts(gomock.Any()).Return(stats, nil)

		svc := services.NewStatsService(mockRepo, nil)

		got, err := svc.GetStats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("database error", func(t *testing.T) {
		mockRepo := services.NewMockStatsReader(ctrl)
		mockRepo.EXPECT().Counts(gomock.Any()).Return(nil, errors.New("db error"))

		svc := services.NewStatsService(mockRepo, nil)

		_, err := svc.GetStats(context.Background())
		assert.EqualError(t, err, "db error")
	})
}
