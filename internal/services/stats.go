package services

import (
	"context"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
)

// StatsReader reads marketplace-wide counters from the database.
type StatsReader interface {
	Counts(ctx context.Context) (*models.Stats, error)
}

// StatsCache caches the stats payload.
type StatsCache interface {
	Get(ctx context.Context) (*models.Stats, error)
	Set(ctx context.Context, stats *models.Stats) error
}

// StatsService serves marketplace counters with a cache-aside Redis
// layer in front of the database.
type StatsService struct {
	repo  StatsReader
	cache StatsCache
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(repo StatsReader, cache StatsCache) *StatsService {
	return &StatsService{
		repo:  repo,
		cache: cache,
	}
}

// GetStats returns the marketplace counters, preferring the cache. Cache
// failures fall through to the database and are never fatal.
func (svc *StatsService) GetStats(ctx context.Context) (*models.Stats, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	stats, err := svc.repo.Counts(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read stats", "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, stats); err != nil {
			logger.Log.Errorw("failed to cache stats", "err", err)
		}
	}

	return stats, nil
}
