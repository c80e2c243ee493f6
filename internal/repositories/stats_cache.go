package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
)

const statsCacheKey = "stats:totals"

// StatsCacheRepository caches the stats payload in Redis with a TTL.
type StatsCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewStatsCacheRepository creates a new cache repository with the given TTL.
func NewStatsCacheRepository(client *redis.Client, expiration time.Duration) *StatsCacheRepository {
	return &StatsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached stats, or nil on a cache miss.
func (r *StatsCacheRepository) Get(ctx context.Context) (*models.Stats, error) {
	val, err := r.client.Get(ctx, statsCacheKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		logger.Log.Errorw("failed to read stats cache", "key", statsCacheKey, "error", err)
		return nil, err
	}

	var stats models.Stats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		logger.Log.Errorw("failed to decode cached stats", "key", statsCacheKey, "error", err)
		return nil, err
	}

	return &stats, nil
}

// Set caches the stats payload with the configured expiration.
func (r *StatsCacheRepository) Set(ctx context.Context, stats *models.Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, statsCacheKey, data, r.exp).Err()

	logger.Log.Debugw("stats cache set", "key", statsCacheKey, "error", err)

	return err
}
