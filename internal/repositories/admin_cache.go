package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

const adminStatsKey = "nutriplan:admin:stats"

// AdminStatsCacheRepository keeps the last computed dashboard in Redis.
type AdminStatsCacheRepository struct {
	client redis.Cmdable
	exp    time.Duration
}

func NewAdminStatsCacheRepository(client redis.Cmdable, expiration time.Duration) *AdminStatsCacheRepository {
	return &AdminStatsCacheRepository{client: client, exp: expiration}
}

// Get returns nil without error on a cache miss.
func (r *AdminStatsCacheRepository) Get(ctx context.Context) (*models.AdminStats, error) {
	val, err := r.client.Get(ctx, adminStatsKey).Bytes()
	logger.Log.Debugw("cache get", "key", adminStatsKey, "size", len(val), "error", err)

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stats models.AdminStats
	if err := json.Unmarshal(val, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *AdminStatsCacheRepository) Set(ctx context.Context, stats *models.AdminStats) error {
	b, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, adminStatsKey, b, r.exp).Err()
	logger.Log.Debugw("cache set", "key", adminStatsKey, "ttl", r.exp, "error", err)
	return err
}

// Invalidate drops the cached dashboard after a write that changes it.
func (r *AdminStatsCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, adminStatsKey).Err()
	logger.Log.Debugw("cache del", "key", adminStatsKey, "error", err)
	return err
}
