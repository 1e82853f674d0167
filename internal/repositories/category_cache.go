package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mkobayashi-dev/freshtrack/internal/logger"
	"github.com/mkobayashi-dev/freshtrack/internal/models"
	"github.com/redis/go-redis/v9"
)

// categoryCacheKey stores the serialized global category list.
const categoryCacheKey = "categories:all"

// CategoryCacheRepository caches the global category list in Redis
// with a configurable TTL.
type CategoryCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached list
}

// NewCategoryCacheRepository creates a new cache repository instance.
func NewCategoryCacheRepository(client *redis.Client, expiration time.Duration) *CategoryCacheRepository {
	return &CategoryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached category list, or (nil, nil) on a cache miss.
func (r *CategoryCacheRepository) Get(ctx context.Context) ([]models.CategoryDB, error) {
	val, err := r.client.Get(ctx, categoryCacheKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logger.Log.Errorw("category cache get failed", "key", categoryCacheKey, "error", err)
		return nil, err
	}

	var categories []models.CategoryDB
	if err := json.Unmarshal([]byte(val), &categories); err != nil {
		logger.Log.Errorw("category cache decode failed", "key", categoryCacheKey, "error", err)
		return nil, err
	}

	logger.Log.Infow("category cache hit", "key", categoryCacheKey, "count", len(categories))
	return categories, nil
}

// Set stores the category list under the cache key with the configured TTL.
func (r *CategoryCacheRepository) Set(ctx context.Context, categories []models.CategoryDB) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, categoryCacheKey, data, r.exp).Err(); err != nil {
		logger.Log.Errorw("category cache set failed", "key", categoryCacheKey, "error", err)
		return err
	}

	logger.Log.Infow("category cache set", "key", categoryCacheKey, "count", len(categories))
	return nil
}

// Invalidate drops the cached list. Called after a category is created.
func (r *CategoryCacheRepository) Invalidate(ctx context.Context) error {
	if err := r.client.Del(ctx, categoryCacheKey).Err(); err != nil {
		logger.Log.Errorw("category cache invalidate failed", "key", categoryCacheKey, "error", err)
		return err
	}
	return nil
}
