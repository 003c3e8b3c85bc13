package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/opportunity-service/internal/persistence"
)

// Cache keys for the public listings.
const (
	cacheKeyActiveScholarships = "listings:scholarships:active"
	cacheKeyActiveJobs         = "listings:jobs:active"
)

// ListingCache is a failure-tolerant read-through cache on Redis. Any cache
// error degrades to a miss; the database remains the source of truth.
type ListingCache struct {
	redis  *persistence.Redis
	ttl    time.Duration
	logger *zap.Logger
}

// NewListingCache builds the cache wrapper.
func NewListingCache(redis *persistence.Redis, ttl time.Duration, logger *zap.Logger) *ListingCache {
	return &ListingCache{redis: redis, ttl: ttl, logger: logger}
}

// Get unmarshals the cached value into dest and reports whether it was a hit.
func (c *ListingCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return false
	}
	raw, err := c.redis.Client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Warn("cache decode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set stores the value under key with the configured TTL.
func (c *ListingCache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.redis.Client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops the given keys after a mutation.
func (c *ListingCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.redis == nil || c.redis.Client == nil || len(keys) == 0 {
		return
	}
	if err := c.redis.Client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("cache invalidate failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
