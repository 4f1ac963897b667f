package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/teamboard/internal/config"
)

// Redis wraps the go-redis client.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration. An empty address disables Redis.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	if cfg.Addr == "" {
		logger.Warn("REDIS_ADDR not provided; caching disabled")
		return &Redis{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return ErrNotConfigured
	}
	return r.Client.Ping(ctx).Err()
}

// Cache stores JSON values under a key prefix. A Cache without a client misses every read and
// drops every write, so callers need no nil checks.
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewCache builds a cache on r. r may be nil.
func NewCache(r *Redis, prefix string, ttl time.Duration, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	cache := &Cache{prefix: prefix, ttl: ttl, logger: logger}
	if r != nil && ttl > 0 {
		cache.client = r.Client
	}
	return cache
}

// Get decodes the cached value for key into out and reports whether it was found.
func (c *Cache) Get(ctx context.Context, key string, out any) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Warn("cache entry undecodable", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set stores value for the configured TTL. Failures are logged, never returned.
func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops key.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		c.logger.Warn("cache invalidate failed", zap.String("key", key), zap.Error(err))
	}
}
