package cache

import (
	"Solarium/internal/pkg/redis"
	"context"
	log "log/slog"
	"time"
)

// RedisCache 基于 Redis 的缓存后端，多实例部署时通过
// cache.backend: redis 启用，语义与 MemoryCache 一致。
type RedisCache struct{}

func NewRedisCache() *RedisCache {
	return &RedisCache{}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := redis.GetBytes(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "redis cache get failed", "key", key, "err", err)
		return nil, false
	}
	if value == nil {
		return nil, false
	}
	return value, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := redis.SetWithExpiration(ctx, key, value, ttl); err != nil {
		log.WarnContext(ctx, "redis cache set failed", "key", key, "err", err)
	}
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) {
	if err := redis.DeleteKeys(ctx, keys...); err != nil {
		log.WarnContext(ctx, "redis cache delete failed", "keys", keys, "err", err)
	}
}

func (c *RedisCache) Close() {}
