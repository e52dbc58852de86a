package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// ClockCacheRepository 以 Redis 缓存渲染好的 SVG 文档
type ClockCacheRepository struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewClockCacheRepository(rdb *redis.Client, ttl time.Duration) *ClockCacheRepository {
	return &ClockCacheRepository{Redis: rdb, TTL: ttl}
}

// Get 未命中时返回 (nil, false, nil)
func (r *ClockCacheRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.Redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (r *ClockCacheRepository) Set(ctx context.Context, key string, data []byte) error {
	return r.Redis.Set(ctx, key, data, r.TTL).Err()
}

func (r *ClockCacheRepository) Ping(ctx context.Context) error {
	return r.Redis.Ping(ctx).Err()
}
