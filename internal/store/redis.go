package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisKV struct {
	client *redis.Client
}

func newRedisKV(ctx context.Context, redisURL string) (*redisKV, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &redisKV{client: client}, nil
}

func (r *redisKV) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *redisKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisKV) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *redisKV) Keys(ctx context.Context, pattern string) ([]string, error) {
	return r.client.Keys(ctx, pattern).Result()
}

func (r *redisKV) HSet(ctx context.Context, key, field, value string) error {
	return r.client.HSet(ctx, key, field, value).Err()
}

func (r *redisKV) HGet(ctx context.Context, key, field string) (string, bool, error) {
	value, err := r.client.HGet(ctx, key, field).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *redisKV) Close() error {
	return r.client.Close()
}

// Open connects to Redis when a URL is configured and falls back to an
// in-memory store otherwise, so the app stays usable without infrastructure.
func Open(ctx context.Context, redisURL string, log *zap.Logger) *Store {
	if redisURL == "" {
		log.Info("no redis url configured, using in-memory store")
		return New(newMemoryKV(), log)
	}

	backend, err := newRedisKV(ctx, redisURL)
	if err != nil {
		log.Warn("redis unavailable, using in-memory store", zap.Error(err))
		return New(newMemoryKV(), log)
	}

	log.Info("connected to redis")
	return New(backend, log)
}
