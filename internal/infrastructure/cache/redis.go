package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) (KV, error) {
	if client == nil {
		return nil, errors.New("cache.NewRedisKV: client is nil")
	}
	return &redisKV{client: client}, nil
}

func (r *redisKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redisKV.Set: %w", err)
	}

	return nil
}

func (r *redisKV) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = ErrCacheMiss
		}
		return "", fmt.Errorf("redisKV.Get: %w", err)
	}

	return value, nil
}

func (r *redisKV) GetDel(ctx context.Context, key string) (string, error) {
	value, err := r.client.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = ErrCacheMiss
		}
		return "", fmt.Errorf("redisKV.GetDel: %w", err)
	}

	return value, nil
}
