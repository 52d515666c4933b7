package cache

import (
	"context"
	"fmt"
	"time"
)

// ErrCacheMiss is returned when a key is absent or already consumed.
var ErrCacheMiss = fmt.Errorf("cache miss")

// KV is a small expiring key-value store. Values are opaque strings.
type KV interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	// GetDel reads and removes the key in one step, so a value can be consumed at most once.
	GetDel(ctx context.Context, key string) (string, error)
}
