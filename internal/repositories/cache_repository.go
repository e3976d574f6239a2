package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface is a small string cache. The equipment
// service uses it for the recent-records listing.
type CacheRepositoryInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// NoopCache is used when no Redis address is configured; every Get is
// a miss and writes are discarded.
type NoopCache struct{}

func NewNoopCache() CacheRepositoryInterface { return &NoopCache{} }

func (*NoopCache) Get(context.Context, string) (string, error) { return "", ErrCacheMiss }

func (*NoopCache) Set(context.Context, string, string, time.Duration) error { return nil }

func (*NoopCache) Del(context.Context, ...string) error { return nil }
