// Package cache backs the site repository's read-through layer with
// Redis. Values are JSON blobs under the keys the caching adapter owns
// ("sites:all", "site:<id>"), each with a TTL in seconds.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/discoverguadeloupe/backend/internal/domain/providers"
	redisclient "github.com/discoverguadeloupe/backend/internal/infrastructure/clients/redis"
)

// RedisAdapter is the CacheProvider used when Redis is configured
type RedisAdapter struct {
	client *redisclient.Client
}

// NewRedisAdapter wraps the shared Redis connection as a CacheProvider
func NewRedisAdapter(client *redisclient.Client) providers.CacheProvider {
	return &RedisAdapter{
		client: client,
	}
}

// Get returns the blob stored under key. A miss is an error so callers
// fall through to the backing store.
func (a *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := a.client.Client().Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("key not found: %s", key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get from cache: %w", err)
	}
	return result, nil
}

// Set stores a blob under key, expiring after expirationSeconds
func (a *RedisAdapter) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	expiration := time.Duration(expirationSeconds) * time.Second
	if err := a.client.Client().Set(ctx, key, value, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set in cache: %w", err)
	}
	return nil
}

// Delete drops key, invalidating the cached entry
func (a *RedisAdapter) Delete(ctx context.Context, key string) error {
	if err := a.client.Client().Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete from cache: %w", err)
	}
	return nil
}
