package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/discoverguadeloupe/backend/pkg/config"
)

// Client holds the Redis connection shared by the site cache. The API
// runs without one when Redis is unreachable, so construction failing
// is not fatal to callers.
type Client struct {
	client *redis.Client
}

// NewClient connects to Redis using the configured address and verifies
// the connection with a ping before handing it out
func NewClient(cfg *config.RedisConfig) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{client: client}, nil
}

// NewClientWithRedis wraps an already constructed go-redis client. Used
// by tests that point the cache adapter at a controlled connection.
func NewClientWithRedis(client *redis.Client) *Client {
	return &Client{client: client}
}

// Client exposes the underlying go-redis client to the cache adapter
func (c *Client) Client() *redis.Client {
	return c.client
}

// Close releases the connection pool
func (c *Client) Close() error {
	return c.client.Close()
}

// Ping checks that Redis is still reachable
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
