package redis

import (
	"campaign-server/internal/config"
	"campaign-server/internal/observability"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrClientNotInitialized = errors.New("redis client not initialized")

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client. It returns nil when Redis is disabled.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "redis_addr", Value: cfg.Addr()},
		observability.Field{Key: "redis_db", Value: cfg.DB},
	)
	logger.Info(ctx, "successfully connected to Redis")

	return NewFromClient(client, logger), nil
}

// NewFromClient wraps an existing go-redis client.
func NewFromClient(client *redis.Client, logger *observability.Logger) *Client {
	return &Client{
		client: client,
		logger: logger,
	}
}

// AcquireLock sets key to a fresh token if it is unset. The returned token is
// required to release the lock; acquired is false when someone else holds it.
func (c *Client) AcquireLock(ctx context.Context, key string, ttl time.Duration) (token string, acquired bool, err error) {
	if !c.IsEnabled() {
		return "", false, ErrClientNotInitialized
	}

	token = uuid.New().String()
	acquired, err = c.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !acquired {
		return "", false, nil
	}
	return token, true, nil
}

// ReleaseLock deletes key if it still holds token.
func (c *Client) ReleaseLock(ctx context.Context, key, token string) error {
	if !c.IsEnabled() {
		return ErrClientNotInitialized
	}

	if err := releaseScript.Run(ctx, c.client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to release lock %s: %w", key, err)
	}
	return nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	if c == nil {
		return nil
	}
	return c.client
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// IsEnabled returns whether Redis is enabled
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}
