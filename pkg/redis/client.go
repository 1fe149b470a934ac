package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Config holds Redis connection configuration
type Config struct {
	Host         string
	Port         int
	Password     string
	DB           int
	Enabled      bool
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Client is the caching interface consumed by services. A disabled client is
// a valid implementation: every read misses, every write is a no-op.
type Client interface {
	Ping(ctx context.Context) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
	IsEnabled() bool
	Close() error
}

type client struct {
	rdb     *redis.Client
	enabled bool
	logger  *zap.Logger
}

// NewClient creates a Redis client. When cfg.Enabled is false, or the initial
// ping fails, the returned client runs in disabled mode so the API keeps
// serving without a cache.
func NewClient(cfg Config, logger *zap.Logger) Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	if !cfg.Enabled {
		logger.Info("Redis caching disabled by configuration")
		return &client{enabled: false, logger: logger}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unreachable, continuing without cache",
			zap.String("address", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
			zap.Error(err),
		)
		_ = rdb.Close()
		return &client{enabled: false, logger: logger}
	}

	logger.Info("Successfully connected to Redis",
		zap.String("address", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		zap.Int("database", cfg.DB),
	)

	return &client{rdb: rdb, enabled: true, logger: logger}
}

func (c *client) IsEnabled() bool {
	return c.enabled
}

func (c *client) Ping(ctx context.Context) error {
	if !c.enabled {
		return fmt.Errorf("redis disabled")
	}
	return c.rdb.Ping(ctx).Err()
}

func (c *client) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

// Get returns the cached value and whether the key was present.
func (c *client) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if !c.enabled {
		return nil, false, nil
	}

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cache: %w", err)
	}
	return data, true, nil
}

func (c *client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !c.enabled {
		return nil
	}

	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Error("Failed to set cache",
			zap.String("key", key),
			zap.Duration("ttl", ttl),
			zap.Error(err),
		)
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

func (c *client) Delete(ctx context.Context, keys ...string) error {
	if !c.enabled || len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// DeletePattern removes all keys matching the glob pattern, scanning in
// batches so large keyspaces do not block Redis.
func (c *client) DeletePattern(ctx context.Context, pattern string) error {
	if !c.enabled {
		return nil
	}

	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= 100 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) > 0 {
		return c.rdb.Del(ctx, keys...).Err()
	}
	return nil
}
