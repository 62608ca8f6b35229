// Package redis provides the Redis client bootstrap.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"questify_backend/internal/platform/config"
)

// NewRedisClient connects to Redis and verifies the connection with a ping.
// Callers are expected to run without caching when this fails.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	addr := cfg.Host + ":" + cfg.Port

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
