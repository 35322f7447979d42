package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis parses redisURL, defaulting to a local server, and pings it.
func ConnectRedis(ctx context.Context, redisURL string, logger *zap.Logger) (*redis.Client, error) {
	if redisURL == "" {
		// Default to local Redis for development
		redisURL = "redis://localhost:6379"
		logger.Warn("⚠️  REDIS_URL not set, using local Redis", zap.String("url", redisURL))
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)

	// test connection
	res, err := client.Ping(ctx).Result()
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("✅ Connected to Redis", zap.String("ping", res), zap.String("addr", opt.Addr))
	return client, nil
}
