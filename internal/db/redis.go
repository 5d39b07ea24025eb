package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yungbote/legalkaz/backend/internal/logger"
)

// NewRedisClient connects and pings. An empty address means redis is not
// configured and (nil, nil) is returned.
func NewRedisClient(log *logger.Logger, address, password string) (*redis.Client, error) {
	if address == "" {
		log.Info("REDIS_ADDRESS empty, running without redis")
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       0,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	log.Info("Connected to redis :)", "address", address)
	return rdb, nil
}
