//go:generate go run go.uber.org/mock/mockgen -source=history.go -destination=../mocks/mock_history_cache.go -package=mocks
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/types"
)

const DefaultHistoryTTL = time.Minute

// HistoryCache holds a user's full ordered message history. A miss is
// reported as (nil, false, nil).
type HistoryCache interface {
	Get(ctx context.Context, userID uuid.UUID) ([]*types.ChatMessage, bool, error)
	Set(ctx context.Context, userID uuid.UUID, msgs []*types.ChatMessage) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

type redisHistoryCache struct {
	log    *logger.Logger
	client *redis.Client
	ttl    time.Duration
}

func NewRedisHistoryCache(client *redis.Client, ttl time.Duration, baseLog *logger.Logger) HistoryCache {
	if ttl <= 0 {
		ttl = DefaultHistoryTTL
	}
	return &redisHistoryCache{
		log:    baseLog.With("component", "RedisHistoryCache"),
		client: client,
		ttl:    ttl,
	}
}

func historyKey(userID uuid.UUID) string {
	return "history:" + userID.String()
}

func (c *redisHistoryCache) Get(ctx context.Context, userID uuid.UUID) ([]*types.ChatMessage, bool, error) {
	raw, err := c.client.Get(ctx, historyKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get history from cache: %w", err)
	}
	msgs, err := decodeHistory(raw)
	if err != nil {
		c.log.Warn("Dropping undecodable cached history", "userID", userID, "error", err)
		_ = c.client.Del(ctx, historyKey(userID)).Err()
		return nil, false, nil
	}
	return msgs, true, nil
}

func (c *redisHistoryCache) Set(ctx context.Context, userID uuid.UUID, msgs []*types.ChatMessage) error {
	payload, err := encodeHistory(msgs)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, historyKey(userID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("set history in cache: %w", err)
	}
	return nil
}

func (c *redisHistoryCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, historyKey(userID)).Err(); err != nil {
		return fmt.Errorf("invalidate cached history: %w", err)
	}
	return nil
}

func encodeHistory(msgs []*types.ChatMessage) ([]byte, error) {
	if msgs == nil {
		msgs = []*types.ChatMessage{}
	}
	raw, err := json.Marshal(msgs)
	if err != nil {
		return nil, fmt.Errorf("json marshal failed: %w", err)
	}
	return raw, nil
}

func decodeHistory(raw []byte) ([]*types.ChatMessage, error) {
	var msgs []*types.ChatMessage
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil, fmt.Errorf("json unmarshal failed: %w", err)
	}
	return msgs, nil
}
