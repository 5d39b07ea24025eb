package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/types"
)

func newTestCache(t *testing.T) (HistoryCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisHistoryCache(client, time.Minute, logger.Nop()), mr
}

func TestRedisHistoryCache(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	userID := uuid.New()
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	msgs := []*types.ChatMessage{
		{ID: uuid.New(), UserID: userID, SessionID: "s1", Role: types.RoleUser, Content: "Hello", CreatedAt: at},
		{ID: uuid.New(), UserID: userID, SessionID: "s1", Role: types.RoleAssistant, Content: "Hi there", CreatedAt: at.Add(time.Second)},
	}

	t.Run("miss before set", func(t *testing.T) {
		got, ok, err := c.Get(ctx, userID)
		require.NoError(t, err)
		require.False(t, ok)
		require.Nil(t, got)
	})

	t.Run("round trip keeps order and expires", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, userID, msgs))
		got, ok, err := c.Get(ctx, userID)
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, got, 2)
		require.Equal(t, "Hello", got[0].Content)
		require.Equal(t, types.RoleAssistant, got[1].Role)
		require.True(t, got[1].CreatedAt.Equal(at.Add(time.Second)))
		require.Equal(t, time.Minute, mr.TTL(historyKey(userID)))
	})

	t.Run("empty history is a hit", func(t *testing.T) {
		other := uuid.New()
		require.NoError(t, c.Set(ctx, other, nil))
		got, ok, err := c.Get(ctx, other)
		require.NoError(t, err)
		require.True(t, ok)
		require.Empty(t, got)
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		require.NoError(t, c.Invalidate(ctx, userID))
		_, ok, err := c.Get(ctx, userID)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("corrupt payload is treated as a miss", func(t *testing.T) {
		require.NoError(t, mr.Set(historyKey(userID), "{not json"))
		_, ok, err := c.Get(ctx, userID)
		require.NoError(t, err)
		require.False(t, ok)
		require.False(t, mr.Exists(historyKey(userID)))
	})

	t.Run("server down surfaces an error", func(t *testing.T) {
		mr.Close()
		_, _, err := c.Get(ctx, userID)
		require.Error(t, err)
	})
}
