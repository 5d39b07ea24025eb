package db

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/types"
)

func TestMigrate(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), Config())
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(gdb))
	require.True(t, gdb.Migrator().HasTable(&types.Account{}))
	require.True(t, gdb.Migrator().HasTable(&types.ChatMessage{}))
	require.True(t, gdb.Migrator().HasIndex(&types.ChatMessage{}, "idx_chat_message_user_created"))

	// idempotent
	require.NoError(t, Migrate(gdb))
}

func TestNewRedisClient(t *testing.T) {
	log := logger.Nop()

	t.Run("empty address disables redis", func(t *testing.T) {
		rdb, err := NewRedisClient(log, "", "")
		require.NoError(t, err)
		require.Nil(t, rdb)
	})

	t.Run("connects to a live server", func(t *testing.T) {
		mr := miniredis.RunT(t)
		rdb, err := NewRedisClient(log, mr.Addr(), "")
		require.NoError(t, err)
		require.NotNil(t, rdb)
		require.NoError(t, rdb.Close())
	})

	t.Run("unreachable server is an error", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()
		_, err := NewRedisClient(log, addr, "")
		require.Error(t, err)
	})
}
