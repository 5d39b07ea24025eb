package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/yungbote/legalkaz/backend/internal/errordata"
	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/mocks"
	"github.com/yungbote/legalkaz/backend/internal/repos"
	"github.com/yungbote/legalkaz/backend/internal/services"
	"github.com/yungbote/legalkaz/backend/internal/testutil"
	"github.com/yungbote/legalkaz/backend/internal/types"
)

type chatFixture struct {
	chat    services.ChatService
	history services.HistoryService
	auth    services.AuthService
}

func newChatFixture(t *testing.T) chatFixture {
	t.Helper()
	log := logger.Nop()
	gdb := testutil.NewSQLiteDB(t)
	accountRepo := repos.NewAccountRepo(gdb, log)
	messageRepo := repos.NewChatMessageRepo(gdb, log)
	return chatFixture{
		chat:    services.NewChatService(log, accountRepo, messageRepo, nil),
		history: services.NewHistoryService(log, messageRepo, nil),
		auth:    services.NewAuthService(log, accountRepo, testCost),
	}
}

func TestChatService_AppendThenList(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)

	ref, err := f.auth.Register(ctx, "a@x.io", "pw1")
	require.NoError(t, err)
	userID := ref.ID.String()

	saved, err := f.chat.AppendMessage(ctx, userID, "s1", "Hello", "user")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, saved.ID)
	require.Equal(t, ref.ID, saved.UserID)
	require.Equal(t, "s1", saved.SessionID)
	require.Equal(t, types.RoleUser, saved.Role)
	require.Equal(t, "Hello", saved.Content)
	require.False(t, saved.CreatedAt.IsZero())

	_, err = f.chat.AppendMessage(ctx, userID, "s1", "Hi there", "assistant")
	require.NoError(t, err)

	msgs, err := f.history.ListHistory(ctx, userID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, "Hello", msgs[0].Content)
	require.Equal(t, "Hi there", msgs[1].Content)
}

func TestChatService_Validation(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)
	ref, err := f.auth.Register(ctx, "a@x.io", "pw1")
	require.NoError(t, err)
	userID := ref.ID.String()

	cases := []struct {
		name      string
		userID    string
		sessionID string
		message   string
		role      string
		want      string
	}{
		{"missing user", "", "s1", "hi", "user", "user_id is required"},
		{"missing session", userID, "", "hi", "user", "sessionId is required"},
		{"missing message", userID, "s1", "", "user", "message is required"},
		{"blank message", userID, "s1", "  ", "user", "message is required"},
		{"system role", userID, "s1", "hi", "system", "role must be one of: user, assistant"},
		{"bad user id", "not-a-uuid", "s1", "hi", "user", "user_id is not a valid id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.chat.AppendMessage(ctx, tc.userID, tc.sessionID, tc.message, tc.role)
			require.ErrorIs(t, err, errordata.ErrValidation)
			require.Equal(t, tc.want, errordata.UserMessage(err))
		})
	}

	msgs, err := f.history.ListHistory(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, msgs)
}

func TestChatService_UnknownAccount(t *testing.T) {
	f := newChatFixture(t)
	_, err := f.chat.AppendMessage(context.Background(), uuid.NewString(), "s1", "hi", "user")
	require.ErrorIs(t, err, errordata.ErrNotFound)
}

func TestChatService_InvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountRepo := mocks.NewMockAccountRepo(ctrl)
	messageRepo := mocks.NewMockChatMessageRepo(ctrl)
	historyCache := mocks.NewMockHistoryCache(ctrl)
	svc := services.NewChatService(logger.Nop(), accountRepo, messageRepo, historyCache)

	id := uuid.New()
	accountRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any(), []uuid.UUID{id}).Return([]*types.Account{{ID: id}}, nil)
	messageRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Len(1)).
		DoAndReturn(func(_ context.Context, _ *gorm.DB, msgs []*types.ChatMessage) ([]*types.ChatMessage, error) {
			msgs[0].ID = uuid.New()
			return msgs, nil
		})
	historyCache.EXPECT().Invalidate(gomock.Any(), id).Return(errors.New("redis down"))

	// an invalidation failure does not fail the append
	saved, err := svc.AppendMessage(context.Background(), id.String(), "s1", "hi", "user")
	require.NoError(t, err)
	require.Equal(t, "hi", saved.Content)
}

func TestChatService_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountRepo := mocks.NewMockAccountRepo(ctrl)
	messageRepo := mocks.NewMockChatMessageRepo(ctrl)
	historyCache := mocks.NewMockHistoryCache(ctrl)
	svc := services.NewChatService(logger.Nop(), accountRepo, messageRepo, historyCache)

	id := uuid.New()
	boom := errors.New("disk full")
	accountRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*types.Account{{ID: id}}, nil)
	messageRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := svc.AppendMessage(context.Background(), id.String(), "s1", "hi", "user")
	require.ErrorIs(t, err, errordata.ErrPersistence)
	require.ErrorIs(t, err, boom)
	require.Equal(t, "Failed to save message", errordata.UserMessage(err))
}
