package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yungbote/legalkaz/backend/internal/errordata"
	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/mocks"
	"github.com/yungbote/legalkaz/backend/internal/services"
	"github.com/yungbote/legalkaz/backend/internal/types"
)

func msg(userID uuid.UUID, sessionID string, role types.Role, content string) *types.ChatMessage {
	return &types.ChatMessage{
		ID:        uuid.New(),
		UserID:    userID,
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

func TestHistoryService_LoadSessionsGroups(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)
	ref, err := f.auth.Register(ctx, "a@x.io", "pw1")
	require.NoError(t, err)
	userID := ref.ID.String()

	for _, m := range []struct{ session, content, role string }{
		{"A", "a1", "user"},
		{"B", "b1", "user"},
		{"A", "a2", "assistant"},
		{"B", "b2", "assistant"},
	} {
		_, err := f.chat.AppendMessage(ctx, userID, m.session, m.content, m.role)
		require.NoError(t, err)
	}

	got, err := f.history.LoadSessions(ctx, userID)
	require.NoError(t, err)
	want := []types.Session{
		{ID: "A", Messages: []types.Turn{{Role: types.RoleUser, Content: "a1"}, {Role: types.RoleAssistant, Content: "a2"}}},
		{ID: "B", Messages: []types.Turn{{Role: types.RoleUser, Content: "b1"}, {Role: types.RoleAssistant, Content: "b2"}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sessions mismatch (-want +got):\n%s", diff)
	}
}

func TestHistoryService_EmptyHistory(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)
	ref, err := f.auth.Register(ctx, "a@x.io", "pw1")
	require.NoError(t, err)

	msgs, err := f.history.ListHistory(ctx, ref.ID.String())
	require.NoError(t, err)
	require.NotNil(t, msgs)
	require.Empty(t, msgs)

	sessions, err := f.history.LoadSessions(ctx, ref.ID.String())
	require.NoError(t, err)
	require.NotNil(t, sessions)
	require.Empty(t, sessions)
}

func TestHistoryService_Validation(t *testing.T) {
	svc := services.NewHistoryService(logger.Nop(), nil, nil)

	_, err := svc.ListHistory(context.Background(), "")
	require.ErrorIs(t, err, errordata.ErrValidation)
	require.Equal(t, "user_id required", errordata.UserMessage(err))

	_, err = svc.LoadSessions(context.Background(), "nope")
	require.ErrorIs(t, err, errordata.ErrValidation)
}

func TestHistoryService_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	messageRepo := mocks.NewMockChatMessageRepo(ctrl)
	historyCache := mocks.NewMockHistoryCache(ctrl)
	svc := services.NewHistoryService(logger.Nop(), messageRepo, historyCache)

	id := uuid.New()
	cached := []*types.ChatMessage{msg(id, "s1", types.RoleUser, "hi")}
	historyCache.EXPECT().Get(gomock.Any(), id).Return(cached, true, nil)
	messageRepo.EXPECT().GetByUserID(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := svc.ListHistory(context.Background(), id.String())
	require.NoError(t, err)
	require.Equal(t, cached, got)
}

func TestHistoryService_CacheMissFillsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	messageRepo := mocks.NewMockChatMessageRepo(ctrl)
	historyCache := mocks.NewMockHistoryCache(ctrl)
	svc := services.NewHistoryService(logger.Nop(), messageRepo, historyCache)

	id := uuid.New()
	stored := []*types.ChatMessage{msg(id, "s1", types.RoleUser, "hi")}
	gomock.InOrder(
		historyCache.EXPECT().Get(gomock.Any(), id).Return(nil, false, nil),
		messageRepo.EXPECT().GetByUserID(gomock.Any(), gomock.Nil(), id).Return(stored, nil),
		historyCache.EXPECT().Set(gomock.Any(), id, stored).Return(nil),
	)

	got, err := svc.ListHistory(context.Background(), id.String())
	require.NoError(t, err)
	require.Equal(t, stored, got)
}

func TestHistoryService_CacheErrorsAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	messageRepo := mocks.NewMockChatMessageRepo(ctrl)
	historyCache := mocks.NewMockHistoryCache(ctrl)
	svc := services.NewHistoryService(logger.Nop(), messageRepo, historyCache)

	id := uuid.New()
	historyCache.EXPECT().Get(gomock.Any(), id).Return(nil, false, errors.New("redis down"))
	messageRepo.EXPECT().GetByUserID(gomock.Any(), gomock.Any(), id).Return(nil, nil)
	historyCache.EXPECT().Set(gomock.Any(), id, gomock.Any()).Return(errors.New("redis down"))

	got, err := svc.ListHistory(context.Background(), id.String())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestHistoryService_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	messageRepo := mocks.NewMockChatMessageRepo(ctrl)
	svc := services.NewHistoryService(logger.Nop(), messageRepo, nil)

	messageRepo.EXPECT().GetByUserID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := svc.ListHistory(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, errordata.ErrPersistence)
	require.Equal(t, "Failed to load history", errordata.UserMessage(err))
}
