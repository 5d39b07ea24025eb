//go:generate go run go.uber.org/mock/mockgen -source=history.go -destination=../mocks/mock_history_service.go -package=mocks
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/legalkaz/backend/internal/cache"
	"github.com/yungbote/legalkaz/backend/internal/errordata"
	"github.com/yungbote/legalkaz/backend/internal/history"
	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/repos"
	"github.com/yungbote/legalkaz/backend/internal/types"
)

type HistoryService interface {
	// ListHistory returns every message of the user ordered by creation time.
	ListHistory(ctx context.Context, userID string) ([]*types.ChatMessage, error)
	// LoadSessions groups ListHistory into sessions ordered by their first message.
	LoadSessions(ctx context.Context, userID string) ([]types.Session, error)
}

type historyService struct {
	log          *logger.Logger
	messageRepo  repos.ChatMessageRepo
	historyCache cache.HistoryCache
}

func NewHistoryService(log *logger.Logger, messageRepo repos.ChatMessageRepo, historyCache cache.HistoryCache) HistoryService {
	return &historyService{
		log:          log.With("service", "HistoryService"),
		messageRepo:  messageRepo,
		historyCache: historyCache,
	}
}

func (hs *historyService) ListHistory(ctx context.Context, userID string) ([]*types.ChatMessage, error) {
	if userID == "" {
		return nil, errordata.Validation("user_id required")
	}
	accountID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errordata.Validation("user_id is not a valid id")
	}

	if hs.historyCache != nil {
		cached, ok, cErr := hs.historyCache.Get(ctx, accountID)
		if cErr != nil {
			hs.log.Warn("History cache read failed, falling back to store", "accountID", accountID, "error", cErr)
		} else if ok {
			return cached, nil
		}
	}

	msgs, err := hs.messageRepo.GetByUserID(ctx, nil, accountID)
	if err != nil {
		hs.log.Error("Failed to load history", "accountID", accountID, "error", err)
		return nil, errordata.Persistence(err, "Failed to load history")
	}
	if msgs == nil {
		msgs = []*types.ChatMessage{}
	}

	if hs.historyCache != nil {
		if sErr := hs.historyCache.Set(ctx, accountID, msgs); sErr != nil {
			hs.log.Warn("History cache write failed", "accountID", accountID, "error", sErr)
		}
	}
	return msgs, nil
}

func (hs *historyService) LoadSessions(ctx context.Context, userID string) ([]types.Session, error) {
	msgs, err := hs.ListHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	sessions := history.Group(msgs)
	hs.log.Debug("Loaded sessions", "userID", userID, "messages", len(msgs), "sessions", len(sessions))
	return sessions, nil
}
