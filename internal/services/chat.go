//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/legalkaz/backend/internal/cache"
	"github.com/yungbote/legalkaz/backend/internal/errordata"
	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/repos"
	"github.com/yungbote/legalkaz/backend/internal/types"
	"github.com/yungbote/legalkaz/backend/internal/utils"
)

// ChatService appends messages to the store. It never updates or deletes.
type ChatService interface {
	AppendMessage(ctx context.Context, userID, sessionID, message, role string) (*types.ChatMessage, error)
}

type chatService struct {
	log          *logger.Logger
	accountRepo  repos.AccountRepo
	messageRepo  repos.ChatMessageRepo
	historyCache cache.HistoryCache
}

// NewChatService accepts a nil historyCache when redis is not configured.
func NewChatService(log *logger.Logger, accountRepo repos.AccountRepo, messageRepo repos.ChatMessageRepo, historyCache cache.HistoryCache) ChatService {
	return &chatService{
		log:          log.With("service", "ChatService"),
		accountRepo:  accountRepo,
		messageRepo:  messageRepo,
		historyCache: historyCache,
	}
}

func (cs *chatService) AppendMessage(ctx context.Context, userID, sessionID, message, role string) (*types.ChatMessage, error) {
	in := utils.ChatInput{UserID: userID, SessionID: sessionID, Message: message, Role: role}
	if vErr := utils.InputValidation(in); vErr != nil {
		return nil, errordata.Validation("%s", vErr.Error())
	}
	accountID, pErr := uuid.Parse(userID)
	if pErr != nil {
		return nil, errordata.Validation("user_id is not a valid id")
	}

	accounts, aErr := cs.accountRepo.GetByIDs(ctx, nil, []uuid.UUID{accountID})
	if aErr != nil {
		cs.log.Warn("Failed to look up account for message", "error", aErr)
		return nil, errordata.Persistence(aErr, "Failed to save message")
	}
	if len(accounts) == 0 {
		return nil, errordata.NotFound("Account not found")
	}

	msg := &types.ChatMessage{
		UserID:    accountID,
		SessionID: sessionID,
		Role:      types.Role(role),
		Content:   message,
	}
	created, cErr := cs.messageRepo.Create(ctx, nil, []*types.ChatMessage{msg})
	if cErr != nil || len(created) == 0 {
		cs.log.Error("Failed to persist chat message", "accountID", accountID, "sessionID", sessionID, "error", cErr)
		return nil, errordata.Persistence(cErr, "Failed to save message")
	}
	if cs.historyCache != nil {
		if err := cs.historyCache.Invalidate(ctx, accountID); err != nil {
			cs.log.Warn("Failed to invalidate cached history", "accountID", accountID, "error", err)
		}
	}
	cs.log.Debug("Saved chat message", "accountID", accountID, "sessionID", sessionID, "role", role)
	return created[0], nil
}
