//go:generate go run go.uber.org/mock/mockgen -source=chatmessage.go -destination=../mocks/mock_chat_message_repo.go -package=mocks
package repos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/types"
)

// ChatMessageRepo is append-only: there is no update or delete.
type ChatMessageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, msgs []*types.ChatMessage) ([]*types.ChatMessage, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ChatMessage, error)
}

type chatMessageRepo struct {
	db  *gorm.DB
	log *logger.Logger
	now func() time.Time
}

func NewChatMessageRepo(db *gorm.DB, baseLog *logger.Logger) ChatMessageRepo {
	return &chatMessageRepo{
		db:  db,
		log: baseLog.With("repo", "ChatMessageRepo"),
		now: time.Now,
	}
}

// Create stamps ID and CreatedAt on every message that lacks them. IDs are
// version 7 UUIDs, monotonic within the process, so ordering by (created_at, id)
// keeps insertion order when timestamps collide.
func (cmr *chatMessageRepo) Create(ctx context.Context, tx *gorm.DB, msgs []*types.ChatMessage) ([]*types.ChatMessage, error) {
	if tx == nil {
		tx = cmr.db
	}
	if len(msgs) == 0 {
		return msgs, nil
	}
	for _, m := range msgs {
		if m.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return nil, fmt.Errorf("generate message id: %w", err)
			}
			m.ID = id
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = cmr.now().UTC()
		}
	}
	if err := tx.WithContext(ctx).Create(&msgs).Error; err != nil {
		cmr.log.Error("failed to create chat messages", "error", err)
		return nil, err
	}
	cmr.log.Debug("created chat messages", "count", len(msgs))
	return msgs, nil
}

func (cmr *chatMessageRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ChatMessage, error) {
	if tx == nil {
		tx = cmr.db
	}
	var msgs []*types.ChatMessage
	if err := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&msgs).Error; err != nil {
		cmr.log.Error("failed to get chat messages by userID", "error", err)
		return nil, err
	}
	return msgs, nil
}
