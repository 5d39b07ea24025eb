package types

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	// RoleSystem only ever lives in memory: the instruction prompt and
	// locally synthesized error entries.
	RoleSystem Role = "system"
)

// Persistable reports whether messages with this role may be written to the store.
func (r Role) Persistable() bool {
	return r == RoleUser || r == RoleAssistant
}

type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_message_user_created,priority:1"`
	SessionID string    `gorm:"not null;index;column:session_id"`
	Role      Role      `gorm:"not null;column:role"`
	Content   string    `gorm:"type:text;not null;column:content"`
	CreatedAt time.Time `gorm:"not null;index:idx_chat_message_user_created,priority:2"`
}

func (ChatMessage) TableName() string {
	return "chat_message"
}

func (m *ChatMessage) GetSessionID() string {
	return m.SessionID
}

func (m *ChatMessage) GetTurn() Turn {
	return Turn{Role: m.Role, Content: m.Content}
}

// Entry renders the message the way /history returns it.
func (m *ChatMessage) Entry() HistoryEntry {
	return HistoryEntry{
		ID:        m.ID.String(),
		Message:   m.Content,
		Role:      m.Role,
		SessionID: m.SessionID,
		Timestamp: m.CreatedAt,
	}
}
