package types

import "time"

// HistoryEntry is one element of the /history response.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Role      Role      `json:"role"`
	SessionID string    `json:"sessionId"`
	Timestamp time.Time `json:"timestamp"`
}

func (e HistoryEntry) GetSessionID() string {
	return e.SessionID
}

func (e HistoryEntry) GetTurn() Turn {
	return Turn{Role: e.Role, Content: e.Message}
}

// ChatRecord is the /chats response body.
type ChatRecord struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
	Role      Role   `json:"role"`
}

func (m *ChatMessage) Record() ChatRecord {
	return ChatRecord{
		ID:        m.ID.String(),
		UserID:    m.UserID.String(),
		SessionID: m.SessionID,
		Message:   m.Content,
		Role:      m.Role,
	}
}
