package types

// Turn is one role-tagged entry of a transcript.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session is derived from the messages sharing a session id; it is never stored.
type Session struct {
	ID       string `json:"id"`
	Messages []Turn `json:"messages"`
}

// Clone returns a session whose message slice can be appended to without
// touching the original.
func (s Session) Clone() Session {
	msgs := make([]Turn, len(s.Messages))
	copy(msgs, s.Messages)
	return Session{ID: s.ID, Messages: msgs}
}
