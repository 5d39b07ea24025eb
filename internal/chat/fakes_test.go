package chat_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yungbote/legalkaz/backend/internal/errordata"
	"github.com/yungbote/legalkaz/backend/internal/types"
)

// memBackend stores messages the way the server does: append-only, listed in
// insertion order.
type memBackend struct {
	mu         sync.Mutex
	entries    map[string][]types.HistoryEntry
	failRole   map[types.Role]error
	historyErr error
	seq        int
}

func newMemBackend() *memBackend {
	return &memBackend{
		entries:  make(map[string][]types.HistoryEntry),
		failRole: make(map[types.Role]error),
	}
}

func (b *memBackend) History(_ context.Context, userID string) ([]types.HistoryEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.historyErr != nil {
		return nil, b.historyErr
	}
	out := make([]types.HistoryEntry, len(b.entries[userID]))
	copy(out, b.entries[userID])
	return out, nil
}

func (b *memBackend) AppendChat(_ context.Context, userID, sessionID string, role types.Role, message string) (types.ChatRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failRole[role]; err != nil {
		return types.ChatRecord{}, err
	}
	b.seq++
	id := fmt.Sprintf("m%d", b.seq)
	b.entries[userID] = append(b.entries[userID], types.HistoryEntry{
		ID:        id,
		Message:   message,
		Role:      role,
		SessionID: sessionID,
		Timestamp: time.Unix(int64(b.seq), 0).UTC(),
	})
	return types.ChatRecord{ID: id, UserID: userID, SessionID: sessionID, Message: message, Role: role}, nil
}

func (b *memBackend) stored(userID string) []types.HistoryEntry {
	out, _ := b.History(context.Background(), userID)
	return out
}

// scriptedCompleter answers with fixed replies and records every transcript.
type scriptedCompleter struct {
	mu      sync.Mutex
	replies []string
	err     error
	calls   [][]types.Turn
	gate    chan struct{}
	entered chan struct{}
}

func (c *scriptedCompleter) Complete(ctx context.Context, turns []types.Turn) (string, error) {
	c.mu.Lock()
	cp := make([]types.Turn, len(turns))
	copy(cp, turns)
	c.calls = append(c.calls, cp)
	gate, entered := c.gate, c.entered
	c.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return "", errordata.Completion(ctx.Err(), "Completion request failed")
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return "", c.err
	}
	if len(c.replies) == 0 {
		return "", errordata.Completion(nil, "Completion response has no reply")
	}
	reply := c.replies[0]
	c.replies = c.replies[1:]
	return reply, nil
}

func (c *scriptedCompleter) transcripts() [][]types.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
