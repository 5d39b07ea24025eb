package chat

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/legalkaz/backend/internal/history"
	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/types"
)

// Backend is the part of the server contract the client core needs.
type Backend interface {
	History(ctx context.Context, userID string) ([]types.HistoryEntry, error)
	AppendChat(ctx context.Context, userID, sessionID string, role types.Role, message string) (types.ChatRecord, error)
}

// NewSessionID returns a UUIDv7: random, and increasing across calls within
// this process.
func NewSessionID() string {
	return uuid.Must(uuid.NewV7()).String()
}

type Controller struct {
	log     *logger.Logger
	backend Backend
	newID   func() string
}

type ControllerOption func(*Controller)

func WithIDGenerator(gen func() string) ControllerOption {
	return func(c *Controller) { c.newID = gen }
}

func NewController(log *logger.Logger, backend Backend, opts ...ControllerOption) *Controller {
	c := &Controller{
		log:     log.With("component", "SessionController"),
		backend: backend,
		newID:   NewSessionID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load replaces the state's sessions with the account's stored history. The
// first session becomes active; an account without history gets one fresh
// session. On error the state is left untouched.
func (c *Controller) Load(ctx context.Context, st *State) error {
	account := st.Account()
	entries, err := c.backend.History(ctx, account.ID.String())
	if err != nil {
		c.log.Warn("Failed to load history", "accountID", account.ID, "error", err)
		return err
	}
	sessions := history.Group(entries)
	st.replaceSessions(sessions)
	if len(sessions) == 0 {
		c.NewSession(st)
		return nil
	}
	st.activate(sessions[0].ID)
	c.log.Debug("Loaded sessions", "accountID", account.ID, "sessions", len(sessions))
	return nil
}

// NewSession appends an empty session and makes it active.
func (c *Controller) NewSession(st *State) string {
	id := c.newID()
	st.addSession(id)
	return id
}

// SelectSession activates a known session and returns its entries. Unknown
// ids change nothing.
func (c *Controller) SelectSession(st *State, id string) ([]types.Turn, bool) {
	return st.activate(id)
}
