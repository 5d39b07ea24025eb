// Package chat holds the client side of a conversation: which sessions exist,
// which one is active, and the pipeline that sends a message and records the
// reply.
package chat

import (
	"sync"

	"github.com/samber/lo"

	"github.com/yungbote/legalkaz/backend/internal/types"
)

// Phase is where a session's current send stands.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSending
	PhaseAwaitingCompletion
	PhasePersisting
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSending:
		return "sending"
	case PhaseAwaitingCompletion:
		return "awaiting-completion"
	case PhasePersisting:
		return "persisting"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the whole of the client's conversation state. Every operation
// takes it explicitly; it is safe for a UI goroutine to read while a send runs.
type State struct {
	mu       sync.Mutex
	account  types.AccountRef
	sessions []types.Session
	activeID string
	phases   map[string]Phase
}

func NewState(account types.AccountRef) *State {
	return &State{
		account: account,
		phases:  make(map[string]Phase),
	}
}

func (s *State) Account() types.AccountRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account
}

// ActiveID is empty until a session has been loaded or created.
func (s *State) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Sessions returns copies in display order.
func (s *State) Sessions() []types.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Map(s.sessions, func(sess types.Session, _ int) types.Session {
		return sess.Clone()
	})
}

// Transcript returns a copy of the visible entries of one session.
func (s *State) Transcript(sessionID string) []types.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(sessionID)
	if i < 0 {
		return nil
	}
	return s.sessions[i].Clone().Messages
}

func (s *State) Phase(sessionID string) Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phases[sessionID]
}

// Loading reports whether a send is outstanding for the session.
func (s *State) Loading(sessionID string) bool {
	switch s.Phase(sessionID) {
	case PhaseSending, PhaseAwaitingCompletion, PhasePersisting:
		return true
	default:
		return false
	}
}

func (s *State) indexOf(sessionID string) int {
	_, i, ok := lo.FindIndexOf(s.sessions, func(sess types.Session) bool {
		return sess.ID == sessionID
	})
	if !ok {
		return -1
	}
	return i
}

func (s *State) replaceSessions(sessions []types.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = sessions
	s.activeID = ""
	s.phases = make(map[string]Phase)
}

func (s *State) addSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, types.Session{ID: id, Messages: []types.Turn{}})
	s.activeID = id
}

func (s *State) activate(id string) ([]types.Turn, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	s.activeID = id
	return s.sessions[i].Clone().Messages, true
}

// begin claims the session for one send and records the user entry. It
// returns the prior persisted turns, which exclude synthetic system entries.
func (s *State) begin(sessionID string, userTurn types.Turn) ([]types.Turn, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(sessionID)
	if i < 0 {
		return nil, false
	}
	switch s.phases[sessionID] {
	case PhaseSending, PhaseAwaitingCompletion, PhasePersisting:
		return nil, false
	}
	prior := lo.Filter(s.sessions[i].Messages, func(t types.Turn, _ int) bool {
		return t.Role != types.RoleSystem
	})
	s.sessions[i].Messages = append(s.sessions[i].Messages, userTurn)
	s.phases[sessionID] = PhaseSending
	return prior, true
}

func (s *State) setPhase(sessionID string, p Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phases[sessionID] = p
}

func (s *State) appendTurn(sessionID string, t types.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(sessionID); i >= 0 {
		s.sessions[i].Messages = append(s.sessions[i].Messages, t)
	}
}
