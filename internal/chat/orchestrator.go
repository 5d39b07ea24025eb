package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/yungbote/legalkaz/backend/internal/completion"
	"github.com/yungbote/legalkaz/backend/internal/errordata"
	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/types"
)

// ErrBusy is returned when the session already has a send outstanding.
var ErrBusy = errors.New("a message is already being sent in this session")

// Outcome describes how one Send ended. Phase is PhaseIdle on success and
// PhaseFailed otherwise; the session itself is back to idle either way.
type Outcome struct {
	SessionID string
	Phase     Phase
	Reply     string
	Err       error
	// Skipped is set when there was nothing to send.
	Skipped bool
}

type Orchestrator struct {
	log          *logger.Logger
	backend      Backend
	completer    completion.Completer
	systemPrompt string
}

func NewOrchestrator(log *logger.Logger, backend Backend, completer completion.Completer, systemPrompt string) *Orchestrator {
	return &Orchestrator{
		log:          log.With("component", "CompletionOrchestrator"),
		backend:      backend,
		completer:    completer,
		systemPrompt: systemPrompt,
	}
}

// Send runs one exchange in the active session: show the user entry, store it,
// ask the model, show and store the reply. The session id is fixed when Send
// starts, so switching sessions mid-flight does not redirect the reply.
func (o *Orchestrator) Send(ctx context.Context, st *State, text string) Outcome {
	sessionID := st.ActiveID()
	if strings.TrimSpace(text) == "" || sessionID == "" {
		return Outcome{SessionID: sessionID, Phase: PhaseIdle, Skipped: true}
	}
	userID := st.Account().ID.String()
	userTurn := types.Turn{Role: types.RoleUser, Content: text}

	prior, ok := st.begin(sessionID, userTurn)
	if !ok {
		return Outcome{SessionID: sessionID, Phase: PhaseIdle, Err: ErrBusy}
	}
	log := o.log.With("sessionID", sessionID)

	if _, err := o.backend.AppendChat(ctx, userID, sessionID, types.RoleUser, text); err != nil {
		log.Warn("Failed to save user message", "error", err)
		return o.fail(st, sessionID, "", errordata.UserMessage(err), err)
	}

	st.setPhase(sessionID, PhaseAwaitingCompletion)
	transcript := make([]types.Turn, 0, len(prior)+2)
	if o.systemPrompt != "" {
		transcript = append(transcript, types.Turn{Role: types.RoleSystem, Content: o.systemPrompt})
	}
	transcript = append(transcript, prior...)
	transcript = append(transcript, userTurn)

	reply, err := o.completer.Complete(ctx, transcript)
	if err != nil {
		log.Warn("Completion failed", "error", err)
		return o.fail(st, sessionID, "", errordata.UserMessage(err), err)
	}
	st.appendTurn(sessionID, types.Turn{Role: types.RoleAssistant, Content: reply})

	st.setPhase(sessionID, PhasePersisting)
	if _, err := o.backend.AppendChat(ctx, userID, sessionID, types.RoleAssistant, reply); err != nil {
		log.Warn("Failed to save assistant reply", "error", err)
		return o.fail(st, sessionID, reply, "Reply could not be saved: "+errordata.UserMessage(err), err)
	}

	st.setPhase(sessionID, PhaseIdle)
	log.Debug("Exchange complete", "replyLen", len(reply))
	return Outcome{SessionID: sessionID, Phase: PhaseIdle, Reply: reply}
}

// fail appends the one synthetic system entry and releases the session.
func (o *Orchestrator) fail(st *State, sessionID, reply, description string, err error) Outcome {
	st.appendTurn(sessionID, types.Turn{Role: types.RoleSystem, Content: "Error: " + description})
	st.setPhase(sessionID, PhaseIdle)
	return Outcome{SessionID: sessionID, Phase: PhaseFailed, Reply: reply, Err: err}
}
