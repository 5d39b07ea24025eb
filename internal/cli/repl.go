package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/yungbote/legalkaz/backend/internal/chat"
	"github.com/yungbote/legalkaz/backend/internal/errordata"
)

const helpText = `Type a message and press enter to send it.
  /new            start a new session
  /sessions       list sessions (* marks the active one)
  /switch <n|id>  switch to a session by number or id
  /help           show this help
  /quit           leave`

// App is the interactive loop of `chat start`.
type App struct {
	in                *bufio.Scanner
	out               io.Writer
	render            *Renderer
	ctrl              *chat.Controller
	orch              *chat.Orchestrator
	indicatorInterval time.Duration
}

func NewApp(in io.Reader, out io.Writer, render *Renderer, ctrl *chat.Controller, orch *chat.Orchestrator) *App {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	return &App{
		in:     scanner,
		out:    out,
		render: render,
		ctrl:   ctrl,
		orch:   orch,
	}
}

// Run loads the account's sessions and reads commands until /quit or EOF.
func (a *App) Run(ctx context.Context, st *chat.State) error {
	if err := a.ctrl.Load(ctx, st); err != nil {
		a.render.Error("Could not load history: " + errordata.UserMessage(err))
		a.ctrl.NewSession(st)
	}
	a.render.Info(fmt.Sprintf("Signed in as %s. %d session(s). /help for commands.", st.Account().Email, len(st.Sessions())))
	a.render.Transcript(st.Transcript(st.ActiveID()))

	for {
		fmt.Fprint(a.out, "> ")
		if !a.in.Scan() {
			fmt.Fprintln(a.out)
			return a.in.Err()
		}
		line := strings.TrimSpace(a.in.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "/") {
			a.send(ctx, st, line)
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		switch cmd {
		case "/quit", "/exit":
			return nil
		case "/help":
			a.render.Info(helpText)
		case "/new":
			id := a.ctrl.NewSession(st)
			a.render.Info("New session " + id)
		case "/sessions":
			a.render.Sessions(st.Sessions(), st.ActiveID())
		case "/switch":
			a.switchTo(st, strings.TrimSpace(arg))
		default:
			a.render.Error("Unknown command " + cmd + ". /help lists commands.")
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (a *App) send(ctx context.Context, st *chat.State, text string) {
	stop := NewIndicator(a.out, "Thinking", a.indicatorInterval).Start()
	out := a.orch.Send(ctx, st, text)
	stop()

	switch {
	case out.Skipped:
		return
	case errors.Is(out.Err, chat.ErrBusy):
		a.render.Error(out.Err.Error())
		return
	}
	if out.Reply != "" {
		a.render.Turn(assistantTurn(out.Reply))
	}
	if out.Phase == chat.PhaseFailed {
		transcript := st.Transcript(out.SessionID)
		if n := len(transcript); n > 0 {
			a.render.Turn(transcript[n-1])
		}
	}
}

// switchTo accepts a 1-based position from /sessions or a session id.
func (a *App) switchTo(st *chat.State, arg string) {
	if arg == "" {
		a.render.Error("Usage: /switch <n|id>")
		return
	}
	id := arg
	sessions := st.Sessions()
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(sessions) {
		id = sessions[n-1].ID
	}
	turns, ok := a.ctrl.SelectSession(st, id)
	if !ok {
		a.render.Error("No session " + arg)
		return
	}
	a.render.Info("Switched to session " + id)
	a.render.Transcript(turns)
}
