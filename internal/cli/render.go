package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/yungbote/legalkaz/backend/internal/types"
)

var (
	userLabel      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3"))
	assistantLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	systemLabel    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935"))
	mutedText      = lipgloss.NewStyle().Faint(true)
	activeMarker   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFC107"))
)

// Renderer prints transcript entries. Assistant replies are markdown and go
// through glamour; everything else is printed as-is.
type Renderer struct {
	out      io.Writer
	markdown *glamour.TermRenderer
}

// NewRenderer uses glamour's auto style on a terminal; pass plain=true for
// pipes and tests.
func NewRenderer(out io.Writer, plain bool, width int) (*Renderer, error) {
	if width <= 0 {
		width = 80
	}
	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStylePath("notty")
	}
	md, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("build markdown renderer: %w", err)
	}
	return &Renderer{out: out, markdown: md}, nil
}

func (r *Renderer) Turn(t types.Turn) {
	switch t.Role {
	case types.RoleAssistant:
		body, err := r.markdown.Render(t.Content)
		if err != nil {
			body = t.Content + "\n"
		}
		fmt.Fprintf(r.out, "%s\n%s", assistantLabel.Render("assistant"), body)
	case types.RoleUser:
		fmt.Fprintf(r.out, "%s %s\n", userLabel.Render("you:"), t.Content)
	default:
		fmt.Fprintf(r.out, "%s %s\n", systemLabel.Render("!"), t.Content)
	}
}

func (r *Renderer) Transcript(turns []types.Turn) {
	if len(turns) == 0 {
		r.Info("(empty session)")
		return
	}
	for _, t := range turns {
		r.Turn(t)
	}
}

// Sessions lists sessions numbered from 1, marking the active one.
func (r *Renderer) Sessions(sessions []types.Session, activeID string) {
	for i, s := range sessions {
		marker := " "
		if s.ID == activeID {
			marker = activeMarker.Render("*")
		}
		fmt.Fprintf(r.out, "%s %2d  %s  %s\n", marker, i+1, s.ID, mutedText.Render(preview(s)))
	}
}

func (r *Renderer) Info(msg string) {
	fmt.Fprintln(r.out, mutedText.Render(msg))
}

func (r *Renderer) Error(msg string) {
	fmt.Fprintf(r.out, "%s %s\n", systemLabel.Render("!"), msg)
}

func preview(s types.Session) string {
	for _, t := range s.Messages {
		if t.Role == types.RoleUser {
			text := strings.Join(strings.Fields(t.Content), " ")
			if len([]rune(text)) > 40 {
				text = string([]rune(text)[:40]) + "…"
			}
			return fmt.Sprintf("%d messages, %q", len(s.Messages), text)
		}
	}
	return fmt.Sprintf("%d messages", len(s.Messages))
}

func assistantTurn(content string) types.Turn {
	return types.Turn{Role: types.RoleAssistant, Content: content}
}
