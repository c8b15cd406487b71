package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// TerminalOption customises a Terminal channel.
type TerminalOption func(*Terminal)

// WithWriter redirects output away from stderr.
func WithWriter(w io.Writer) TerminalOption {
	return func(t *Terminal) {
		if w != nil {
			t.out = w
		}
	}
}

// WithSeverityColor overrides the color used for one severity.
func WithSeverityColor(severity Severity, color string) TerminalOption {
	return func(t *Terminal) {
		if color != "" {
			t.colors[severity] = color
		}
	}
}

// Terminal prints notifications with a severity-colored prefix. Terminal
// output has no auto-dismiss, so the timeout is surfaced as part of the
// contract but not enforced here.
type Terminal struct {
	out    io.Writer
	colors map[Severity]string
}

// NewTerminal constructs a Terminal channel writing to stderr by default.
func NewTerminal(options ...TerminalOption) *Terminal {
	t := &Terminal{
		out: os.Stderr,
		colors: map[Severity]string{
			SeverityInfo:    "#7aa2f7",
			SeverityWarning: "#e0af68",
			SeverityDanger:  "#f7768e",
			SeveritySuccess: "#9ece6a",
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}
	return t
}

// Show implements Channel.
func (t *Terminal) Show(msg Message) {
	style := lipgloss.NewStyle().Bold(true)
	if color, ok := t.colors[msg.Severity]; ok {
		style = style.Foreground(lipgloss.Color(color))
	}
	prefix := style.Render("[" + string(msg.Severity) + "]")
	fmt.Fprintf(t.out, "%s %s\n", prefix, msg.Text)
}
