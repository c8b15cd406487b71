package widgets

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Button is the terminal stand-in for the submit control. Disabling it for
// the duration of a submission cycle is the orchestrator's re-entrancy guard;
// Enable restores the original label.
type Button struct {
	out      io.Writer
	label    string
	shown    string
	disabled bool
	style    TermStyle
}

// NewButton constructs a Button with its resting label.
func NewButton(out io.Writer, label string, style TermStyle) *Button {
	return &Button{out: out, label: label, shown: label, style: style}
}

// Disable implements the trigger control contract: the control stops
// accepting submissions and shows the working label.
func (b *Button) Disable(workingLabel string) {
	b.disabled = true
	b.shown = workingLabel
	b.draw()
}

// Enable restores the original label and re-arms the control.
func (b *Button) Enable() {
	b.disabled = false
	b.shown = b.label
	b.draw()
}

// Disabled reports whether the control is accepting submissions.
func (b *Button) Disabled() bool {
	return b.disabled
}

// Label reports the currently shown label.
func (b *Button) Label() string {
	return b.shown
}

func (b *Button) draw() {
	if b.out == nil {
		return
	}
	style := lipgloss.NewStyle().Bold(true)
	if b.disabled {
		style = style.Foreground(lipgloss.Color(b.style.Muted))
	} else {
		style = style.Foreground(lipgloss.Color(b.style.Accent))
	}
	fmt.Fprintf(b.out, "%s\n", style.Render("["+b.shown+"]"))
}
