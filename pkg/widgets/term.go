package widgets

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultBarWidth = 40

// TermStyle carries the terminal colors the widgets draw with, typically
// resolved from the active theme's tokens.
type TermStyle struct {
	Accent string
	Muted  string
	Danger string
}

// DefaultTermStyle matches the dark theme's tokens.
func DefaultTermStyle() TermStyle {
	return TermStyle{
		Accent: "#7aa2f7",
		Muted:  "#565f89",
		Danger: "#f7768e",
	}
}

// TermProgress is a bounded progress indicator drawn as a single line. It
// implements the result.ProgressBar contract.
type TermProgress struct {
	out   io.Writer
	width int
	style TermStyle
}

// NewTermProgress constructs a TermProgress writing to out.
func NewTermProgress(out io.Writer, style TermStyle) *TermProgress {
	return &TermProgress{out: out, width: defaultBarWidth, style: style}
}

// Update redraws the bar at the given percentage with its label.
func (p *TermProgress) Update(percent float64, label string) {
	if p.out == nil {
		return
	}
	filled := int(percent / 100 * float64(p.width))
	if filled < 0 {
		filled = 0
	}
	if filled > p.width {
		filled = p.width
	}

	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(p.style.Accent)).
		Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(lipgloss.Color(p.style.Muted)).
		Render(strings.Repeat("░", p.width-filled))
	fmt.Fprintf(p.out, "%s%s %s\n", bar, rest, label)
}

// TermChart draws the two-slice proportion as a split bar with a legend. It
// implements the result.Chart contract.
type TermChart struct {
	out    io.Writer
	width  int
	style  TermStyle
	slices [2]float64
}

// NewTermChart constructs a TermChart writing to out.
func NewTermChart(out io.Writer, style TermStyle) *TermChart {
	return &TermChart{out: out, width: defaultBarWidth, style: style}
}

// SetSlices stores the [adverse, complement] percentages.
func (c *TermChart) SetSlices(slices [2]float64) {
	c.slices = slices
}

// Redraw prints the proportion bar.
func (c *TermChart) Redraw() error {
	if c.out == nil {
		return nil
	}
	adverse := int(c.slices[0] / 100 * float64(c.width))
	if adverse < 0 {
		adverse = 0
	}
	if adverse > c.width {
		adverse = c.width
	}

	left := lipgloss.NewStyle().Foreground(lipgloss.Color(c.style.Danger)).
		Render(strings.Repeat("█", adverse))
	right := lipgloss.NewStyle().Foreground(lipgloss.Color(c.style.Accent)).
		Render(strings.Repeat("█", c.width-adverse))
	fmt.Fprintf(c.out, "%s%s  %s %s%% / %s %s%%\n",
		left, right,
		sliceDeathLabel, trimFloat(c.slices[0]),
		sliceSurvivalLabel, trimFloat(c.slices[1]))
	return nil
}

// TextLine is a minimal result.TextSink printing to a writer with a fixed
// prefix.
type TextLine struct {
	out    io.Writer
	prefix string
}

// NewTextLine constructs a TextLine.
func NewTextLine(out io.Writer, prefix string) *TextLine {
	return &TextLine{out: out, prefix: prefix}
}

// SetText implements the text sink contract.
func (l *TextLine) SetText(text string) {
	if l.out == nil {
		return
	}
	if l.prefix != "" {
		fmt.Fprintf(l.out, "%s %s\n", l.prefix, text)
		return
	}
	fmt.Fprintln(l.out, text)
}
