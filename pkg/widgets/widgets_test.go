package widgets

import (
	"bytes"
	"strings"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestDonutRendersPNG(t *testing.T) {
	var buf bytes.Buffer
	donut := NewDonut(&buf, WithSize(128))

	donut.SetSlices([2]float64{73, 27})
	if err := donut.Redraw(); err != nil {
		t.Fatalf("redraw: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Fatalf("output does not start with PNG magic bytes")
	}
}

func TestDonutSkipsZeroSlices(t *testing.T) {
	var buf bytes.Buffer
	donut := NewDonut(&buf, WithSize(128))

	// One zero slice is fine, the non-zero one still draws.
	donut.SetSlices([2]float64{0, 100})
	if err := donut.Redraw(); err != nil {
		t.Fatalf("redraw with one zero slice: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected PNG output")
	}

	donut.SetSlices([2]float64{0, 0})
	if err := donut.Redraw(); err == nil {
		t.Fatalf("expected error when both slices are zero")
	}
}

func TestDonutRequiresWriter(t *testing.T) {
	donut := NewDonut(nil)
	if err := donut.Redraw(); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}

func TestTermProgressUpdate(t *testing.T) {
	var buf bytes.Buffer
	bar := NewTermProgress(&buf, DefaultTermStyle())

	bar.Update(50, "73%")
	out := buf.String()
	if !strings.Contains(out, "73%") {
		t.Fatalf("label missing from %q", out)
	}
	if got := strings.Count(out, "█"); got != 20 {
		t.Fatalf("expected 20 filled cells at 50%%, got %d", got)
	}
	if got := strings.Count(out, "░"); got != 20 {
		t.Fatalf("expected 20 empty cells at 50%%, got %d", got)
	}
}

func TestTermProgressClampsOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	bar := NewTermProgress(&buf, DefaultTermStyle())

	bar.Update(250, "over")
	if got := strings.Count(buf.String(), "█"); got != 40 {
		t.Fatalf("expected a full bar, got %d filled cells", got)
	}

	buf.Reset()
	bar.Update(-5, "under")
	if got := strings.Count(buf.String(), "█"); got != 0 {
		t.Fatalf("expected an empty bar, got %d filled cells", got)
	}
}

func TestTermChartRedraw(t *testing.T) {
	var buf bytes.Buffer
	chart := NewTermChart(&buf, DefaultTermStyle())

	chart.SetSlices([2]float64{73, 27})
	if err := chart.Redraw(); err != nil {
		t.Fatalf("redraw: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Death 73%") || !strings.Contains(out, "Survival 27%") {
		t.Fatalf("legend missing from %q", out)
	}
	if got := strings.Count(out, "█"); got != 40 {
		t.Fatalf("split bar should always fill the width, got %d cells", got)
	}
}

func TestTextLine(t *testing.T) {
	var buf bytes.Buffer
	NewTextLine(&buf, "Prediction:").SetText("Dead")
	if got := buf.String(); got != "Prediction: Dead\n" {
		t.Fatalf("got %q", got)
	}

	buf.Reset()
	NewTextLine(&buf, "").SetText("Alive")
	if got := buf.String(); got != "Alive\n" {
		t.Fatalf("got %q", got)
	}
}

func TestButtonDisableEnable(t *testing.T) {
	var buf bytes.Buffer
	button := NewButton(&buf, "Predict", DefaultTermStyle())

	if button.Disabled() {
		t.Fatalf("new button must start enabled")
	}
	if button.Label() != "Predict" {
		t.Fatalf("got label %q", button.Label())
	}

	button.Disable("Predicting…")
	if !button.Disabled() {
		t.Fatalf("button should be disabled")
	}
	if button.Label() != "Predicting…" {
		t.Fatalf("working label not shown, got %q", button.Label())
	}

	button.Enable()
	if button.Disabled() {
		t.Fatalf("button should be enabled again")
	}
	if button.Label() != "Predict" {
		t.Fatalf("original label not restored, got %q", button.Label())
	}
}
