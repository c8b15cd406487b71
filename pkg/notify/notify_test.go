package notify

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name         string
		msg          Message
		wantSeverity Severity
	}{
		{"info", Info("hello", DefaultTimeout), SeverityInfo},
		{"warning", Warning("heads up", ValidationTimeout), SeverityWarning},
		{"danger", Danger("broken", ErrorTimeout), SeverityDanger},
		{"success", Success("done", DefaultTimeout), SeveritySuccess},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.msg.Severity != tc.wantSeverity {
				t.Fatalf("got severity %q, want %q", tc.msg.Severity, tc.wantSeverity)
			}
			if tc.msg.Text == "" {
				t.Fatalf("text lost")
			}
		})
	}
}

func TestTimeoutOrdering(t *testing.T) {
	if !(DefaultTimeout < ValidationTimeout && ValidationTimeout < ErrorTimeout) {
		t.Fatalf("timeouts out of order: %v %v %v", DefaultTimeout, ValidationTimeout, ErrorTimeout)
	}
}

func TestZeroTimeoutMeansPersistent(t *testing.T) {
	msg := Danger("stays", 0)
	if msg.Timeout != 0 {
		t.Fatalf("got timeout %v, want 0", msg.Timeout)
	}
}

func TestTerminalShow(t *testing.T) {
	var buf bytes.Buffer
	channel := NewTerminal(WithWriter(&buf))

	channel.Show(Warning("Missing required fields: Age", ValidationTimeout))

	out := buf.String()
	if !strings.Contains(out, "[warning]") {
		t.Fatalf("severity prefix missing from %q", out)
	}
	if !strings.Contains(out, "Missing required fields: Age") {
		t.Fatalf("message text missing from %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("output must end with a newline")
	}
}

func TestTerminalShowUnknownSeverity(t *testing.T) {
	var buf bytes.Buffer
	channel := NewTerminal(WithWriter(&buf))

	channel.Show(Message{Text: "odd", Severity: Severity("custom"), Timeout: time.Second})
	out := buf.String()
	if !strings.Contains(out, "[custom]") || !strings.Contains(out, "odd") {
		t.Fatalf("unexpected output %q", out)
	}
}
