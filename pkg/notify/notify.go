// Package notify defines the transient notification contract used for
// validation and request feedback, plus a terminal-backed channel.
package notify

import "time"

// Severity classifies a notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeveritySuccess Severity = "success"
)

// Display timeouts. Validation messages list field names and tend to run
// long, so they get a little extra time; error messages get the most.
const (
	DefaultTimeout    = 5 * time.Second
	ValidationTimeout = 6 * time.Second
	ErrorTimeout      = 8 * time.Second
)

// Message is one notification. A zero Timeout means the message persists
// until manually dismissed.
type Message struct {
	Text     string
	Severity Severity
	Timeout  time.Duration
}

// Channel displays notifications. Implementations own dismissal.
type Channel interface {
	Show(Message)
}

// Info builds an info-severity message.
func Info(text string, timeout time.Duration) Message {
	return Message{Text: text, Severity: SeverityInfo, Timeout: timeout}
}

// Warning builds a warning-severity message.
func Warning(text string, timeout time.Duration) Message {
	return Message{Text: text, Severity: SeverityWarning, Timeout: timeout}
}

// Danger builds a danger-severity message.
func Danger(text string, timeout time.Duration) Message {
	return Message{Text: text, Severity: SeverityDanger, Timeout: timeout}
}

// Success builds a success-severity message.
func Success(text string, timeout time.Duration) Message {
	return Message{Text: text, Severity: SeveritySuccess, Timeout: timeout}
}
