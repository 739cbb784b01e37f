// Package notifications delivers fire-and-forget localized messages to
// a human operator. The engine never blocks on acknowledgment.
package notifications

import "log"

// Level classifies a notification for the operator
type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Message is one operator-facing notification
type Message struct {
	Level Level
	Text  string
}

// Notifier is the sink for operator-facing messages
type Notifier interface {
	Info(text string)
	Warn(text string)
	Error(text string)
}

// LogNotifier writes notifications to the standard logger
type LogNotifier struct{}

// NewLogNotifier creates a notifier backed by the standard logger
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Info(text string) {
	log.Printf("[notify] info: %s", text)
}

func (n *LogNotifier) Warn(text string) {
	log.Printf("[notify] warn: %s", text)
}

func (n *LogNotifier) Error(text string) {
	log.Printf("[notify] error: %s", text)
}

// NopNotifier discards all notifications
type NopNotifier struct{}

func (NopNotifier) Info(text string)  {}
func (NopNotifier) Warn(text string)  {}
func (NopNotifier) Error(text string) {}
