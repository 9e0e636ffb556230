// Package notifier delivers informational messages to the user.
package notifier

import "sync"

type Logger interface {
	Info(format string, v ...interface{})
}

// LogNotifier writes messages to the log and keeps the last few for inspection.
type LogNotifier struct {
	logger Logger
	limit  int

	mu     sync.Mutex
	recent []string
}

// NewLogNotifier keeps at most limit recent messages; limit <= 0 keeps none.
func NewLogNotifier(logger Logger, limit int) *LogNotifier {
	return &LogNotifier{logger: logger, limit: limit}
}

func (n *LogNotifier) Notify(message string) {
	n.logger.Info("Notify: %s", message)

	if n.limit <= 0 {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.recent = append(n.recent, message)
	if len(n.recent) > n.limit {
		n.recent = n.recent[len(n.recent)-n.limit:]
	}
}

// Recent returns a copy of the retained messages, oldest first.
func (n *LogNotifier) Recent() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.recent))
	copy(out, n.recent)
	return out
}
