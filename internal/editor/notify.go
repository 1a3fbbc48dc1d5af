package editor

import "log/slog"

// Notifier surfaces transient, non-blocking notifications. Failures are
// always reported through it; none are silently swallowed and none are
// fatal to the session.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier is the default Notifier; it writes through slog.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { slog.Info(msg) }
func (LogNotifier) Error(msg string)   { slog.Error(msg) }
