package logger

import "log/slog"

// NewNope creates a no-op logger that discards all output.
// Library packages use it when the caller does not pass a logger.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
