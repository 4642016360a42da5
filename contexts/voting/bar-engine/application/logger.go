package application

import "log/slog"

// ResolveLogger falls back to slog.Default when the engine was wired
// without a logger, so use cases and workers never nil-check before
// emitting events.
func ResolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
