package logging

import "log/slog"

var level = new(slog.LevelVar)

// EnableDebug lowers the level of the handlers installed by Setup to debug.
// It can be called after Setup, once the configuration is known.
func EnableDebug() {
	level.Set(slog.LevelDebug)
	slog.Debug("debug logging enabled")
}
