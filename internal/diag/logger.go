package diag

import (
	"io"
	"log/slog"
)

// NewLogger creates a structured text logger for the scoring engine.
//
// Parameters:
//   - w: The io.Writer to write log output to
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Debug level includes the per-topic calculation traces emitted by
// LogRecorder; the default level keeps a scoring run quiet unless an
// input was malformed.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
