// Package logging builds the decred/slog backend used across the engine
// and the demo CLI, grounded in the teacher's e2e/test_showdown_event.go
// logger bootstrap (slog.NewBackend + backend.Logger(subsystem)).
package logging

import (
	"io"
	"os"

	"github.com/decred/slog"
)

// New builds a slog.Logger for subsystem, writing to w (os.Stderr if w is
// nil), at the given level ("trace", "debug", "info", "warn", "error",
// "critical", or "off").
func New(w io.Writer, subsystem, level string) slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	backend := slog.NewBackend(w)
	log := backend.Logger(subsystem)
	lvl, ok := slog.LevelFromString(level)
	if !ok {
		lvl = slog.LevelInfo
	}
	log.SetLevel(lvl)
	return log
}
