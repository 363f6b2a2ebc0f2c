package ui

import (
	"log/slog"

	"github.com/gogpu/ui/internal/logx"
)

// SetLogger configures the logger for ui and all its sub-packages.
// By default, ui produces no log output. Pass nil to restore silence.
//
// Log levels used by ui:
//   - [slog.LevelDebug]: per-frame diagnostics (flush counts, buffer growth)
//   - [slog.LevelInfo]: lifecycle events (adapter selected, surface configured)
//   - [slog.LevelWarn]: non-fatal issues (resource release errors)
//
// Example:
//
//	ui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logx.Set(l)
}

// Logger returns the current logger used by ui.
func Logger() *slog.Logger {
	return logx.L()
}
