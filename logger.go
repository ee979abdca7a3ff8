package arbor

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. The runtime itself is single-threaded,
// but tools may swap loggers from another goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for arbor and its sub-packages.
// By default nothing is logged. Pass nil to restore silence.
//
// Log levels used by arbor:
//   - [slog.LevelDebug]: load and sort diagnostics (object counts, order sizes)
//   - [slog.LevelInfo]: lifecycle events (artboard initialized, file imported)
//   - [slog.LevelWarn]: non-fatal issues (update stalls, skipped unknown types)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages such as ggrender share it.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
