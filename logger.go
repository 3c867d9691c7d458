package sr

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so disabled calls never
// build their attributes.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(discard{}))
}

// SetLogger routes the log output of sr, text and assets to l. A nil l
// silences them again, which is also the state before the first call.
//
// Records sr emits:
//   - Debug "sr: worker pool resized" from SetWorkers
//   - Debug "assets: loaded", "assets: cache hit" and "assets: evicted"
//   - Warn "sr: failed to load image" when FromFile returns an empty image
//   - Warn "assets: load failed" and watcher errors
//
// A game that only wants broken assets reported can log at Warn:
//
//	sr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelWarn,
//	})))
//
// Set LevelDebug instead to trace cache behavior while iterating on assets.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	logger.Store(l)
}

// Logger returns the logger installed by SetLogger. It is safe to call from
// any goroutine, including fill workers.
func Logger() *slog.Logger {
	return logger.Load()
}
