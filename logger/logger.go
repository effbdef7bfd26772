// Package logger provides the structured logging used by every mazegraph package.
//
// Library code never configures logging on its own: until Initialize is called
// all helpers are no-ops, so embedding applications stay in control of output.
package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ErrNoFilePath is returned by Initialize when file output has no path.
var ErrNoFilePath = errors.New("logger: file output enabled without a file path")

var (
	mu     sync.RWMutex
	active *slog.Logger
)

// Initialize installs a logger built from cfg: console output, a rotating
// file, or both. With neither enabled it falls back to stderr text.
func Initialize(cfg Config) error {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}

	var sinks []slog.Handler
	if cfg.ConsoleEnabled {
		sinks = append(sinks, handlerFor(os.Stderr, cfg.ConsoleFormat, opts))
	}
	if cfg.FileEnabled {
		if cfg.FilePath == "" {
			return ErrNoFilePath
		}
		rotating := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.FileMaxSizeMB,
			MaxBackups: cfg.FileMaxBackups,
			MaxAge:     cfg.FileMaxAgeDays,
		}
		sinks = append(sinks, handlerFor(rotating, cfg.FileFormat, opts))
	}

	switch len(sinks) {
	case 0:
		SetLogger(slog.New(handlerFor(os.Stderr, "text", opts)))
	case 1:
		SetLogger(slog.New(sinks[0]))
	default:
		SetLogger(slog.New(fanout(sinks)))
	}
	return nil
}

// handlerFor returns a JSON handler for format "json", text otherwise.
func handlerFor(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// SetLogger installs l as the package logger. A nil l silences logging.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	active = l
	mu.Unlock()
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return active
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func emit(level slog.Level, msg string, args []any) {
	if l := current(); l != nil {
		l.Log(context.Background(), level, msg, args...)
	}
}

// Debug logs build summaries and search statistics.
func Debug(msg string, args ...any) { emit(slog.LevelDebug, msg, args) }

// Info logs application-level progress.
func Info(msg string, args ...any) { emit(slog.LevelInfo, msg, args) }

// Warning logs recoverable anomalies such as stale region ids.
func Warning(msg string, args ...any) { emit(slog.LevelWarn, msg, args) }

// Error logs failed builds.
func Error(msg string, args ...any) { emit(slog.LevelError, msg, args) }

// fanout hands every record to each handler enabled for its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
