package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Logger provides a concurrency-safe simplified logging interface.
type Logger struct {
	*slog.Logger
	config
}

// Make creates a new [Logger] that writes to the specified writer with the
// defaults [DefaultFormat], [DefaultLevel], and [DefaultTimeLayout],
// overridden by any provided options.
func Make(w io.Writer, opts ...Option) Logger {
	cfg := makeConfig(w, opts...)

	return Logger{
		config: cfg,
		Logger: slog.New(cfg.handler()),
	}
}

// Level returns the minimum level the logger writes.
func (l Logger) Level() Level { return l.config.level }

// Format returns the logger's output format.
func (l Logger) Format() Format { return l.config.format }

// defaultLog is the process-wide diagnostic logger, guarded for the rare
// reconfiguration against concurrent use.
//
//nolint:gochecknoglobals
var (
	defaultMu  sync.RWMutex
	defaultLog = Make(os.Stderr)
)

// Config reconfigures the package-level default logger. Existing options
// are replaced wholesale by the defaults plus opts.
func Config(opts ...Option) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultLog = Make(defaultLog.config.writer, opts...)
}

// SetOutput redirects the package-level default logger, preserving its
// level, format, and time layout.
func SetOutput(w io.Writer) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	cfg := defaultLog.config
	defaultLog = Make(w,
		WithLevel(cfg.level),
		WithFormat(cfg.format),
		WithTimeLayout(cfg.timeLayout),
	)
}

func std() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	return defaultLog
}

// Debug writes a debug message through the default logger.
func Debug(msg string, attrs ...slog.Attr) {
	std().LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

// Info writes an informational message through the default logger.
func Info(msg string, attrs ...slog.Attr) {
	std().LogAttrs(context.Background(), slog.LevelInfo, msg, attrs...)
}

// Warn writes a warning message through the default logger.
func Warn(msg string, attrs ...slog.Attr) {
	std().LogAttrs(context.Background(), slog.LevelWarn, msg, attrs...)
}

// Error writes an error message through the default logger.
func Error(msg string, attrs ...slog.Attr) {
	std().LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}

// ErrAttr renders err as the conventional "error" attribute.
func ErrAttr(err error) slog.Attr {
	return slog.String("error", err.Error())
}
