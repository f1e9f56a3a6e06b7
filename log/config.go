package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Level represents the severity of a log message.
type Level slog.Level

const (
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

// String returns the lowercase name of the level.
func (l Level) String() string {
	return strings.ToLower(slog.Level(l).String())
}

// ParseLevel parses a string representation of a log level. Unrecognized
// strings resolve to [DefaultLevel]. See [slog.Level.UnmarshalText] for the
// accepted forms.
func ParseLevel(s string) Level {
	l := new(slog.Level)

	err := l.UnmarshalText([]byte(s))
	if err != nil {
		return DefaultLevel
	}

	return Level(*l)
}

// Format represents the output format for log messages.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// DefaultFormat is the default log message format.
const DefaultFormat = FormatText

// String returns the lowercase name of the format.
func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}

	return "text"
}

// ParseFormat parses a string representation of a log format.
// Unrecognized strings resolve to [DefaultFormat].
func ParseFormat(s string) Format {
	if strings.EqualFold(s, "json") {
		return FormatJSON
	}

	return DefaultFormat
}

// DefaultTimeLayout is the default timestamp layout.
const DefaultTimeLayout = time.RFC3339

// ParseTimeLayout resolves the name of a layout constant from the time
// package to its layout string. Unrecognized strings are returned as-is
// so explicit layouts pass through.
func ParseTimeLayout(s string) string {
	switch s {
	case "RFC3339", "":
		return time.RFC3339
	case "RFC3339Nano":
		return time.RFC3339Nano
	case "RFC1123":
		return time.RFC1123
	case "Kitchen":
		return time.Kitchen
	case "DateTime":
		return time.DateTime
	case "TimeOnly":
		return time.TimeOnly
	case "Stamp":
		return time.Stamp
	case "StampMilli":
		return time.StampMilli
	}

	return s
}

// config carries the immutable configuration a Logger is built from.
type config struct {
	writer     io.Writer
	timeLayout string
	level      Level
	format     Format
}

func makeConfig(w io.Writer, opts ...Option) config {
	cfg := config{
		writer:     w,
		timeLayout: DefaultTimeLayout,
		level:      DefaultLevel,
		format:     DefaultFormat,
	}
	if cfg.writer == nil {
		cfg.writer = os.Stderr
	}

	return apply(cfg, opts...)
}

// handler constructs the slog handler described by the configuration.
func (c config) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		Level: slog.Level(c.level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().Format(c.timeLayout))
			}

			return a
		},
	}

	if c.format == FormatJSON {
		return slog.NewJSONHandler(c.writer, opts)
	}

	return slog.NewTextHandler(c.writer, opts)
}
