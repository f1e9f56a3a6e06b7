// Package log provides the diagnostic stream for the goinstr module: a
// concurrency-safe leveled logger based on [log/slog] with a process-wide
// default instance.
//
// The instrumentation library itself stays out of this package on its hot
// paths; it logs only cold-path conditions (signal watcher status, failed
// signal-triggered dumps). The timeline CLI routes all non-timeline output
// through it.
//
// # Basic Usage
//
//	log.Info("parsed input", slog.Int("events", n))
//	log.Error("render failed", log.ErrAttr(err))
//
// # Configuration
//
// The default instance writes text to standard error at [LevelInfo].
// Reconfigure it with functional options:
//
//	log.Config(log.WithLevel(log.LevelDebug), log.WithFormat(log.FormatJSON))
//
// Independent instances come from [Make].
package log
