// Package log owns rvmkit's structured logger. Warnings and errors reach
// the person on stderr; every level is mirrored into dated debug files so
// an rvm interaction can be reconstructed after the fact.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Options configures Init.
type Options struct {
	// Verbose lets Debug and Info records reach stderr.
	Verbose bool
	// JSONFormat emits stderr records as JSON instead of text.
	JSONFormat bool
	// DebugDir receives dated .jsonl debug files. Empty disables them.
	DebugDir string
	// RetentionDays prunes debug files older than this on Init. 0 keeps all.
	RetentionDays int
	// Stderr overrides os.Stderr (for testing).
	Stderr io.Writer
}

var (
	logger = slog.Default()
	sink   *FileWriter
)

// Init builds the global logger from opts. The stderr stream filters to
// Warn and above unless Verbose; the debug file records everything.
func Init(opts Options) error {
	w := opts.Stderr
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	var console slog.Handler
	if opts.JSONFormat {
		console = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		console = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}

	h := tee{console: console}
	if opts.DebugDir != "" {
		if opts.RetentionDays > 0 {
			Cleanup(opts.DebugDir, opts.RetentionDays)
		}
		fw, err := NewFileWriter(opts.DebugDir)
		if err != nil {
			return err
		}
		sink = fw
		h.file = slog.NewJSONHandler(fw, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	logger = slog.New(h)
	slog.SetDefault(logger)
	return nil
}

// Close closes the debug file, if Init opened one.
func Close() {
	if sink != nil {
		sink.Close()
		sink = nil
	}
}

// tee sends each record to the console handler and, when one is
// configured, the debug file handler. The two filter independently.
type tee struct {
	console slog.Handler
	file    slog.Handler
}

func (t tee) Enabled(ctx context.Context, level slog.Level) bool {
	if t.console.Enabled(ctx, level) {
		return true
	}
	return t.file != nil && t.file.Enabled(ctx, level)
}

func (t tee) Handle(ctx context.Context, r slog.Record) error {
	var first error
	if t.console.Enabled(ctx, r.Level) {
		first = t.console.Handle(ctx, r)
	}
	if t.file != nil && t.file.Enabled(ctx, r.Level) {
		if err := t.file.Handle(ctx, r); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (t tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := tee{console: t.console.WithAttrs(attrs)}
	if t.file != nil {
		next.file = t.file.WithAttrs(attrs)
	}
	return next
}

func (t tee) WithGroup(name string) slog.Handler {
	next := tee{console: t.console.WithGroup(name)}
	if t.file != nil {
		next.file = t.file.WithGroup(name)
	}
	return next
}

// Debug records troubleshooting detail: rvm invocations, parsed output,
// package probes. Stderr sees it only with --verbose.
func Debug(msg string, args ...any) { logger.Debug(msg, args...) }

// Info records normal progress.
func Info(msg string, args ...any) { logger.Info(msg, args...) }

// Warn records a degraded condition worth telling the person about.
func Warn(msg string, args ...any) { logger.Warn(msg, args...) }

// Error records a failure.
func Error(msg string, args ...any) { logger.Error(msg, args...) }
