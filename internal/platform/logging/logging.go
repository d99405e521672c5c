// Package logging builds the gateway's slog loggers and carries them, and
// request-scoped attributes, through a context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	ctx = logging.WithAttrs(ctx, slog.String("request_id", id))
//	logging.FromContext(ctx).InfoContext(ctx, "anilist operation completed",
//	    slog.String("operation", "MediaDetails"),
//	    slog.Int("media_id", id),
//	)
//
// Every logger from New redacts credentials (see redact.go) and appends the
// attributes stored with WithAttrs, so a client built once at startup still
// logs the request_id of the request it is serving.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type loggerKey struct{}

// New returns a logger writing to w at the given level ("debug", "info",
// "warn", "error"; anything else means info). format "text" selects the
// text handler and everything else JSON. Debug loggers also record the
// source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "text":
		h = slog.NewTextHandler(w, opts)
	default:
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(ContextHandler(h))
}

// ParseLevel reads a level name case-insensitively, falling back to info.
func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger stores logger in ctx for FromContext.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
