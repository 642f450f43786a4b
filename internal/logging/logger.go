// Package logging defines the structured-logging interface used across the
// menta client. Adapters wrap log/slog and go.uber.org/zap.
package logging

import (
	"context"
	"fmt"
	"io"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "profile fetched", "user_id", id)
type Logger interface {
	// Debug logs diagnostic details that are hidden by default.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Format selects a Logger implementation.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatZap  Format = "zap"
)

// New builds a Logger writing to w in the requested format.
func New(format Format, w io.Writer) (Logger, error) {
	switch format {
	case FormatText:
		return newHandlerLogger(w, false), nil
	case FormatJSON:
		return newHandlerLogger(w, true), nil
	case FormatZap:
		return NewZapLogger(w), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return newHandlerLogger(io.Discard, false)
}
