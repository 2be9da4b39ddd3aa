package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// contextKey is the private type for values this package stores in a
// context.
type contextKey struct{}

// loggerKey carries the logger attached by WithLogger.
//
//nolint:gochecknoglobals // Package-level context key is idiomatic
var loggerKey = contextKey{}

// FromContext returns the logger attached to ctx, falling back to the
// process default when none is attached. Fix runs attach a logger so
// worker goroutines log through the same sink as the command layer.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithLogger returns a child context with logger attached for
// FromContext to find.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}
