package username

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/handlecheck/pkg/logger"
)

type checkIDKey struct{}

func withCheckID(ctx context.Context) context.Context {
	return context.WithValue(ctx, checkIDKey{}, uuid.NewString())
}

// CheckIDFromContext returns the ID of the check running with ctx, if any.
func CheckIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(checkIDKey{}).(string)
	return id, ok
}

// LoggerExtractor adds "check_id" to log records emitted during a check.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := CheckIDFromContext(ctx); ok {
			return logger.CheckID(id), true
		}
		return slog.Attr{}, false
	}
}
