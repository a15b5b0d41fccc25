package pg

import "context"

// logger is satisfied by *slog.Logger and receives goose output.
type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
