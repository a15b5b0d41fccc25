// Package logger builds the structured slog.Logger used across the checker.
//
// New assembles a text or JSON handler from functional options and wraps it
// in LogHandlerDecorator, which pulls attributes such as the check ID out of
// the context on every record:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "handlecheck"),
//	    logger.WithContextValue("check_id", checkIDKey{}),
//	)
//	log.InfoContext(ctx, "username checked", logger.Username("myUsername"))
//
// Attribute helpers in attr.go keep key names consistent. Library packages
// default to Discard so they stay silent unless a logger is injected.
package logger
