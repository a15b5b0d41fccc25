package logger

import "log/slog"

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Username records the username being checked or generated.
func Username(name string) slog.Attr {
	return slog.String("username", name)
}

// CheckID records the correlation ID of a single availability check.
func CheckID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("check_id", id)
}

// Outcome records the decision reached by a check (available, taken, restricted, invalid).
func Outcome(outcome string) slog.Attr {
	return slog.String("outcome", outcome)
}

func Suggestions(n int) slog.Attr {
	return slog.Int("suggestions", n)
}

func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

func Failures(n int) slog.Attr {
	return slog.Int("failures", n)
}

// Source records the name of a username directory source.
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
