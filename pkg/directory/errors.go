package directory

import "errors"

var (
	// ErrFailedToLoadSource wraps any error returned by a Source during Load.
	ErrFailedToLoadSource = errors.New("failed to load usernames from source")

	// ErrNilSource is returned when Load receives a nil Source.
	ErrNilSource = errors.New("nil username source")
)
