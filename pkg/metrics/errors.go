package metrics

import "errors"

var (
	ErrNilRegistry      = errors.New("metrics registry is nil")
	ErrEmptyPath        = errors.New("metrics textfile path is empty")
	ErrFailedToRegister = errors.New("failed to register metrics collectors")
	ErrFailedToWrite    = errors.New("failed to write metrics textfile")
)
