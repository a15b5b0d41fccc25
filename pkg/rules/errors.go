package rules

import "errors"

var (
	// ErrInvalidMinLength is returned by New when the minimum length is negative.
	ErrInvalidMinLength = errors.New("username minimum length must not be negative")

	// ErrEmptyUsername is the cause attached to the blank username validation error.
	ErrEmptyUsername = errors.New("username must not be empty")

	// ErrUsernameTooShort is the cause attached to the minimum length validation error.
	ErrUsernameTooShort = errors.New("username is too short")
)
