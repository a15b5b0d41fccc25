package username

import "errors"

var (
	ErrNilRules     = errors.New("username rules are required")
	ErrNilDirectory = errors.New("username directory is required")
	ErrNilSuggester = errors.New("username suggester is required")
)
