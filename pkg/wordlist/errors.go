package wordlist

import "errors"

var (
	ErrFailedToReadFile  = errors.New("failed to read word list file")
	ErrFailedToParseYAML = errors.New("failed to parse word list YAML")
	ErrFailedToParseText = errors.New("failed to parse word list text")
	ErrEmptyPath         = errors.New("word list path is empty")
)
