package rules

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// DefaultMinLength is used when no minimum length is configured.
const DefaultMinLength = 6

const usernameField = "username"

// Rules validates usernames against a minimum length and a restricted word list.
type Rules struct {
	minLength  int
	restricted []string
}

// New returns Rules for the given minimum length and restricted words.
// Empty restricted words are dropped since an empty substring matches every input.
// Whitespace-only words are kept and matched literally.
func New(minLength int, restricted []string) (*Rules, error) {
	if minLength < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMinLength, minLength)
	}

	words := make([]string, 0, len(restricted))
	for _, w := range restricted {
		if w == "" || slices.Contains(words, w) {
			continue
		}
		words = append(words, w)
	}

	return &Rules{
		minLength:  minLength,
		restricted: words,
	}, nil
}

// MustNew is like New but panics on invalid configuration.
func MustNew(minLength int, restricted []string) *Rules {
	r, err := New(minLength, restricted)
	if err != nil {
		panic(err)
	}
	return r
}

// Validate checks that the username is not blank and meets the minimum length.
// Length is counted in runes.
func (r *Rules) Validate(username string) error {
	return Apply(
		required(username),
		minLength(username, r.minLength),
	)
}

// IsRestricted reports whether the username contains any restricted word.
func (r *Rules) IsRestricted(username string) bool {
	for _, w := range r.restricted {
		if strings.Contains(username, w) {
			return true
		}
	}
	return false
}

func (r *Rules) MinLength() int {
	return r.minLength
}

// RestrictedWords returns a sorted copy of the restricted word list.
func (r *Rules) RestrictedWords() []string {
	words := slices.Clone(r.restricted)
	slices.Sort(words)
	return words
}

func required(value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   usernameField,
			Message: "username must not be empty",
			Err:     ErrEmptyUsername,
		},
	}
}

func minLength(value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:   usernameField,
			Message: fmt.Sprintf("username must be %d characters long", min),
			Err:     ErrUsernameTooShort,
		},
	}
}
