package username

import (
	"fmt"
	"strings"
)

// Outcome names the decision reached by a check.
type Outcome string

const (
	OutcomeAvailable  Outcome = "available"
	OutcomeTaken      Outcome = "taken"
	OutcomeRestricted Outcome = "restricted"
	OutcomeInvalid    Outcome = "invalid"
)

// Result is the answer to a single username check.
// Suggestions is never nil and is empty whenever Success is true.
type Result struct {
	Username    string   `json:"username"`
	Success     bool     `json:"success"`
	Outcome     Outcome  `json:"outcome"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

func (r Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Result{success=%t", r.Success)
	if r.Message != "" {
		fmt.Fprintf(&b, ", messg='%s'", r.Message)
	}
	fmt.Fprintf(&b, ", suggestedUsernames=[%s]}", strings.Join(r.Suggestions, ", "))
	return b.String()
}

func available(username string) Result {
	return Result{
		Username:    username,
		Success:     true,
		Outcome:     OutcomeAvailable,
		Message:     fmt.Sprintf("Provided username '%s' is available", username),
		Suggestions: []string{},
	}
}

func taken(username string, suggestions []string) Result {
	return Result{
		Username:    username,
		Outcome:     OutcomeTaken,
		Message:     fmt.Sprintf("Provided username '%s' is already taken. Here is some suggestions.", username),
		Suggestions: nonNil(suggestions),
	}
}

func restricted(username string, suggestions []string) Result {
	return Result{
		Username:    username,
		Outcome:     OutcomeRestricted,
		Message:     fmt.Sprintf("Provided username '%s' contains a restricted word. Here is some suggestions.", username),
		Suggestions: nonNil(suggestions),
	}
}

func invalid(username string, err error) Result {
	return Result{
		Username:    username,
		Outcome:     OutcomeInvalid,
		Message:     err.Error(),
		Suggestions: []string{},
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
