// Package username decides whether a requested username can be used and, when
// it cannot, offers alternatives.
//
// CheckUsername trims the input, validates it against the username rules and
// then walks a fixed chain of handlers:
//
//  1. availability: the username is already registered
//  2. restriction: the username contains a restricted word
//  3. allowed: terminal, the username is available
//
// The first handler that matches produces the Result. Availability is checked
// before restriction, so a username that is both taken and restricted is
// reported as taken. Rejected usernames carry suggestions from the configured
// Suggester; usernames failing validation never do.
//
// Checks never modify the directory. Each call gets a fresh check ID that is
// attached to log records through the context.
package username
