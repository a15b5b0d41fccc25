// Package directory provides the read-only set of already registered
// usernames consulted by availability checks.
//
// A Directory is built once and never modified: Exists is an exact,
// case-sensitive membership test and is safe for concurrent use.
//
// Directories are usually assembled at startup from one or more Source
// implementations. Load asks every source for its usernames and merges them
// into a single snapshot:
//
//	dir, err := directory.Load(ctx,
//	    directory.Static("admin", "root"),
//	    directory.File("./existing.txt"),
//	    redis.NewUsernameSource(client, "usernames"),
//	)
//
// Sources backed by external stores live next to their connection helpers
// (pkg/redis, pkg/pg, pkg/mongo). Loading only reads; nothing is ever written
// back.
package directory
