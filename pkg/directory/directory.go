package directory

// Directory is an immutable set of existing usernames.
type Directory struct {
	users map[string]struct{}
}

// New returns a Directory containing the given usernames.
func New(usernames ...string) *Directory {
	users := make(map[string]struct{}, len(usernames))
	for _, u := range usernames {
		users[u] = struct{}{}
	}
	return &Directory{users: users}
}

// Exists reports whether username is registered. Matching is exact.
func (d *Directory) Exists(username string) bool {
	if d == nil {
		return false
	}
	_, ok := d.users[username]
	return ok
}

// Len returns the number of usernames in the directory.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.users)
}
