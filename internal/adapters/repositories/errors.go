package repositories

import "errors"

// ErrNotFound reports a lookup for an id that is not in the database.
var ErrNotFound = errors.New("not found")
