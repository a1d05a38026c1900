package repository

import "errors"

// ErrNotFound reports that no row matched the requested id and owner.
// Lookups never distinguish a missing row from a row owned by someone else.
var ErrNotFound = errors.New("not found")
