package storage

import "errors"

// ErrNotFound is returned by catalog accessors when the requested id does not
// resolve to a row. Callers treat it as a configuration error, not a retry.
var ErrNotFound = errors.New("not found")
