package contract

import "errors"

// ErrNotFound is wrapped by repositories when a record does not exist or was soft-deleted.
var ErrNotFound = errors.New("record not found")
