package contract

import "errors"

// ErrDuplicate is returned when a create hits a unique constraint.
var ErrDuplicate = errors.New("duplicate record")
