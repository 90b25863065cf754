package livesync

import "errors"

var (
	// ErrNotAuthenticated means the caller has no owner session. Reading content
	// treats it as an anonymous view; writing content fails with it.
	ErrNotAuthenticated = errors.New("user not authenticated")
	// ErrNotFound is returned by stores for missing records.
	ErrNotFound = errors.New("not found")
	// ErrTransient wraps network and store failures.
	ErrTransient = errors.New("transient store failure")
	// ErrInvalidState marks calls made after Close. The hooks swallow it.
	ErrInvalidState = errors.New("hook closed")
	// ErrEmptyMessage rejects blank chat input before anything is sent.
	ErrEmptyMessage = errors.New("message is empty")
)
