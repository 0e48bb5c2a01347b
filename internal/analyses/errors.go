package analyses

import "errors"

var (
	// ErrNotFound indicates the requested analysis record does not exist.
	ErrNotFound = errors.New("analysis not found")
)
