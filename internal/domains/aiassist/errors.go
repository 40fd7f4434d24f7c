package aiassist

import "errors"

var (
	// ErrMissingTitle means generate-content was called without a title.
	ErrMissingTitle = errors.New("title is required")
)
