package git

import "errors"

// Git-specific error types.
var (
	ErrRemoteNotFound   = errors.New("remote not found")
	ErrInvalidRemoteURL = errors.New("invalid remote URL")
)
