package issurge

import "errors"

// Error definitions for the issurge package.
var (
	ErrEmptyTitle   = errors.New("the issue has no title")
	ErrConfigExists = errors.New("configuration already exists")
	ErrInitAborted  = errors.New("initialization aborted")
	ErrNoInput      = errors.New("no input file given")
)
