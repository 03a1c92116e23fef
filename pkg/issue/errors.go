// Package issue provides data structures and error types for handling tracker issues.
package issue

import (
	"errors"
	"fmt"
)

// Issue-specific error types.
var (
	ErrUnresolvedReference = errors.New("unresolved local reference")
	ErrInvalidReference    = errors.New("invalid issue reference format")
)

// UnresolvedReferenceError reports a local reference that has no tracker number.
type UnresolvedReferenceError struct {
	Number int
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("%s: #.%d", ErrUnresolvedReference, e.Number)
}

// Is makes errors.Is(err, ErrUnresolvedReference) match.
func (e *UnresolvedReferenceError) Is(target error) bool {
	return target == ErrUnresolvedReference
}
