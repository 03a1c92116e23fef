// Package parser turns indentation-structured feedback text into issues.
package parser

import "errors"

// Parser-specific error types.
var (
	ErrMissingDescription = errors.New("expected a description")
)
