// Package tree builds an ordered indentation tree out of raw text lines.
package tree

import "errors"

// Tree-specific error types.
var (
	ErrMixedIndentation = errors.New("mixed indentation characters")
)
