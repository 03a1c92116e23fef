// Package prompt provides the interactive prompts of issurge.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrInvalidConfirmationInput = errors.New("invalid input: please enter 'y' or 'n'")
	ErrEmptyDescription         = errors.New("description cannot be empty")
	ErrNoSelection              = errors.New("no selection made")
	ErrNoChoices                = errors.New("no choices available")
)
