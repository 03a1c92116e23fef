// Package submit creates a batch of parsed issues on a forge.
package submit

import "errors"

// Submit-specific error types.
var (
	ErrIssueNotCreated = errors.New("issue not created")
)
