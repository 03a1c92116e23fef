// Package issurge ties parsing, configuration and forges together behind the
// operations exposed by the command line.
package issurge

import (
	"context"
	"fmt"

	"github.com/lerenn/issurge/pkg/dependencies"
	"github.com/lerenn/issurge/pkg/issue"
	"github.com/lerenn/issurge/pkg/logger"
	"github.com/lerenn/issurge/pkg/submit"
)

// Issurge interface provides the application operations.
type Issurge interface {
	// Parse reads a feedback file and returns its issues.
	Parse(opts ParseOpts) ([]issue.Issue, error)
	// Submit parses a feedback file and creates its issues on the forge.
	Submit(ctx context.Context, opts SubmitOpts) ([]submit.Result, error)
	// New creates a single issue from a fragment, prompting for its description if needed.
	New(ctx context.Context, opts NewOpts) (submit.Result, error)
	// Init writes the configuration file.
	Init(opts InitOpts) error
	// SetLogger sets the logger for this instance.
	SetLogger(logger logger.Logger)
}

// NewIssurgeParams contains parameters for creating a new Issurge instance.
type NewIssurgeParams struct {
	Dependencies *dependencies.Dependencies
}

type realIssurge struct {
	deps *dependencies.Dependencies
}

// NewIssurge creates a new Issurge instance.
func NewIssurge(params NewIssurgeParams) (Issurge, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies: %w", err)
	}

	return &realIssurge{deps: deps}, nil
}

// SetLogger sets the logger for this Issurge instance.
func (i *realIssurge) SetLogger(logger logger.Logger) {
	i.deps.Logger = logger
}
