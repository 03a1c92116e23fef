package submit

import (
	"context"
	"errors"
	"fmt"

	"github.com/lerenn/issurge/pkg/forge"
	"github.com/lerenn/issurge/pkg/issue"
	"github.com/lerenn/issurge/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=submit.go -destination=mocks/submit.gen.go -package=mocks

// Result is the outcome of submitting one issue.
type Result struct {
	// Issue is the issue as submitted, with its references resolved.
	Issue issue.Issue
	URL   string
	// Number is the tracker number, or 0 when it is unknown.
	Number int
}

// Submitter interface submits batches of issues.
type Submitter interface {
	// Submit creates issues one at a time in order, then resolves their local
	// references and records parents and blockers on the forge.
	Submit(ctx context.Context, issues []issue.Issue) ([]Result, error)
}

// NewSubmitterParams contains parameters for creating a Submitter.
type NewSubmitterParams struct {
	Forge  forge.Forge
	Logger logger.Logger
	// DryRun logs what would be submitted without calling the forge.
	DryRun bool
	// Strict fails on local references that cannot be resolved.
	Strict bool
}

type realSubmitter struct {
	forge  forge.Forge
	logger logger.Logger
	dryRun bool
	strict bool
}

// NewSubmitter creates a new Submitter.
func NewSubmitter(params NewSubmitterParams) Submitter {
	return &realSubmitter{
		forge:  params.Forge,
		logger: params.Logger,
		dryRun: params.DryRun,
		strict: params.Strict,
	}
}

// Submit creates the issues on the forge.
func (s *realSubmitter) Submit(ctx context.Context, issues []issue.Issue) ([]Result, error) {
	if s.strict {
		if err := ValidateReferences(issues); err != nil {
			return nil, err
		}
	}
	for _, n := range DuplicateLocalNumbers(issues) {
		s.logger.Logf("Warning: local number #.%d is declared more than once, the last issue wins", n)
	}

	if s.dryRun {
		results := make([]Result, 0, len(issues))
		for _, iss := range issues {
			s.logger.Logf("Would submit %s", iss.Display())
			results = append(results, Result{Issue: iss})
		}
		return results, nil
	}

	results, submitted, resolution, err := s.create(ctx, issues)
	if err != nil {
		return results, err
	}

	if err := s.link(ctx, results, submitted, resolution); err != nil {
		return results, err
	}

	return results, nil
}

// create submits every issue with the references known so far. It returns
// the submitted descriptions and the local-number resolution map.
func (s *realSubmitter) create(ctx context.Context, issues []issue.Issue) ([]Result, []string, map[int]int, error) {
	results := make([]Result, 0, len(issues))
	descriptions := make([]string, 0, len(issues))
	resolution := make(map[int]int)

	for _, iss := range issues {
		partial, err := iss.ResolveReferences(resolution, false)
		if err != nil {
			return results, descriptions, resolution, err
		}

		s.logger.Logf("Submitting %s", iss.Display())
		created, err := s.forge.CreateIssue(ctx, issue.Issue{
			Title:       iss.Title,
			Description: partial.Description,
			Labels:      iss.Labels,
			Assignees:   iss.Assignees,
			Milestone:   iss.Milestone,
		})
		switch {
		case errors.Is(err, forge.ErrUnparsableResponse):
			s.logger.Logf("Warning: %q was submitted but its number is unknown: %v", iss.Title, err)
		case err != nil:
			return results, descriptions, resolution, fmt.Errorf("%w: %q: %w", ErrIssueNotCreated, iss.Title, err)
		default:
			s.logger.Logf("Created #%d %s", created.Number, created.URL)
		}

		if iss.LocalNumber != nil && created.Number != 0 {
			resolution[*iss.LocalNumber] = created.Number
		}
		results = append(results, Result{Issue: iss, URL: created.URL, Number: created.Number})
		descriptions = append(descriptions, partial.Description)
	}

	return results, descriptions, resolution, nil
}

// link rewrites descriptions that mention forward references and records
// parents and blockers.
func (s *realSubmitter) link(ctx context.Context, results []Result, submitted []string, resolution map[int]int) error {
	for idx, result := range results {
		if result.Number == 0 {
			continue
		}

		final, err := result.Issue.ResolveReferences(resolution, s.strict)
		if err != nil {
			return fmt.Errorf("issue #%d: %w", result.Number, err)
		}
		results[idx].Issue = final

		if final.Description != submitted[idx] {
			if err := s.forge.UpdateDescription(ctx, result.Number, final.Description); err != nil {
				return fmt.Errorf("failed to update description of #%d: %w", result.Number, err)
			}
		}

		if final.Parent != nil {
			s.logger.Debugf("Setting %s as parent of #%d", *final.Parent, result.Number)
			if err := s.forge.SetParent(ctx, result.Number, final.Parent.Number()); err != nil {
				return fmt.Errorf("failed to set parent of #%d: %w", result.Number, err)
			}
		}

		for _, blocker := range final.BlockedBy {
			s.logger.Debugf("Marking #%d as blocked by %s", result.Number, blocker)
			if err := s.forge.AddBlocker(ctx, result.Number, blocker.Number()); err != nil {
				return fmt.Errorf("failed to mark #%d as blocked by %s: %w", result.Number, blocker, err)
			}
		}
	}

	return nil
}
