package issurge

import (
	"context"
	"fmt"
	"strings"

	"github.com/lerenn/issurge/pkg/issue"
	"github.com/lerenn/issurge/pkg/parser"
	"github.com/lerenn/issurge/pkg/submit"
)

// NewOpts contains parameters for New.
type NewOpts struct {
	// Words of the fragment, joined with spaces.
	Words         []string
	SubmitterArgs []string
	DryRun        bool
	RepoPath      string
}

// New creates a single issue from a fragment, prompting for its description if needed.
func (i *realIssurge) New(ctx context.Context, opts NewOpts) (submit.Result, error) {
	cfg, err := i.deps.Config.GetConfigWithFallback()
	if err != nil {
		return submit.Result{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	iss, err := i.fragment(strings.Join(opts.Words, " "))
	if err != nil {
		return submit.Result{}, err
	}

	results, err := i.submit(ctx, cfg, []issue.Issue{iss}, submitParams{
		submitterArgs: opts.SubmitterArgs,
		dryRun:        opts.DryRun,
		strict:        false,
		repoPath:      opts.RepoPath,
	})
	if err != nil {
		return submit.Result{}, err
	}
	if len(results) == 0 {
		return submit.Result{}, fmt.Errorf("%w: %q", submit.ErrIssueNotCreated, iss.Title)
	}

	return results[0], nil
}

// fragment parses one line and reads its description when it ends with a colon.
func (i *realIssurge) fragment(line string) (issue.Issue, error) {
	iss, expectsDescription := parser.ParseFragment(line)
	if iss.Title == "" {
		return issue.Issue{}, fmt.Errorf("%w: %q", ErrEmptyTitle, line)
	}

	if !expectsDescription {
		return iss, nil
	}

	description, err := i.deps.Prompt.PromptForDescription()
	if err != nil {
		return issue.Issue{}, fmt.Errorf("failed to read the description: %w", err)
	}

	return issue.Merge(iss, parser.AbsorbDescription(description)), nil
}
