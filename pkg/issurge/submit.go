package issurge

import (
	"context"
	"fmt"

	"github.com/lerenn/issurge/pkg/config"
	"github.com/lerenn/issurge/pkg/forge"
	"github.com/lerenn/issurge/pkg/issue"
	"github.com/lerenn/issurge/pkg/submit"
)

// SubmitOpts contains parameters for Submit.
type SubmitOpts struct {
	ParseOpts
	// SubmitterArgs are appended to the configured submitter arguments.
	SubmitterArgs []string
	// DryRun logs the issues instead of creating them.
	DryRun bool
	// NoStrict tolerates local references that match no issue.
	NoStrict bool
	// RepoPath is the repository whose remote selects the forge.
	RepoPath string
}

// Submit parses a feedback file and creates its issues on the forge.
func (i *realIssurge) Submit(ctx context.Context, opts SubmitOpts) ([]submit.Result, error) {
	cfg, err := i.deps.Config.GetConfigWithFallback()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	issues, err := i.Parse(opts.ParseOpts)
	if err != nil {
		return nil, err
	}
	if len(issues) == 0 {
		i.deps.Logger.Logf("No issues found in %s", opts.Path)
		return nil, nil
	}

	return i.submit(ctx, cfg, issues, submitParams{
		submitterArgs: opts.SubmitterArgs,
		dryRun:        opts.DryRun,
		strict:        cfg.StrictReferences && !opts.NoStrict,
		repoPath:      opts.RepoPath,
	})
}

type submitParams struct {
	submitterArgs []string
	dryRun        bool
	strict        bool
	repoPath      string
}

func (i *realIssurge) submit(
	ctx context.Context, cfg config.Config, issues []issue.Issue, params submitParams,
) ([]submit.Result, error) {
	var target forge.Forge
	if !params.dryRun {
		var err error
		target, err = i.forgeFor(cfg, params)
		if err != nil {
			return nil, err
		}
		i.deps.Logger.Debugf("Submitting %d issue(s) to %s", len(issues), target.Name())
	}

	submitter := i.deps.SubmitterProvider(submit.NewSubmitterParams{
		Forge:  target,
		Logger: i.deps.Logger,
		DryRun: params.dryRun,
		Strict: params.strict,
	})

	return submitter.Submit(ctx, issues)
}

func (i *realIssurge) forgeFor(cfg config.Config, params submitParams) (forge.Forge, error) {
	args := make([]string, 0, len(cfg.SubmitterArgs)+len(params.submitterArgs))
	args = append(args, cfg.SubmitterArgs...)
	args = append(args, params.submitterArgs...)

	manager := i.deps.ForgeProvider(forge.NewManagerParams{
		Git:           i.deps.Git,
		Logger:        i.deps.Logger,
		GitHubToken:   cfg.GitHubToken(),
		SubmitterArgs: args,
	})

	repoPath := params.repoPath
	if repoPath == "" {
		repoPath = "."
	}

	target, err := manager.GetForgeForRepository(repoPath, cfg.Remote, cfg.Forge)
	if err != nil {
		return nil, fmt.Errorf("failed to select forge: %w", err)
	}
	return target, nil
}
