package forge

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/lerenn/issurge/pkg/issue"
	"github.com/lerenn/issurge/pkg/logger"
)

const (
	// GitLabName is the name identifier for GitLab forge.
	GitLabName = "gitlab"
	// GitLabCLI is the command used to talk to GitLab.
	GitLabCLI = "glab"
)

var gitlabIssueURLPattern = regexp.MustCompile(`https://\S+/-/issues/(\d+)`)

// CommandRunner runs an external command and returns its combined output.
type CommandRunner func(ctx context.Context, name string, args ...string) (string, error)

// ExecRunner runs commands with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) (string, error) {
	output, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("%w: %s %s: %w (output: %s)",
			ErrCommandFailed, name, strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return string(output), nil
}

// GitLab represents the GitLab forge implementation, driven through the glab CLI.
type GitLab struct {
	project       string
	submitterArgs []string
	run           CommandRunner
	logger        logger.Logger
}

// NewGitLabParams contains parameters for creating a GitLab forge.
type NewGitLabParams struct {
	// Project is the project path, e.g. group/repo.
	Project       string
	SubmitterArgs []string
	// Runner defaults to ExecRunner.
	Runner CommandRunner
	Logger logger.Logger
}

// NewGitLab creates a new GitLab forge instance.
func NewGitLab(params NewGitLabParams) *GitLab {
	run := params.Runner
	if run == nil {
		run = ExecRunner
	}
	return &GitLab{
		project:       params.Project,
		submitterArgs: params.SubmitterArgs,
		run:           run,
		logger:        params.Logger,
	}
}

// Name returns the name of the forge.
func (g *GitLab) Name() string {
	return GitLabName
}

// CreateIssue runs `glab issue new` and reads the issue number from the printed URL.
func (g *GitLab) CreateIssue(ctx context.Context, iss issue.Issue) (Created, error) {
	args := []string{"issue", "new"}
	if iss.Title != "" {
		args = append(args, "-t", iss.Title)
	}
	args = append(args, "-d", iss.Description)
	for _, assignee := range iss.Assignees {
		if assignee == issue.Me {
			assignee = "@me"
		}
		args = append(args, "-a", assignee)
	}
	for _, label := range iss.Labels {
		args = append(args, "-l", label)
	}
	if iss.Milestone != "" {
		args = append(args, "-m", iss.Milestone)
	}
	args = append(args, g.submitterArgs...)

	g.logger.Debugf("Running %s %s", GitLabCLI, strings.Join(args, " "))
	output, err := g.run(ctx, GitLabCLI, args...)
	if err != nil {
		return Created{}, err
	}

	match := gitlabIssueURLPattern.FindStringSubmatch(output)
	if match == nil {
		return Created{}, fmt.Errorf("%w: %q", ErrUnparsableResponse, strings.TrimSpace(output))
	}
	number, err := strconv.Atoi(match[1])
	if err != nil {
		return Created{URL: match[0]}, fmt.Errorf("%w: %q", ErrUnparsableResponse, match[0])
	}

	return Created{URL: match[0], Number: number}, nil
}

// LookupIssueID returns number itself: GitLab links address issues by their visible number.
func (g *GitLab) LookupIssueID(_ context.Context, number int) (int64, error) {
	return int64(number), nil
}

// SetParent links child to parent. Plain GitLab issues have no sub-issues,
// so the relationship is recorded as a relates_to link.
func (g *GitLab) SetParent(ctx context.Context, child, parent int) error {
	return g.link(ctx, child, parent, "relates_to")
}

// AddBlocker links number to blocker with an is_blocked_by link.
func (g *GitLab) AddBlocker(ctx context.Context, number, blocker int) error {
	return g.link(ctx, number, blocker, "is_blocked_by")
}

// UpdateDescription runs `glab issue update`.
func (g *GitLab) UpdateDescription(ctx context.Context, number int, description string) error {
	_, err := g.run(ctx, GitLabCLI, "issue", "update", strconv.Itoa(number), "-d", description)
	return err
}

func (g *GitLab) link(ctx context.Context, source, target int, linkType string) error {
	project := url.PathEscape(g.project)
	_, err := g.run(ctx, GitLabCLI, "api", "-X", "POST",
		fmt.Sprintf("projects/%s/issues/%d/links", project, source),
		"-f", "target_project_id="+project,
		"-f", fmt.Sprintf("target_issue_iid=%d", target),
		"-f", "link_type="+linkType,
	)
	return err
}
