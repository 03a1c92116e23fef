package forge

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/issurge/pkg/issue"
	"github.com/lerenn/issurge/pkg/logger"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// GitHubDomain is the GitHub domain for URL validation.
	GitHubDomain = "github.com"
)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client *github.Client
	owner  string
	repo   string
	logger logger.Logger

	login      string
	milestones map[string]int
	ids        map[int]int64
}

// NewGitHubParams contains parameters for creating a GitHub forge.
type NewGitHubParams struct {
	Client     *github.Client
	Owner      string
	Repository string
	Logger     logger.Logger
}

// NewGitHubClient creates an API client, authenticated when token is set.
func NewGitHubClient(token string) *github.Client {
	if token != "" {
		return github.NewTokenClient(context.Background(), token)
	}
	return github.NewClient(nil)
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub(params NewGitHubParams) *GitHub {
	return &GitHub{
		client:     params.Client,
		owner:      params.Owner,
		repo:       params.Repository,
		logger:     params.Logger,
		milestones: make(map[string]int),
		ids:        make(map[int]int64),
	}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// CreateIssue creates the issue through the GitHub API.
func (g *GitHub) CreateIssue(ctx context.Context, iss issue.Issue) (Created, error) {
	req := &github.IssueRequest{
		Title: github.String(iss.Title),
		Body:  github.String(iss.Description),
	}

	if len(iss.Labels) > 0 {
		labels := append([]string(nil), iss.Labels...)
		req.Labels = &labels
	}

	if len(iss.Assignees) > 0 {
		assignees, err := g.resolveAssignees(ctx, iss.Assignees)
		if err != nil {
			return Created{}, err
		}
		req.Assignees = &assignees
	}

	if iss.Milestone != "" {
		number, err := g.milestoneNumber(ctx, iss.Milestone)
		if err != nil {
			return Created{}, err
		}
		req.Milestone = github.Int(number)
	}

	g.logger.Debugf("Creating GitHub issue %q in %s/%s", iss.Title, g.owner, g.repo)
	created, resp, err := g.client.Issues.Create(ctx, g.owner, g.repo, req)
	if err != nil {
		return Created{}, g.handleGitHubError(err, resp, 0)
	}
	if created.GetNumber() == 0 {
		return Created{URL: created.GetHTMLURL()}, ErrUnparsableResponse
	}

	g.ids[created.GetNumber()] = created.GetID()
	return Created{URL: created.GetHTMLURL(), Number: created.GetNumber()}, nil
}

// LookupIssueID returns the internal identifier of an issue number.
func (g *GitHub) LookupIssueID(ctx context.Context, number int) (int64, error) {
	if id, ok := g.ids[number]; ok {
		return id, nil
	}

	found, resp, err := g.client.Issues.Get(ctx, g.owner, g.repo, number)
	if err != nil {
		return 0, g.handleGitHubError(err, resp, number)
	}
	if found.GetID() == 0 {
		return 0, fmt.Errorf("%w: issue #%d", ErrIssueNotFound, number)
	}

	g.ids[number] = found.GetID()
	return found.GetID(), nil
}

type subIssueRequest struct {
	SubIssueID int64 `json:"sub_issue_id"`
}

// SetParent adds child to the sub-issues of parent.
func (g *GitHub) SetParent(ctx context.Context, child, parent int) error {
	childID, err := g.LookupIssueID(ctx, child)
	if err != nil {
		return err
	}

	route := fmt.Sprintf("repos/%v/%v/issues/%d/sub_issues", g.owner, g.repo, parent)
	return g.post(ctx, route, parent, &subIssueRequest{SubIssueID: childID})
}

type blockedByRequest struct {
	IssueID int64 `json:"issue_id"`
}

// AddBlocker records that number is blocked by blocker.
func (g *GitHub) AddBlocker(ctx context.Context, number, blocker int) error {
	blockerID, err := g.LookupIssueID(ctx, blocker)
	if err != nil {
		return err
	}

	route := fmt.Sprintf("repos/%v/%v/issues/%d/dependencies/blocked_by", g.owner, g.repo, number)
	return g.post(ctx, route, number, &blockedByRequest{IssueID: blockerID})
}

// UpdateDescription replaces the body of an issue.
func (g *GitHub) UpdateDescription(ctx context.Context, number int, description string) error {
	_, resp, err := g.client.Issues.Edit(ctx, g.owner, g.repo, number, &github.IssueRequest{
		Body: github.String(description),
	})
	if err != nil {
		return g.handleGitHubError(err, resp, number)
	}
	return nil
}

func (g *GitHub) post(ctx context.Context, route string, number int, body interface{}) error {
	req, err := g.client.NewRequest(http.MethodPost, route, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := g.client.Do(ctx, req, nil)
	if err != nil {
		return g.handleGitHubError(err, resp, number)
	}
	return nil
}

// resolveAssignees replaces the "me" placeholder with the authenticated login.
func (g *GitHub) resolveAssignees(ctx context.Context, assignees []string) ([]string, error) {
	resolved := make([]string, 0, len(assignees))
	for _, assignee := range assignees {
		if assignee != issue.Me {
			resolved = append(resolved, assignee)
			continue
		}

		if g.login == "" {
			user, resp, err := g.client.Users.Get(ctx, "")
			if err != nil {
				return nil, g.handleGitHubError(err, resp, 0)
			}
			g.login = user.GetLogin()
		}
		resolved = append(resolved, g.login)
	}
	return resolved, nil
}

// milestoneNumber finds the number of the milestone titled title.
func (g *GitHub) milestoneNumber(ctx context.Context, title string) (int, error) {
	if number, ok := g.milestones[title]; ok {
		return number, nil
	}

	opts := &github.MilestoneListOptions{State: "all", ListOptions: github.ListOptions{PerPage: 100}}
	for {
		milestones, resp, err := g.client.Issues.ListMilestones(ctx, g.owner, g.repo, opts)
		if err != nil {
			return 0, g.handleGitHubError(err, resp, 0)
		}

		for _, m := range milestones {
			g.milestones[m.GetTitle()] = m.GetNumber()
		}
		if number, ok := g.milestones[title]; ok {
			return number, nil
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return 0, fmt.Errorf("%w: %s", ErrMilestoneNotFound, title)
}

// handleGitHubError handles GitHub API errors and returns appropriate error messages.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, issueNumber int) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			if issueNumber != 0 {
				return fmt.Errorf("%w: issue #%d", ErrIssueNotFound, issueNumber)
			}
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check GITHUB_TOKEN environment variable", ErrUnauthorized)
		case http.StatusForbidden:
			// Check if it's rate limiting
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
	}
	return fmt.Errorf("GitHub API call failed: %w", err)
}
