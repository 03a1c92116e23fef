// Package forge submits issues to the tracker hosting a repository.
package forge

import (
	"context"
	"fmt"

	"github.com/lerenn/issurge/pkg/git"
	"github.com/lerenn/issurge/pkg/issue"
	"github.com/lerenn/issurge/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// Forge names.
const (
	// AutoName selects the forge from the remote URL.
	AutoName = "auto"
)

// Created describes an issue the forge has just created.
type Created struct {
	URL    string
	Number int
}

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge
	Name() string

	// CreateIssue submits one issue and returns the number the forge gave it.
	// It fails with ErrUnparsableResponse when the number cannot be read back.
	CreateIssue(ctx context.Context, iss issue.Issue) (Created, error)

	// LookupIssueID returns the identifier relationship APIs expect for an issue number.
	LookupIssueID(ctx context.Context, number int) (int64, error)

	// SetParent makes child a sub-issue of parent.
	SetParent(ctx context.Context, child, parent int) error

	// AddBlocker marks number as blocked by blocker.
	AddBlocker(ctx context.Context, number, blocker int) error

	// UpdateDescription replaces the description of an existing issue.
	UpdateDescription(ctx context.Context, number int, description string) error
}

// ManagerInterface defines the interface for forge management.
type ManagerInterface interface {
	// GetForge returns the forge implementation for the given name and remote
	GetForge(name string, remote git.Remote) (Forge, error)
	// GetForgeForRepository returns the forge hosting the given remote of a repository
	GetForgeForRepository(repoPath, remoteName, name string) (Forge, error)
}

// NewManagerParams contains parameters for creating a forge Manager.
type NewManagerParams struct {
	Git    git.Git
	Logger logger.Logger
	// GitHubToken authenticates API calls to GitHub.
	GitHubToken string
	// SubmitterArgs are passed as-is to every issue creation command.
	SubmitterArgs []string
}

// Manager builds forge implementations for repositories.
type Manager struct {
	git           git.Git
	logger        logger.Logger
	githubToken   string
	submitterArgs []string
}

// NewManager creates a new forge manager.
func NewManager(params NewManagerParams) *Manager {
	return &Manager{
		git:           params.Git,
		logger:        params.Logger,
		githubToken:   params.GitHubToken,
		submitterArgs: params.SubmitterArgs,
	}
}

// GetForge returns the forge implementation for the given name.
func (m *Manager) GetForge(name string, remote git.Remote) (Forge, error) {
	if name == "" || name == AutoName {
		name = DetectName(remote)
	}

	switch name {
	case GitHubName:
		if len(m.submitterArgs) > 0 {
			m.logger.Logf("Warning: submitter arguments %v are ignored by the %s forge", m.submitterArgs, GitHubName)
		}
		return NewGitHub(NewGitHubParams{
			Client:     NewGitHubClient(m.githubToken),
			Owner:      remote.Owner(),
			Repository: remote.Name(),
			Logger:     m.logger,
		}), nil
	case GitLabName:
		return NewGitLab(NewGitLabParams{
			Project:       remote.Path,
			SubmitterArgs: m.submitterArgs,
			Logger:        m.logger,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, name)
	}
}

// GetForgeForRepository returns the forge for the remote of the given repository.
func (m *Manager) GetForgeForRepository(repoPath, remoteName, name string) (Forge, error) {
	exists, err := m.git.RemoteExists(repoPath, remoteName)
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s, make sure that you are inside of a git repository that has it",
			git.ErrRemoteNotFound, remoteName)
	}

	rawURL, err := m.git.GetRemoteURL(repoPath, remoteName)
	if err != nil {
		return nil, fmt.Errorf("failed to get remote %s: %w", remoteName, err)
	}

	remote, err := git.ParseRemoteURL(rawURL)
	if err != nil {
		return nil, err
	}

	m.logger.Debugf("Using remote %s (%s/%s)", remoteName, remote.Host, remote.Path)
	return m.GetForge(name, remote)
}

// DetectName picks GitHub for github.com remotes and GitLab for anything else.
func DetectName(remote git.Remote) string {
	if remote.Host == GitHubDomain {
		return GitHubName
	}
	return GitLabName
}
