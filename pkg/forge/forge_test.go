//go:build unit

package forge

import (
	"errors"
	"testing"

	"github.com/lerenn/issurge/pkg/git"
	gitmocks "github.com/lerenn/issurge/pkg/git/mocks"
	"github.com/lerenn/issurge/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestManager(g git.Git, submitterArgs ...string) *Manager {
	return NewManager(NewManagerParams{
		Git:           g,
		Logger:        logger.NewNoopLogger(),
		SubmitterArgs: submitterArgs,
	})
}

func TestDetectName(t *testing.T) {
	assert.Equal(t, GitHubName, DetectName(git.Remote{Host: "github.com", Path: "o/r"}))
	assert.Equal(t, GitLabName, DetectName(git.Remote{Host: "gitlab.com", Path: "o/r"}))
	assert.Equal(t, GitLabName, DetectName(git.Remote{Host: "git.example.org", Path: "o/r"}))
}

func TestManager_GetForge(t *testing.T) {
	manager := newTestManager(nil)
	remote := git.Remote{Host: "github.com", Path: "owner/repo"}

	githubForge, err := manager.GetForge(AutoName, remote)
	require.NoError(t, err)
	assert.Equal(t, GitHubName, githubForge.Name())

	gitlabForge, err := manager.GetForge(GitLabName, remote)
	require.NoError(t, err)
	assert.Equal(t, GitLabName, gitlabForge.Name())

	_, err = manager.GetForge("nonexistent", remote)
	assert.ErrorIs(t, err, ErrUnsupportedForge)
}

func TestManager_GetForgeForRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gitMock := gitmocks.NewMockGit(ctrl)
	manager := newTestManager(gitMock)

	gitMock.EXPECT().RemoteExists(".", "origin").Return(true, nil)
	gitMock.EXPECT().GetRemoteURL(".", "origin").Return("git@github.com:owner/repo.git", nil)

	f, err := manager.GetForgeForRepository(".", "origin", "")
	require.NoError(t, err)

	gh, ok := f.(*GitHub)
	require.True(t, ok)
	assert.Equal(t, "owner", gh.owner)
	assert.Equal(t, "repo", gh.repo)
}

func TestManager_GetForgeForRepository_GitLab(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gitMock := gitmocks.NewMockGit(ctrl)
	manager := newTestManager(gitMock, "--confidential")

	gitMock.EXPECT().RemoteExists("/repo", "upstream").Return(true, nil)
	gitMock.EXPECT().GetRemoteURL("/repo", "upstream").Return("https://gitlab.example.com/group/sub/repo.git", nil)

	f, err := manager.GetForgeForRepository("/repo", "upstream", AutoName)
	require.NoError(t, err)

	gl, ok := f.(*GitLab)
	require.True(t, ok)
	assert.Equal(t, "group/sub/repo", gl.project)
	assert.Equal(t, []string{"--confidential"}, gl.submitterArgs)
}

func TestManager_GetForgeForRepository_MissingRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gitMock := gitmocks.NewMockGit(ctrl)
	manager := newTestManager(gitMock)

	gitMock.EXPECT().RemoteExists(".", "origin").Return(false, nil)

	_, err := manager.GetForgeForRepository(".", "origin", "")
	assert.ErrorIs(t, err, git.ErrRemoteNotFound)
}

func TestManager_GetForgeForRepository_GitError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gitMock := gitmocks.NewMockGit(ctrl)
	manager := newTestManager(gitMock)

	gitMock.EXPECT().RemoteExists(".", "origin").Return(false, errors.New("not a git repository"))

	_, err := manager.GetForgeForRepository(".", "origin", "")
	assert.Error(t, err)
}

func TestManager_GetForgeForRepository_InvalidURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gitMock := gitmocks.NewMockGit(ctrl)
	manager := newTestManager(gitMock)

	gitMock.EXPECT().RemoteExists(".", "origin").Return(true, nil)
	gitMock.EXPECT().GetRemoteURL(".", "origin").Return("/local/path", nil)

	_, err := manager.GetForgeForRepository(".", "origin", "")
	assert.ErrorIs(t, err, git.ErrInvalidRemoteURL)
}
