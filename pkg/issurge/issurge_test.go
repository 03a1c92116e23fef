//go:build unit

package issurge

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/lerenn/issurge/pkg/config"
	configmocks "github.com/lerenn/issurge/pkg/config/mocks"
	"github.com/lerenn/issurge/pkg/dependencies"
	"github.com/lerenn/issurge/pkg/forge"
	forgemocks "github.com/lerenn/issurge/pkg/forge/mocks"
	fsmocks "github.com/lerenn/issurge/pkg/fs/mocks"
	gitmocks "github.com/lerenn/issurge/pkg/git/mocks"
	"github.com/lerenn/issurge/pkg/issue"
	"github.com/lerenn/issurge/pkg/logger"
	promptmocks "github.com/lerenn/issurge/pkg/prompt/mocks"
	"github.com/lerenn/issurge/pkg/submit"
	submitmocks "github.com/lerenn/issurge/pkg/submit/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	issurge      Issurge
	fs           *fsmocks.MockFS
	git          *gitmocks.MockGit
	config       *configmocks.MockManager
	prompt       *promptmocks.MockPrompter
	forgeManager *forgemocks.MockManagerInterface
	forge        *forgemocks.MockForge
	submitter    *submitmocks.MockSubmitter
	logs         *bytes.Buffer
	// submitterParams records the parameters of the last built submitter.
	submitterParams *submit.NewSubmitterParams
	forgeParams     *forge.NewManagerParams
}

func newTestEnv(t *testing.T, stdin string) *testEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	env := &testEnv{
		fs:           fsmocks.NewMockFS(ctrl),
		git:          gitmocks.NewMockGit(ctrl),
		config:       configmocks.NewMockManager(ctrl),
		prompt:       promptmocks.NewMockPrompter(ctrl),
		forgeManager: forgemocks.NewMockManagerInterface(ctrl),
		forge:        forgemocks.NewMockForge(ctrl),
		submitter:    submitmocks.NewMockSubmitter(ctrl),
		logs:         &bytes.Buffer{},
	}

	deps := dependencies.New().
		WithFS(env.fs).
		WithGit(env.git).
		WithConfig(env.config).
		WithPrompt(env.prompt).
		WithStdin(strings.NewReader(stdin)).
		WithLogger(logger.NewWriterLogger(env.logs, true)).
		WithForgeProvider(func(params forge.NewManagerParams) forge.ManagerInterface {
			env.forgeParams = &params
			return env.forgeManager
		}).
		WithSubmitterProvider(func(params submit.NewSubmitterParams) submit.Submitter {
			env.submitterParams = &params
			return env.submitter
		})

	is, err := NewIssurge(NewIssurgeParams{Dependencies: deps})
	require.NoError(t, err)
	env.issurge = is

	return env
}

func (env *testEnv) expectFile(path, content string) {
	env.fs.EXPECT().ExpandPath(path).Return(path, nil)
	env.fs.EXPECT().ReadFile(path).Return([]byte(content), nil)
}

func TestNewIssurge_InvalidDependencies(t *testing.T) {
	_, err := NewIssurge(NewIssurgeParams{Dependencies: &dependencies.Dependencies{}})
	assert.ErrorIs(t, err, dependencies.ErrFSMissing)
}

func TestIssurge_Parse(t *testing.T) {
	env := newTestEnv(t, "")
	env.expectFile("feedback.txt", "~bug Crash on start\n// note\nAdd docs @me\n")

	issues, err := env.issurge.Parse(ParseOpts{Path: "feedback.txt"})
	require.NoError(t, err)
	assert.Equal(t, []issue.Issue{
		{Title: "Crash on start", Labels: []string{"bug"}},
		{Title: "Add docs", Assignees: []string{"me"}},
	}, issues)
}

func TestIssurge_Parse_Stdin(t *testing.T) {
	env := newTestEnv(t, "From stdin ~x\n")

	issues, err := env.issurge.Parse(ParseOpts{Path: StdinPath})
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "From stdin", issues[0].Title)
}

func TestIssurge_Parse_Errors(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.issurge.Parse(ParseOpts{})
	assert.ErrorIs(t, err, ErrNoInput)

	env.fs.EXPECT().ExpandPath("missing.txt").Return("missing.txt", nil)
	env.fs.EXPECT().ReadFile("missing.txt").Return(nil, os.ErrNotExist)
	_, err = env.issurge.Parse(ParseOpts{Path: "missing.txt"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIssurge_Submit(t *testing.T) {
	env := newTestEnv(t, "")
	cfg := config.Default()
	cfg.SubmitterArgs = []string{"--confidential"}

	env.config.EXPECT().GetConfigWithFallback().Return(cfg, nil)
	env.expectFile("feedback.txt", "#.1 Parent\nChild ^.1\n")
	env.forgeManager.EXPECT().GetForgeForRepository(".", "origin", config.ForgeAuto).Return(env.forge, nil)
	env.forge.EXPECT().Name().Return(forge.GitLabName)
	env.submitter.EXPECT().Submit(gomock.Any(), gomock.Len(2)).Return([]submit.Result{
		{Number: 10}, {Number: 11},
	}, nil)

	results, err := env.issurge.Submit(context.Background(), SubmitOpts{
		ParseOpts:     ParseOpts{Path: "feedback.txt"},
		SubmitterArgs: []string{"--weight", "3"},
	})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	require.NotNil(t, env.forgeParams)
	assert.Equal(t, []string{"--confidential", "--weight", "3"}, env.forgeParams.SubmitterArgs)
	require.NotNil(t, env.submitterParams)
	assert.True(t, env.submitterParams.Strict)
	assert.False(t, env.submitterParams.DryRun)
	assert.Equal(t, env.forge, env.submitterParams.Forge)
}

func TestIssurge_Submit_DryRunNeedsNoForge(t *testing.T) {
	env := newTestEnv(t, "")

	env.config.EXPECT().GetConfigWithFallback().Return(config.Default(), nil)
	env.expectFile("feedback.txt", "Only one\n")
	env.submitter.EXPECT().Submit(gomock.Any(), gomock.Len(1)).Return([]submit.Result{{}}, nil)

	_, err := env.issurge.Submit(context.Background(), SubmitOpts{
		ParseOpts: ParseOpts{Path: "feedback.txt"},
		DryRun:    true,
		NoStrict:  true,
	})
	require.NoError(t, err)

	assert.Nil(t, env.forgeParams)
	assert.True(t, env.submitterParams.DryRun)
	assert.False(t, env.submitterParams.Strict)
	assert.Nil(t, env.submitterParams.Forge)
}

func TestIssurge_Submit_NoIssues(t *testing.T) {
	env := newTestEnv(t, "")

	env.config.EXPECT().GetConfigWithFallback().Return(config.Default(), nil)
	env.expectFile("empty.txt", "// nothing yet\n")

	results, err := env.issurge.Submit(context.Background(), SubmitOpts{ParseOpts: ParseOpts{Path: "empty.txt"}})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Contains(t, env.logs.String(), "No issues found in empty.txt")
}

func TestIssurge_Submit_ForgeError(t *testing.T) {
	env := newTestEnv(t, "")

	env.config.EXPECT().GetConfigWithFallback().Return(config.Default(), nil)
	env.expectFile("feedback.txt", "Issue\n")
	env.forgeManager.EXPECT().GetForgeForRepository(".", "origin", config.ForgeAuto).
		Return(nil, forge.ErrUnsupportedForge)

	_, err := env.issurge.Submit(context.Background(), SubmitOpts{ParseOpts: ParseOpts{Path: "feedback.txt"}})
	assert.ErrorIs(t, err, forge.ErrUnsupportedForge)
}

func TestIssurge_New(t *testing.T) {
	env := newTestEnv(t, "")

	env.config.EXPECT().GetConfigWithFallback().Return(config.Default(), nil)
	env.submitter.EXPECT().Submit(gomock.Any(), []issue.Issue{
		{Title: "add a one-shot mode", Labels: []string{"enhancement"}, Assignees: []string{"me"}},
	}).Return([]submit.Result{{Number: 4}}, nil)

	result, err := env.issurge.New(context.Background(), NewOpts{
		Words:  []string{"~enhancement", "add", "a", "one-shot", "mode", "@me"},
		DryRun: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Number)
	assert.False(t, env.submitterParams.Strict)
}

func TestIssurge_New_PromptsForDescription(t *testing.T) {
	env := newTestEnv(t, "")

	env.config.EXPECT().GetConfigWithFallback().Return(config.Default(), nil)
	env.prompt.EXPECT().PromptForDescription().Return("Needed by ^12", nil)
	env.submitter.EXPECT().Submit(gomock.Any(), []issue.Issue{{
		Title:       "Write docs",
		Description: "Needed by #12",
		Parent:      issue.RefPtr(issue.DirectRef(12)),
	}}).Return([]submit.Result{{Number: 13}}, nil)

	_, err := env.issurge.New(context.Background(), NewOpts{Words: []string{"Write", "docs:"}, DryRun: true})
	require.NoError(t, err)
}

func TestIssurge_New_Errors(t *testing.T) {
	env := newTestEnv(t, "")

	env.config.EXPECT().GetConfigWithFallback().Return(config.Default(), nil).Times(2)

	_, err := env.issurge.New(context.Background(), NewOpts{Words: []string{"~only", "@labels"}})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	promptErr := errors.New("interrupted")
	env.prompt.EXPECT().PromptForDescription().Return("", promptErr)
	_, err = env.issurge.New(context.Background(), NewOpts{Words: []string{"Title:"}})
	assert.ErrorIs(t, err, promptErr)
}

func TestIssurge_Init(t *testing.T) {
	env := newTestEnv(t, "")
	path := "/home/user/.issurge/config.yaml"

	env.config.EXPECT().GetConfigPath().Return(path)
	env.fs.EXPECT().Exists(path).Return(false, nil)
	env.config.EXPECT().DefaultConfig().Return(config.Default())
	env.prompt.EXPECT().PromptSelect(gomock.Any(), []string{"auto", "github", "gitlab"}, "auto").Return("gitlab", nil)
	env.config.EXPECT().SaveConfig(gomock.Any()).DoAndReturn(func(cfg config.Config) error {
		assert.Equal(t, config.ForgeGitLab, cfg.Forge)
		return nil
	})

	require.NoError(t, env.issurge.Init(InitOpts{}))
	assert.Contains(t, env.logs.String(), "Configuration written to "+path)
}

func TestIssurge_Init_Existing(t *testing.T) {
	path := "/home/user/.issurge/config.yaml"

	t.Run("declined", func(t *testing.T) {
		env := newTestEnv(t, "")
		env.config.EXPECT().GetConfigPath().Return(path)
		env.fs.EXPECT().Exists(path).Return(true, nil)
		env.prompt.EXPECT().PromptForConfirmation(gomock.Any(), false).Return(false, nil)

		assert.ErrorIs(t, env.issurge.Init(InitOpts{}), ErrInitAborted)
	})

	t.Run("non interactive", func(t *testing.T) {
		env := newTestEnv(t, "")
		env.config.EXPECT().GetConfigPath().Return(path)
		env.fs.EXPECT().Exists(path).Return(true, nil)

		assert.ErrorIs(t, env.issurge.Init(InitOpts{NonInteractive: true}), ErrConfigExists)
	})

	t.Run("forced", func(t *testing.T) {
		env := newTestEnv(t, "")
		env.config.EXPECT().GetConfigPath().Return(path)
		env.fs.EXPECT().Exists(path).Return(true, nil)
		env.config.EXPECT().DefaultConfig().Return(config.Default())
		env.config.EXPECT().SaveConfig(config.Default()).Return(nil)

		assert.NoError(t, env.issurge.Init(InitOpts{Force: true, NonInteractive: true}))
	})
}
