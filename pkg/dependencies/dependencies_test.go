//go:build unit

package dependencies

import (
	"strings"
	"testing"

	configmocks "github.com/lerenn/issurge/pkg/config/mocks"
	"github.com/lerenn/issurge/pkg/forge"
	forgemocks "github.com/lerenn/issurge/pkg/forge/mocks"
	"github.com/lerenn/issurge/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDependencies_New_Defaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Git)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Prompt)
	assert.NotNil(t, deps.Stdin)
	assert.NotNil(t, deps.ForgeProvider)
	assert.NotNil(t, deps.SubmitterProvider)
	assert.Nil(t, deps.Config)

	// Config is the only dependency without a default
	assert.ErrorIs(t, deps.Validate(), ErrConfigMissing)
}

func TestDependencies_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := New().WithConfig(configmocks.NewMockManager(ctrl))
	require.NoError(t, deps.Validate())

	tests := []struct {
		name   string
		unset  func(d *Dependencies)
		expect error
	}{
		{name: "fs", unset: func(d *Dependencies) { d.FS = nil }, expect: ErrFSMissing},
		{name: "git", unset: func(d *Dependencies) { d.Git = nil }, expect: ErrGitMissing},
		{name: "logger", unset: func(d *Dependencies) { d.Logger = nil }, expect: ErrLoggerMissing},
		{name: "prompt", unset: func(d *Dependencies) { d.Prompt = nil }, expect: ErrPromptMissing},
		{name: "stdin", unset: func(d *Dependencies) { d.Stdin = nil }, expect: ErrStdinMissing},
		{name: "forge provider", unset: func(d *Dependencies) { d.ForgeProvider = nil }, expect: ErrForgeProviderMissing},
		{name: "submitter provider", unset: func(d *Dependencies) { d.SubmitterProvider = nil }, expect: ErrSubmitterProviderMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New().WithConfig(configmocks.NewMockManager(ctrl))
			tt.unset(d)
			assert.ErrorIs(t, d.Validate(), tt.expect)
		})
	}
}

func TestDependencies_AllMissing(t *testing.T) {
	// The first missing dependency is reported
	assert.ErrorIs(t, (&Dependencies{}).Validate(), ErrFSMissing)
}

func TestDependencies_With(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := forgemocks.NewMockManagerInterface(ctrl)
	log := logger.NewNoopLogger()
	stdin := strings.NewReader("issue")

	deps := New().
		WithLogger(log).
		WithStdin(stdin).
		WithForgeProvider(func(forge.NewManagerParams) forge.ManagerInterface { return manager })

	assert.Same(t, log, deps.Logger)
	assert.Same(t, stdin, deps.Stdin)
	assert.Equal(t, manager, deps.ForgeProvider(forge.NewManagerParams{}))
}
