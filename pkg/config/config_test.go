//go:build unit

package config

import (
	"errors"
	"os"
	"testing"

	fsmocks "github.com/lerenn/issurge/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	config := Default()

	assert.Equal(t, Config{
		Forge:            ForgeAuto,
		Remote:           "origin",
		SubmitterArgs:    []string{},
		StrictReferences: true,
		GitHub:           GitHubConfig{TokenEnv: "GITHUB_TOKEN"},
	}, config)
	assert.NoError(t, config.Validate())
}

func TestParse(t *testing.T) {
	config, err := Parse([]byte("forge: gitlab\nsubmitter_args: [\"--confidential\"]\n"))
	require.NoError(t, err)

	assert.Equal(t, ForgeGitLab, config.Forge)
	assert.Equal(t, []string{"--confidential"}, config.SubmitterArgs)
	// Missing keys keep their defaults
	assert.Equal(t, "origin", config.Remote)
	assert.True(t, config.StrictReferences)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("forge: [unclosed"))
	assert.ErrorIs(t, err, ErrConfigFileParse)

	_, err = Parse([]byte("forge: bitbucket"))
	assert.ErrorIs(t, err, ErrInvalidForge)

	_, err = Parse([]byte(`remote: ""`))
	assert.ErrorIs(t, err, ErrRemoteEmpty)
}

func TestConfig_GitHubToken(t *testing.T) {
	t.Setenv("ISSURGE_TEST_TOKEN", "secret")

	config := Config{GitHub: GitHubConfig{TokenEnv: "ISSURGE_TEST_TOKEN"}}
	assert.Equal(t, "secret", config.GitHubToken())
	assert.Equal(t, "", Config{}.GitHubToken())
}

func TestRealManager_GetConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fsMock := fsmocks.NewMockFS(ctrl)
	manager := NewManager(fsMock, "/home/user/.issurge/config.yaml")

	fsMock.EXPECT().Exists("/home/user/.issurge/config.yaml").Return(true, nil)
	fsMock.EXPECT().ReadFile("/home/user/.issurge/config.yaml").Return([]byte("forge: github\nremote: upstream\n"), nil)

	config, err := manager.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, ForgeGitHub, config.Forge)
	assert.Equal(t, "upstream", config.Remote)
}

func TestRealManager_GetConfig_NotInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fsMock := fsmocks.NewMockFS(ctrl)
	manager := NewManager(fsMock, "/missing.yaml")

	fsMock.EXPECT().Exists("/missing.yaml").Return(false, nil)

	_, err := manager.GetConfig()
	assert.ErrorIs(t, err, ErrConfigNotInitialized)
}

func TestRealManager_GetConfigWithFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fsMock := fsmocks.NewMockFS(ctrl)
	manager := NewManager(fsMock, "/missing.yaml")

	fsMock.EXPECT().Exists("/missing.yaml").Return(false, nil).Times(2)

	config, err := manager.GetConfigWithFallback()
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
}

func TestRealManager_GetConfigWithFallback_BrokenFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fsMock := fsmocks.NewMockFS(ctrl)
	manager := NewManager(fsMock, "/broken.yaml")

	fsMock.EXPECT().Exists("/broken.yaml").Return(true, nil).Times(2)
	fsMock.EXPECT().ReadFile("/broken.yaml").Return([]byte("forge: nope"), nil)

	_, err := manager.GetConfigWithFallback()
	assert.ErrorIs(t, err, ErrInvalidForge)
}

func TestRealManager_SaveConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fsMock := fsmocks.NewMockFS(ctrl)
	manager := NewManager(fsMock, "/home/user/.issurge/config.yaml")
	config := Default()
	config.Forge = ForgeGitLab

	fsMock.EXPECT().MkdirAll("/home/user/.issurge", os.FileMode(0755)).Return(nil)
	fsMock.EXPECT().WriteFileAtomic("/home/user/.issurge/config.yaml", gomock.Any(), os.FileMode(0644)).
		DoAndReturn(func(_ string, data []byte, _ os.FileMode) error {
			var written Config
			require.NoError(t, yaml.Unmarshal(data, &written))
			assert.Equal(t, ForgeGitLab, written.Forge)
			return nil
		})

	require.NoError(t, manager.SaveConfig(config))
}

func TestRealManager_SaveConfig_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fsMock := fsmocks.NewMockFS(ctrl)
	manager := NewManager(fsMock, "/ro/config.yaml")

	fsMock.EXPECT().MkdirAll("/ro", os.FileMode(0755)).Return(errors.New("read-only file system"))

	assert.Error(t, manager.SaveConfig(Default()))
}

func TestDefaultConfigPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fsMock := fsmocks.NewMockFS(ctrl)
	fsMock.EXPECT().GetHomeDir().Return("/home/user", nil)

	assert.Equal(t, "/home/user/.issurge/config.yaml", DefaultConfigPath(fsMock))
}
