// Package config provides configuration management functionality for the issurge application.
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/lerenn/issurge/configs"
	"gopkg.in/yaml.v3"
)

// Forge names accepted by the configuration.
const (
	ForgeAuto   = "auto"
	ForgeGitHub = "github"
	ForgeGitLab = "gitlab"
)

// Config represents the application configuration.
type Config struct {
	// Forge is auto, github or gitlab.
	Forge string `yaml:"forge"`
	// Remote is the git remote whose URL tells which forge hosts the issues.
	Remote string `yaml:"remote"`
	// SubmitterArgs are passed as-is to every issue creation command.
	SubmitterArgs []string `yaml:"submitter_args,omitempty"`
	// StrictReferences fails a batch on local references that cannot be resolved.
	StrictReferences bool         `yaml:"strict_references"`
	GitHub           GitHubConfig `yaml:"github"`
}

// GitHubConfig holds the GitHub specific settings.
type GitHubConfig struct {
	// TokenEnv is the environment variable holding the API token.
	TokenEnv string `yaml:"token_env"`
}

// Default returns the configuration shipped in configs/default.yaml.
func Default() Config {
	var config Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &config); err != nil {
		panic(fmt.Sprintf("embedded default configuration is invalid: %v", err))
	}
	return config
}

// Parse reads a YAML configuration on top of the defaults and validates it.
func Parse(data []byte) (Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if !slices.Contains([]string{ForgeAuto, ForgeGitHub, ForgeGitLab}, c.Forge) {
		return fmt.Errorf("%w: %q, expected %s, %s or %s", ErrInvalidForge, c.Forge, ForgeAuto, ForgeGitHub, ForgeGitLab)
	}
	if c.Remote == "" {
		return ErrRemoteEmpty
	}
	return nil
}

// GitHubToken returns the GitHub token from the configured environment variable.
func (c Config) GitHubToken() string {
	if c.GitHub.TokenEnv == "" {
		return ""
	}
	return os.Getenv(c.GitHub.TokenEnv)
}
