// Package dependencies provides a centralized dependency container for the issurge application.
package dependencies

import (
	"errors"
	"io"
	"os"

	"github.com/lerenn/issurge/pkg/config"
	"github.com/lerenn/issurge/pkg/forge"
	"github.com/lerenn/issurge/pkg/fs"
	"github.com/lerenn/issurge/pkg/git"
	"github.com/lerenn/issurge/pkg/logger"
	"github.com/lerenn/issurge/pkg/prompt"
	"github.com/lerenn/issurge/pkg/submit"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing                = errors.New("fs dependency is required but not set")
	ErrGitMissing               = errors.New("git dependency is required but not set")
	ErrConfigMissing            = errors.New("config dependency is required but not set")
	ErrLoggerMissing            = errors.New("logger dependency is required but not set")
	ErrPromptMissing            = errors.New("prompt dependency is required but not set")
	ErrStdinMissing             = errors.New("stdin dependency is required but not set")
	ErrForgeProviderMissing     = errors.New("forge provider dependency is required but not set")
	ErrSubmitterProviderMissing = errors.New("submitter provider dependency is required but not set")
)

// ForgeProvider builds the forge manager once the configuration is known.
type ForgeProvider func(params forge.NewManagerParams) forge.ManagerInterface

// SubmitterProvider builds a submitter for one batch.
type SubmitterProvider func(params submit.NewSubmitterParams) submit.Submitter

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS                fs.FS
	Git               git.Git
	Config            config.Manager
	Logger            logger.Logger
	Prompt            prompt.Prompter
	Stdin             io.Reader
	ForgeProvider     ForgeProvider
	SubmitterProvider SubmitterProvider
}

// New creates a new Dependencies instance with sensible defaults.
// Config is left nil as it depends on the config path chosen by the caller.
func New() *Dependencies {
	return &Dependencies{
		FS:     fs.NewFS(),
		Git:    git.NewGit(),
		Logger: logger.NewNoopLogger(),
		Prompt: prompt.NewPrompt(),
		Stdin:  os.Stdin,
		ForgeProvider: func(params forge.NewManagerParams) forge.ManagerInterface {
			return forge.NewManager(params)
		},
		SubmitterProvider: submit.NewSubmitter,
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithStdin sets the reader used for the "-" file and returns the instance for chaining.
func (d *Dependencies) WithStdin(stdin io.Reader) *Dependencies {
	d.Stdin = stdin
	return d
}

// WithForgeProvider sets the forge provider and returns the instance for chaining.
func (d *Dependencies) WithForgeProvider(fp ForgeProvider) *Dependencies {
	d.ForgeProvider = fp
	return d
}

// WithSubmitterProvider sets the submitter provider and returns the instance for chaining.
func (d *Dependencies) WithSubmitterProvider(sp SubmitterProvider) *Dependencies {
	d.SubmitterProvider = sp
	return d
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	switch {
	case d.FS == nil:
		return ErrFSMissing
	case d.Git == nil:
		return ErrGitMissing
	case d.Config == nil:
		return ErrConfigMissing
	case d.Logger == nil:
		return ErrLoggerMissing
	case d.Prompt == nil:
		return ErrPromptMissing
	case d.Stdin == nil:
		return ErrStdinMissing
	case d.ForgeProvider == nil:
		return ErrForgeProviderMissing
	case d.SubmitterProvider == nil:
		return ErrSubmitterProviderMissing
	}
	return nil
}
