// Package cli provides the shared flags and constructors of the issurge CLI.
package cli

import (
	"github.com/lerenn/issurge/pkg/config"
	"github.com/lerenn/issurge/pkg/dependencies"
	"github.com/lerenn/issurge/pkg/fs"
	"github.com/lerenn/issurge/pkg/issurge"
	"github.com/lerenn/issurge/pkg/logger"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// NewLogger returns the logger matching the Quiet and Verbose flags.
func NewLogger() logger.Logger {
	if Quiet {
		return logger.NewNoopLogger()
	}
	return logger.NewDefaultLogger(Verbose)
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager(fsInstance fs.FS) config.Manager {
	path := ConfigPath
	if path == "" {
		path = config.DefaultConfigPath(fsInstance)
	} else if expanded, err := fsInstance.ExpandPath(path); err == nil {
		path = expanded
	}
	return config.NewManager(fsInstance, path)
}

// NewIssurge creates an Issurge instance wired with the real dependencies.
func NewIssurge() (issurge.Issurge, error) {
	deps := dependencies.New().WithLogger(NewLogger())
	deps = deps.WithConfig(NewConfigManager(deps.FS))

	return issurge.NewIssurge(issurge.NewIssurgeParams{Dependencies: deps})
}
