package issurge

import (
	"fmt"

	"github.com/lerenn/issurge/pkg/config"
)

// InitOpts contains optional parameters for Init.
type InitOpts struct {
	// Force overwrites an existing configuration without asking.
	Force bool
	// Forge skips the forge prompt when set.
	Forge          string
	NonInteractive bool
}

// Init writes the configuration file.
func (i *realIssurge) Init(opts InitOpts) error {
	path := i.deps.Config.GetConfigPath()
	i.deps.Logger.Debugf("Initializing configuration at %s", path)

	if err := i.confirmOverwrite(path, opts); err != nil {
		return err
	}

	cfg := i.deps.Config.DefaultConfig()

	forgeName, err := i.selectForge(cfg.Forge, opts)
	if err != nil {
		return err
	}
	cfg.Forge = forgeName

	if err := i.deps.Config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	i.deps.Logger.Logf("Configuration written to %s", path)
	return nil
}

func (i *realIssurge) confirmOverwrite(path string, opts InitOpts) error {
	exists, err := i.deps.FS.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check configuration: %w", err)
	}
	if !exists || opts.Force {
		return nil
	}
	if opts.NonInteractive {
		return fmt.Errorf("%w at %s, use --force to overwrite it", ErrConfigExists, path)
	}

	overwrite, err := i.deps.Prompt.PromptForConfirmation(
		fmt.Sprintf("Configuration already exists at %s. Overwrite it?", path), false)
	if err != nil {
		return err
	}
	if !overwrite {
		return ErrInitAborted
	}
	return nil
}

func (i *realIssurge) selectForge(current string, opts InitOpts) (string, error) {
	if opts.Forge != "" {
		return opts.Forge, nil
	}
	if opts.NonInteractive {
		return current, nil
	}

	choices := []string{config.ForgeAuto, config.ForgeGitHub, config.ForgeGitLab}
	selected, err := i.deps.Prompt.PromptSelect("Which forge hosts your issues?", choices, current)
	if err != nil {
		return "", fmt.Errorf("failed to select forge: %w", err)
	}
	return selected, nil
}
