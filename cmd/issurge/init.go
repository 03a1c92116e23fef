package main

import (
	"github.com/lerenn/issurge/cmd/issurge/internal/cli"
	"github.com/lerenn/issurge/pkg/issurge"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var (
		force          bool
		forgeName      string
		nonInteractive bool
	)

	initCmd := &cobra.Command{
		Use:   "init [--force] [--forge <name>] [--non-interactive]",
		Short: "Write the issurge configuration",
		Long: `Write the configuration file, by default ~/.issurge/config.yaml.

Flags:
  --force            Overwrite an existing configuration without asking
  --forge            Forge hosting the issues: auto, github or gitlab (skips the prompt)
  --non-interactive  Never prompt, keep the defaults`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			is, err := cli.NewIssurge()
			if err != nil {
				return err
			}

			return is.Init(issurge.InitOpts{
				Force:          force,
				Forge:          forgeName,
				NonInteractive: nonInteractive,
			})
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration without asking")
	initCmd.Flags().StringVar(&forgeName, "forge", "", "Forge hosting the issues: auto, github or gitlab")
	initCmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Never prompt, keep the defaults")

	return initCmd
}
