package main

import (
	"fmt"

	"github.com/lerenn/issurge/cmd/issurge/internal/cli"
	"github.com/lerenn/issurge/pkg/issurge"
	"github.com/lerenn/issurge/pkg/submit"
	"github.com/spf13/cobra"
)

func createNewCmd() *cobra.Command {
	var dryRun bool

	newCmd := &cobra.Command{
		Use:   "new <fragment>... [-- <submitter-args>...]",
		Short: "Create a single issue from the command line",
		Long: `Create one issue from a fragment written directly on the command line.
If the fragment ends with ':', the description is read interactively until two
empty lines in a row.

Examples:
  issurge new ~enhancement add an interactive mode @me
  issurge new Write the changelog %v2:`,
		Args: func(cmd *cobra.Command, args []string) error {
			words, _ := splitSubmitterArgs(cmd, args)
			if len(words) == 0 {
				return fmt.Errorf("requires a fragment")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			words, submitterArgs := splitSubmitterArgs(cmd, args)

			is, err := cli.NewIssurge()
			if err != nil {
				return err
			}

			result, err := is.New(cmd.Context(), issurge.NewOpts{
				Words:         words,
				SubmitterArgs: submitterArgs,
				DryRun:        dryRun,
			})
			if err != nil {
				return err
			}

			printCreated(cmd, []submit.Result{result})
			return nil
		},
	}

	newCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Don't actually post the issue")

	return newCmd
}
