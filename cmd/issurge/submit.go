package main

import (
	"fmt"

	"github.com/lerenn/issurge/cmd/issurge/internal/cli"
	"github.com/lerenn/issurge/pkg/issurge"
	"github.com/lerenn/issurge/pkg/submit"
	"github.com/spf13/cobra"
)

func createSubmitCmd() *cobra.Command {
	var (
		dryRun   bool
		noStrict bool
	)

	submitCmd := &cobra.Command{
		Use:   "submit <file> [-- <submitter-args>...]",
		Short: "Create the issues written in a file",
		Long: `Parse a feedback file and create every issue it describes on the forge
hosting the current repository. Use - to read the file from standard input.

Arguments given after -- are passed as-is to every glab command.

Examples:
  issurge submit feedback.txt
  issurge submit --dry-run feedback.txt
  issurge submit feedback.txt -- --confidential`,
		Args: exactlyOneBeforeDash,
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, submitterArgs := splitSubmitterArgs(cmd, args)

			is, err := cli.NewIssurge()
			if err != nil {
				return err
			}

			results, err := is.Submit(cmd.Context(), issurge.SubmitOpts{
				ParseOpts:     issurge.ParseOpts{Path: positional[0]},
				SubmitterArgs: submitterArgs,
				DryRun:        dryRun,
				NoStrict:      noStrict,
			})
			printCreated(cmd, results)
			return err
		},
	}

	submitCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Don't actually post the issues")
	submitCmd.Flags().BoolVar(&noStrict, "no-strict", false, "Keep going when a #.n reference matches no issue")

	return submitCmd
}

// printCreated writes the URL of every created issue to standard output.
func printCreated(cmd *cobra.Command, results []submit.Result) {
	for _, result := range results {
		if result.URL != "" {
			fmt.Fprintln(cmd.OutOrStdout(), result.URL)
		}
	}
}
