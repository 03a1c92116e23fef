// Package main provides the command-line interface for issurge.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/lerenn/issurge/cmd/issurge/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "issurge",
		Short: "Create a bunch of issues in bulk from a text file",
		Long: `Deal with feedback efficiently by writing issues as indented lines of a text
file and submitting them all at once to GitHub or GitLab.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(createSubmitCmd(), createParseCmd(), createNewCmd(), createInitCmd())

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
