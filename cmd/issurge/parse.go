package main

import (
	"fmt"
	"io"

	"github.com/lerenn/issurge/cmd/issurge/internal/cli"
	"github.com/lerenn/issurge/pkg/issue"
	"github.com/lerenn/issurge/pkg/issurge"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats of the parse command.
const (
	OutputYAML = "yaml"
	OutputText = "text"
)

func createParseCmd() *cobra.Command {
	var output string

	parseCmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Show the issues written in a file without submitting them",
		Long: `Parse a feedback file and print the resulting issues.

Examples:
  issurge parse feedback.txt
  issurge parse -o text feedback.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			is, err := cli.NewIssurge()
			if err != nil {
				return err
			}

			issues, err := is.Parse(issurge.ParseOpts{Path: args[0]})
			if err != nil {
				return err
			}

			return writeIssues(cmd.OutOrStdout(), issues, output)
		},
	}

	parseCmd.Flags().StringVarP(&output, "output", "o", OutputYAML, "Output format: yaml or text")

	return parseCmd
}

// writeIssues renders issues in the given format.
func writeIssues(w io.Writer, issues []issue.Issue, format string) error {
	switch format {
	case OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(issues); err != nil {
			return fmt.Errorf("failed to encode issues: %w", err)
		}
		return encoder.Close()
	case OutputText:
		for _, iss := range issues {
			if _, err := fmt.Fprintln(w, iss.Display()); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q, expected %s or %s", format, OutputYAML, OutputText)
	}
}
