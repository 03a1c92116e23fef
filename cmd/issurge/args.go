package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// splitSubmitterArgs separates the positional arguments from the ones given after "--".
func splitSubmitterArgs(cmd *cobra.Command, args []string) ([]string, []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}

// exactlyOneBeforeDash accepts one positional argument followed by optional submitter arguments.
func exactlyOneBeforeDash(cmd *cobra.Command, args []string) error {
	positional, _ := splitSubmitterArgs(cmd, args)
	if len(positional) != 1 {
		return fmt.Errorf("accepts 1 file before --, received %d", len(positional))
	}
	return nil
}
