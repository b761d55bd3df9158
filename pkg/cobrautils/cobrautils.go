// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cobrautils

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CommandSuiteUsage is the RunE of commands that only group subcommands.
func CommandSuiteUsage(cmd *cobra.Command, args []string) error {
	cmd.Println(cmd.UsageString())
	if len(args) > 0 {
		return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

// ExactArgs is cobra.ExactArgs with the usage printed on failure
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			cmd.Println(cmd.UsageString())
			return fmt.Errorf("accepts %d arg(s), received %d", n, len(args))
		}
		return nil
	}
}
