// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contractcmd

import (
	"github.com/mbattoken/mbat-cli/pkg/cobrautils"
	"github.com/spf13/cobra"
)

// mbat contract deploy
func newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy smart contracts",
		Long: `The contract deploy command suite deploys a single contract, without
running the rest of the migrations.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	// contract deploy mbat
	cmd.AddCommand(newDeployMBATCmd())
	return cmd
}
