// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"github.com/mbattoken/mbat-cli/pkg/application"
	"github.com/mbattoken/mbat-cli/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var app *application.App

// mbat contract
func NewCmd(injectedApp *application.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Deploy and inspect the MBAT contracts",
		Long: `The contract command suite provides a collection of tools for deploying
the MBAT token and inspecting what was deployed.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// contract deploy
	cmd.AddCommand(newDeployCmd())
	// contract deployments
	cmd.AddCommand(newDeploymentsCmd())
	// contract supply
	cmd.AddCommand(newSupplyCmd())
	return cmd
}
