// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"github.com/mbattoken/mbat-cli/cmd/flags"
	"github.com/mbattoken/mbat-cli/cmd/migratecmd"
	"github.com/mbattoken/mbat-cli/internal/migrations"
	"github.com/mbattoken/mbat-cli/pkg/cobrautils"
	"github.com/mbattoken/mbat-cli/pkg/token"
	"github.com/mbattoken/mbat-cli/pkg/ux"
	"github.com/spf13/cobra"
)

// deployMBATMigration is the migration number of the MBAT token script
const deployMBATMigration = 2

var deployMBATFlags flags.DeployFlags

// mbat contract deploy mbat
func newDeployMBATCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mbat",
		Short: "Deploy the MBAT token",
		Long: `Deploy the MBATToken contract with its full initial supply of
1,000,000,000 MBAT minted to the deployer. Every run deploys a new token.`,
		RunE: deployMBAT,
		Args: cobrautils.ExactArgs(0),
	}
	deployMBATFlags.AddToCmd(cmd)
	return cmd
}

func deployMBAT(cmd *cobra.Command, _ []string) error {
	deployments, err := migratecmd.Deploy(cmd, app, &deployMBATFlags, migrations.Options{
		From: deployMBATMigration,
		To:   deployMBATMigration,
	})
	if err != nil {
		return err
	}
	for _, d := range deployments {
		if d.DryRun {
			continue
		}
		ux.Logger.PrintToUser("")
		ux.Logger.PrintToUser("Token Address: %s", d.Address.Hex())
		ux.Logger.PrintToUser("")
		ux.Logger.PrintToUser("%s Contract Successfully Deployed!", token.Name)
	}
	return nil
}
