// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"strconv"

	"github.com/mbattoken/mbat-cli/pkg/cobrautils"
	"github.com/mbattoken/mbat-cli/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	deploymentsNetwork string
	allNetworks        bool
)

// mbat contract deployments
func newDeploymentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deployments",
		Short: "List recorded deployments",
		Long:  "List the contracts deployed on a network, oldest first.",
		RunE:  listDeployments,
		Args:  cobrautils.ExactArgs(0),
	}
	cmd.Flags().StringVar(&deploymentsNetwork, "network", "", "network to list (default from config)")
	cmd.Flags().BoolVar(&allNetworks, "all", false, "list every network with recorded deployments")
	return cmd
}

func listDeployments(_ *cobra.Command, _ []string) error {
	networks := []string{deploymentsNetwork}
	switch {
	case allNetworks:
		var err error
		networks, err = app.GetDeploymentNetworks()
		if err != nil {
			return err
		}
	case deploymentsNetwork == "" && app.Conf != nil:
		networks[0] = app.Conf.Network()
	}

	table := ux.DefaultTable([]string{"Network", "Contract", "Address", "Tx Hash", "Block", "Deployer", "Deployed At"})
	rows := 0
	for _, network := range networks {
		deployments, err := app.LoadDeployments(network)
		if err != nil {
			return err
		}
		for _, d := range deployments {
			_ = table.Append([]string{
				d.Network,
				d.ContractName,
				d.Address.Hex(),
				d.TxHash.Hex(),
				strconv.FormatUint(d.BlockNumber, 10),
				d.Deployer.Hex(),
				d.Timestamp.Format("2006-01-02 15:04:05 MST"),
			})
			rows++
		}
	}
	if rows == 0 {
		ux.Logger.PrintToUser("No deployments recorded")
		return nil
	}
	return table.Render()
}
