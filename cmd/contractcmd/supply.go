// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/luxfi/geth/common"
	"github.com/mbattoken/mbat-cli/cmd/flags"
	"github.com/mbattoken/mbat-cli/pkg/artifacts"
	"github.com/mbattoken/mbat-cli/pkg/cobrautils"
	"github.com/mbattoken/mbat-cli/pkg/constants"
	"github.com/mbattoken/mbat-cli/pkg/contract"
	"github.com/mbattoken/mbat-cli/pkg/token"
	"github.com/mbattoken/mbat-cli/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	supplyRPC       string
	supplyNetwork   string
	supplyArtifacts string
	supplyAddress   string
	supplyOnChain   bool
)

// mbat contract supply
func newSupplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "supply",
		Short: "Show the MBAT initial supply",
		Long: `Show the initial supply the MBAT token is deployed with, in base units
and whole tokens. With --on-chain, read totalSupply() from the latest
recorded deployment (or --address) and compare.`,
		RunE: showSupply,
		Args: cobrautils.ExactArgs(0),
	}
	cmd.Flags().BoolVar(&supplyOnChain, "on-chain", false, "read the supply of a deployed token")
	cmd.Flags().StringVar(&supplyRPC, "rpc", "", "EVM JSON-RPC endpoint (default from config)")
	cmd.Flags().StringVar(&supplyNetwork, "network", "", "network of the recorded deployment (default from config)")
	cmd.Flags().StringVar(&supplyArtifacts, "artifacts", "", "directory holding compiled contract artifacts")
	cmd.Flags().StringVar(&supplyAddress, "address", "", "token address, instead of the latest recorded deployment")
	return cmd
}

func showSupply(cmd *cobra.Command, _ []string) error {
	initialSupply := token.InitialSupply()
	table := ux.DefaultTable([]string{"Field", "Value"})
	_ = table.Append([]string{"Contract", token.Name})
	_ = table.Append([]string{"Symbol", token.Symbol})
	_ = table.Append([]string{"Decimals", strconv.Itoa(token.Decimals)})
	_ = table.Append([]string{"Initial Supply (base units)", initialSupply.String()})
	_ = table.Append([]string{"Initial Supply (" + token.Symbol + ")", token.FormatUnits(initialSupply)})
	if err := table.Render(); err != nil {
		return err
	}
	if !supplyOnChain {
		return nil
	}
	return showOnChainSupply(cmd.Context())
}

func showOnChainSupply(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	f := flags.DeployFlags{
		RPC:          supplyRPC,
		Network:      supplyNetwork,
		ArtifactsDir: supplyArtifacts,
	}
	if err := f.Resolve(nil, app.Conf); err != nil {
		return err
	}

	var address common.Address
	if supplyAddress != "" {
		if !common.IsHexAddress(supplyAddress) {
			return fmt.Errorf("invalid token address %q", supplyAddress)
		}
		address = common.HexToAddress(supplyAddress)
	} else {
		d, found, err := app.LatestDeployment(f.Network, token.Name)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("no %s deployment recorded on %s, use --address", token.Name, f.Network)
		}
		address = d.Address
	}

	artifact, err := artifacts.NewDirRegistry(f.ArtifactsDir).Require(token.Name)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, constants.APIRequestTimeout)
	defer cancel()
	client, err := contract.Dial(ctx, f.RPC)
	if err != nil {
		return err
	}
	defer client.Close()

	info, err := contract.VerifyTokenSupply(ctx, client, artifact, address, token.InitialSupply(), token.Decimals)
	if info != nil {
		ux.Logger.PrintToUser("%s at %s reports totalSupply %s (%s %s)",
			token.Name, address.Hex(), info.TotalSupply, token.FormatUnits(info.TotalSupply), token.Symbol)
	}
	if err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("on-chain supply matches the initial supply")
	return nil
}
