// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package migratecmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/luxfi/geth/accounts/abi/bind"
	"github.com/luxfi/geth/common"
	"github.com/mbattoken/mbat-cli/cmd/flags"
	"github.com/mbattoken/mbat-cli/internal/migrations"
	"github.com/mbattoken/mbat-cli/pkg/application"
	"github.com/mbattoken/mbat-cli/pkg/artifacts"
	"github.com/mbattoken/mbat-cli/pkg/constants"
	"github.com/mbattoken/mbat-cli/pkg/contract"
	"github.com/mbattoken/mbat-cli/pkg/key"
	"github.com/mbattoken/mbat-cli/pkg/token"
	"github.com/mbattoken/mbat-cli/pkg/ux"
	"github.com/mbattoken/mbat-cli/sdk/evm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Deploy runs the selected migrations with the deployer described by f and
// prints what was deployed. Deployments made before a failure are returned
// and printed too.
func Deploy(
	cmd *cobra.Command,
	app *application.App,
	f *flags.DeployFlags,
	opts migrations.Options,
) ([]*contract.Deployment, error) {
	if err := f.Resolve(cmd.Flags(), app.Conf); err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	registry := artifacts.NewDirRegistry(f.ArtifactsDir)
	env := &migrations.Environment{
		Artifacts: registry,
		Network:   f.Network,
	}

	var (
		caller bind.ContractCaller
		dryRun *contract.DryRunDeployer
	)
	if f.DryRun {
		from, err := dryRunSender(app, f)
		if err != nil {
			return nil, err
		}
		dryRun = contract.NewDryRunDeployer(from, f.Network)
		env.Deployer = dryRun
		ux.Logger.PrintToUser("Dry run on network %s, nothing will be sent", f.Network)
	} else {
		deployerKey, err := key.Load(key.Options{
			PrivateKey:    f.PrivateKey,
			MnemonicIndex: f.MnemonicIndex,
			Prompter:      app.Prompt,
		})
		if err != nil {
			return nil, err
		}
		dialCtx, cancel := context.WithTimeout(ctx, constants.APIRequestTimeout)
		client, err := contract.Dial(dialCtx, f.RPC)
		cancel()
		if err != nil {
			return nil, err
		}
		defer client.Close()
		caller = client

		evmDeployer := contract.NewEVMDeployer(client, deployerKey.PrivateKey, f.Network, app.Log).
			WithStepTracker(ux.NewStepTracker(ux.Logger, constants.DeployWarnAfter))
		env.Deployer = contract.NewRecordingDeployer(evmDeployer, app)
		ux.Logger.PrintToUser("Deploying to network %s (%s) from %s", f.Network, f.RPC, deployerKey.Address.Hex())
		app.Log.Info("deployer key loaded", zap.String("source", string(deployerKey.Source)))
	}

	runCtx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()
	deployments, err := migrations.Run(runCtx, env, opts)
	printDeployments(deployments)
	if err != nil {
		return deployments, err
	}
	if dryRun != nil {
		if err := printDryRunTxs(dryRun.Requests()); err != nil {
			return deployments, err
		}
	}

	if f.Verify && !f.DryRun {
		if err := verifyTokens(runCtx, caller, registry, deployments); err != nil {
			return deployments, err
		}
	}
	return deployments, nil
}

// dryRunSender never prompts: a dry run without a key encodes from the zero
// address.
func dryRunSender(app *application.App, f *flags.DeployFlags) (common.Address, error) {
	deployerKey, err := key.Load(key.Options{
		PrivateKey:    f.PrivateKey,
		MnemonicIndex: f.MnemonicIndex,
	})
	switch {
	case err == nil:
		return deployerKey.Address, nil
	case errors.Is(err, key.ErrNoKey):
		app.Log.Debug("dry run without a deployer key")
		return common.Address{}, nil
	default:
		return common.Address{}, err
	}
}

func verifyTokens(
	ctx context.Context,
	caller bind.ContractCaller,
	registry artifacts.Registry,
	deployments []*contract.Deployment,
) error {
	for _, d := range deployments {
		if d.ContractName != token.Name {
			continue
		}
		artifact, err := registry.Require(token.Name)
		if err != nil {
			return err
		}
		info, err := contract.VerifyTokenSupply(ctx, caller, artifact, d.Address, token.InitialSupply(), token.Decimals)
		if err != nil {
			return err
		}
		ux.Logger.GreenCheckmarkToUser("%s at %s holds %s %s", token.Name, d.Address.Hex(), token.FormatUnits(info.TotalSupply), token.Symbol)
	}
	return nil
}

func printDeployments(deployments []*contract.Deployment) {
	if len(deployments) == 0 {
		return
	}
	ux.Logger.PrintLineSeparator()
	table := ux.DefaultTable([]string{"Contract", "Address", "Tx Hash", "Block", "Gas Used", "Fee (wei)", "Constructor Args"})
	for _, d := range deployments {
		address, txHash, block, gasUsed, fee := "-", "-", "-", "-", "-"
		if !d.DryRun {
			address = d.Address.Hex()
			txHash = d.TxHash.Hex()
			block = strconv.FormatUint(d.BlockNumber, 10)
			gasUsed = ux.ConvertToStringWithThousandSeparator(d.GasUsed)
			if d.Fee != "" {
				fee = d.Fee
			}
		}
		_ = table.Append([]string{d.ContractName, address, txHash, block, gasUsed, fee, fmt.Sprint(d.ConstructorArgs)})
	}
	_ = table.Render()
}

// printDryRunTxs dumps the unsigned creation tx of every captured request.
func printDryRunTxs(requests []contract.DeployRequest) error {
	for _, r := range requests {
		dump, err := evm.TxDump("Unsigned "+r.Artifact.ContractName+" creation tx", r.UnsignedTx())
		if err != nil {
			return err
		}
		ux.Logger.PrintLineSeparator()
		ux.Logger.PrintToUser("%s", strings.TrimSuffix(dump, "\n"))
	}
	return nil
}
