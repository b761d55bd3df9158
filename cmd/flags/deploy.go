// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"fmt"
	"net/url"

	"github.com/mbattoken/mbat-cli/pkg/application"
	"github.com/mbattoken/mbat-cli/pkg/config"
	"github.com/mbattoken/mbat-cli/pkg/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	rpcURLFlag        = "rpc"
	networkFlag       = "network"
	artifactsFlag     = "artifacts"
	privateKeyFlag    = "private-key"
	mnemonicIndexFlag = "mnemonic-index"
	dryRunFlag        = "dry-run"
	verifyFlag        = "verify"
)

// DeployFlags are shared by every command that deploys contracts.
type DeployFlags struct {
	RPC           string
	Network       string
	ArtifactsDir  string
	PrivateKey    string
	MnemonicIndex uint32
	DryRun        bool
	Verify        bool
}

func (f *DeployFlags) AddToCmd(cmd *cobra.Command) {
	f.AddToFlagSet(cmd.Flags())

	existingPreRunE := cmd.PreRunE
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if existingPreRunE != nil {
			if err := existingPreRunE(cmd, args); err != nil {
				return err
			}
		}
		if f.RPC == "" {
			return nil
		}
		return ValidateRPC(f.RPC)
	}
}

func (f *DeployFlags) AddToFlagSet(fs *pflag.FlagSet) {
	fs.StringVar(&f.RPC, rpcURLFlag, "", "EVM JSON-RPC endpoint to deploy to (default from config, then "+constants.DefaultRPCEndpoint+")")
	fs.StringVar(&f.Network, networkFlag, "", "network name used to file deployment records (default "+constants.DefaultNetworkName+")")
	fs.StringVar(&f.ArtifactsDir, artifactsFlag, "", "directory holding compiled contract artifacts")
	fs.StringVar(&f.PrivateKey, privateKeyFlag, "", "hex private key of the deployer account")
	fs.Uint32Var(&f.MnemonicIndex, mnemonicIndexFlag, 0, "account index derived from "+constants.EnvMnemonic)
	fs.BoolVar(&f.DryRun, dryRunFlag, false, "encode deployments without sending any transaction")
	fs.BoolVar(&f.Verify, verifyFlag, false, "check the deployed token supply after deploying")
}

// Resolve fills values not given on the command line from conf, which
// already layers env vars over the config file over defaults.
func (f *DeployFlags) Resolve(fs *pflag.FlagSet, conf *config.Config) error {
	if conf != nil {
		if f.RPC == "" {
			f.RPC = conf.RPCURL()
		}
		if f.Network == "" {
			f.Network = conf.Network()
		}
		if f.ArtifactsDir == "" {
			f.ArtifactsDir = conf.ArtifactsDir()
		}
		if fs == nil || !fs.Changed(mnemonicIndexFlag) {
			f.MnemonicIndex = conf.MnemonicIndex()
		}
	}
	if err := application.ValidateNetworkName(f.Network); err != nil {
		return err
	}
	if f.DryRun {
		return nil
	}
	if f.RPC == "" {
		return constants.ErrNoRPCEndpoint
	}
	return ValidateRPC(f.RPC)
}

func ValidateRPC(rpc string) error {
	u, err := url.ParseRequestURI(rpc)
	if err != nil {
		return fmt.Errorf("invalid rpc endpoint %q: %w", rpc, err)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("invalid rpc endpoint %q: unsupported scheme %q", rpc, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid rpc endpoint %q: missing host", rpc)
	}
	return nil
}
