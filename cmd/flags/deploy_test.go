// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"testing"

	"github.com/mbattoken/mbat-cli/pkg/config"
	"github.com/mbattoken/mbat-cli/pkg/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Setenv(constants.EnvRPCURL, "")
	t.Setenv(constants.EnvNetwork, "")
	t.Setenv(constants.EnvArtifactsDir, "")
	t.Setenv(constants.EnvMnemonicIndex, "")
	v := viper.New()
	config.SetDefaults(v)
	v.Set(constants.ConfigMnemonicIndex, 3)
	return config.NewWithViper(v)
}

func TestResolveFromConfig(t *testing.T) {
	require := require.New(t)

	cmd := &cobra.Command{Use: "deploy"}
	f := &DeployFlags{}
	f.AddToCmd(cmd)
	require.NoError(cmd.ParseFlags(nil))

	require.NoError(f.Resolve(cmd.Flags(), newTestConfig(t)))
	require.Equal(constants.DefaultRPCEndpoint, f.RPC)
	require.Equal(constants.DefaultNetworkName, f.Network)
	require.Equal("build/contracts", f.ArtifactsDir)
	require.Equal(uint32(3), f.MnemonicIndex)
}

func TestResolveFlagsWin(t *testing.T) {
	require := require.New(t)

	cmd := &cobra.Command{Use: "deploy"}
	f := &DeployFlags{}
	f.AddToCmd(cmd)
	require.NoError(cmd.ParseFlags([]string{
		"--rpc", "https://rpc.example.org",
		"--network", "sepolia",
		"--artifacts", "out",
		"--mnemonic-index", "0",
	}))

	require.NoError(f.Resolve(cmd.Flags(), newTestConfig(t)))
	require.Equal("https://rpc.example.org", f.RPC)
	require.Equal("sepolia", f.Network)
	require.Equal("out", f.ArtifactsDir)
	require.Equal(uint32(0), f.MnemonicIndex)
}

func TestResolveErrors(t *testing.T) {
	require := require.New(t)

	f := &DeployFlags{RPC: "127.0.0.1:8545", Network: "development"}
	require.ErrorContains(f.Resolve(nil, nil), "invalid rpc endpoint")

	f = &DeployFlags{RPC: "http://127.0.0.1:8545"}
	require.ErrorIs(f.Resolve(nil, nil), constants.ErrNoNetworkName)

	f = &DeployFlags{Network: "development"}
	require.ErrorIs(f.Resolve(nil, nil), constants.ErrNoRPCEndpoint)

	f = &DeployFlags{Network: "development", DryRun: true}
	require.NoError(f.Resolve(nil, nil))
}

func TestResolveRejectsBadNetworkName(t *testing.T) {
	for _, network := range []string{"a/b", "../x", `a\b`, ".", ".."} {
		f := &DeployFlags{RPC: "http://127.0.0.1:8545", Network: network}
		require.ErrorContains(t, f.Resolve(nil, nil), "invalid network name", network)

		// a dry run writes nothing but is held to the same names
		f = &DeployFlags{Network: network, DryRun: true}
		require.ErrorContains(t, f.Resolve(nil, nil), "invalid network name", network)
	}
}

func TestValidateRPC(t *testing.T) {
	for _, rpc := range []string{"http://127.0.0.1:8545", "https://rpc.example.org/ext/bc/C/rpc", "ws://localhost:8546"} {
		require.NoError(t, ValidateRPC(rpc), rpc)
	}
	for _, rpc := range []string{"", "localhost:8545", "ftp://host", "http://"} {
		require.Error(t, ValidateRPC(rpc), rpc)
	}
}
