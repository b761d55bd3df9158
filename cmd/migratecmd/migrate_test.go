// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package migratecmd

import (
	"testing"

	"github.com/luxfi/geth/common/hexutil"
	"github.com/mbattoken/mbat-cli/internal/migrations"
	"github.com/mbattoken/mbat-cli/internal/testutils"
	"github.com/mbattoken/mbat-cli/pkg/artifacts"
	"github.com/mbattoken/mbat-cli/pkg/constants"
	"github.com/mbattoken/mbat-cli/pkg/token"
	"github.com/stretchr/testify/require"
)

const devKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func clearEnv(t *testing.T) {
	for _, env := range []string{
		constants.EnvPrivateKey,
		constants.EnvMnemonic,
		constants.EnvRPCURL,
		constants.EnvNetwork,
		constants.EnvArtifactsDir,
	} {
		t.Setenv(env, "")
	}
}

func TestMigrateDryRun(t *testing.T) {
	require := require.New(t)
	clearEnv(t)
	app := testutils.SetupTestInTempDir(t)
	buf := testutils.CaptureUserOutput()

	cmd := NewCmd(app)
	cmd.SetArgs([]string{"--dry-run", "--artifacts", "testdata", "--private-key", devKey})
	require.NoError(cmd.Execute())

	out := buf.String()
	require.Contains(out, "Dry run on network development")
	require.Contains(out, "MBATToken")
	require.Contains(out, "1000000000000000000000000000")
	require.Contains(out, "Unsigned MBATToken creation tx")
	require.Contains(out, "  raw tx:   0x")

	art, err := artifacts.NewDirRegistry("testdata").Require("MBATToken")
	require.NoError(err)
	data, err := art.DeployData(token.InitialSupply())
	require.NoError(err)
	require.Contains(out, "  calldata: "+hexutil.Encode(data))

	records, err := app.LoadDeployments(constants.DefaultNetworkName)
	require.NoError(err)
	require.Empty(records)
}

func TestMigrateDryRunWithoutKey(t *testing.T) {
	require := require.New(t)
	clearEnv(t)
	app := testutils.SetupTestInTempDir(t)
	testutils.CaptureUserOutput()

	cmd := NewCmd(app)
	cmd.SetArgs([]string{"--dry-run", "--artifacts", "testdata", "--network", "sepolia"})
	require.NoError(cmd.Execute())
}

func TestMigrateList(t *testing.T) {
	require := require.New(t)
	clearEnv(t)
	app := testutils.SetupTestInTempDir(t)
	buf := testutils.CaptureUserOutput()

	cmd := NewCmd(app)
	cmd.SetArgs([]string{"--list"})
	require.NoError(cmd.Execute())
	require.Contains(buf.String(), "2_deploy_mbat_token")
}

func TestMigrateErrors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		args []string
		err  error
	}{
		{"empty range", []string{"--dry-run", "--artifacts", "testdata", "--from", "3"}, migrations.ErrNoMigrations},
		{"reversed range", []string{"--dry-run", "--artifacts", "testdata", "--from", "2", "--to", "1"}, migrations.ErrInvalidRange},
		{"missing artifact", []string{"--dry-run", "--artifacts", t.TempDir()}, artifacts.ErrArtifactNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testutils.SetupTestInTempDir(t)
			cmd := NewCmd(app)
			cmd.SetArgs(tt.args)
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			require.ErrorIs(t, cmd.Execute(), tt.err)
		})
	}
}

func TestMigrateRejectsBadNetworkBeforeSending(t *testing.T) {
	require := require.New(t)
	clearEnv(t)
	app := testutils.SetupTestInTempDir(t)

	cmd := NewCmd(app)
	cmd.SetArgs([]string{"--network", "../x", "--rpc", "http://127.0.0.1:1", "--artifacts", "testdata", "--private-key", devKey})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	require.ErrorContains(err, "invalid network name")
	require.NotContains(err.Error(), "failed to get chain ID")

	networks, err := app.GetDeploymentNetworks()
	require.NoError(err)
	require.Empty(networks)
}
