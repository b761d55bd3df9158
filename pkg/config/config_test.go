// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mbattoken/mbat-cli/pkg/artifacts"
	"github.com/mbattoken/mbat-cli/pkg/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	require := require.New(t)
	v := viper.New()
	SetDefaults(v)
	c := NewWithViper(v)

	require.Equal(constants.DefaultRPCEndpoint, c.RPCURL())
	require.Equal(constants.DefaultNetworkName, c.Network())
	require.Equal(artifacts.DefaultDir, c.ArtifactsDir())
	require.Equal(uint32(0), c.MnemonicIndex())
}

func TestEnvOverridesFile(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cli.json")
	require.NoError(os.WriteFile(cfgPath, []byte(`{"rpc-url":"http://file:8545","network":"sepolia"}`), 0o600))

	t.Setenv(constants.EnvRPCURL, "http://env:8545")

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(cfgPath)
	require.NoError(v.ReadInConfig())
	c := NewWithViper(v)

	require.Equal("http://env:8545", c.RPCURL())
	require.Equal("sepolia", c.Network())
}
