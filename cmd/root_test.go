// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	luxlog "github.com/luxfi/log"
	"github.com/mbattoken/mbat-cli/pkg/application"
	"github.com/mbattoken/mbat-cli/pkg/config"
	"github.com/mbattoken/mbat-cli/pkg/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func setupConfigTest(t *testing.T) string {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(constants.EnvNetwork, "")
	viper.Reset()
	cfgFile = ""
	t.Cleanup(func() {
		viper.Reset()
		cfgFile = ""
	})
	app = application.New()
	app.Setup(dir, luxlog.NewNoOpLogger(), config.New(), nil)
	return dir
}

func TestInitConfigWithoutFile(t *testing.T) {
	setupConfigTest(t)
	require.NoError(t, initConfig())
	require.Equal(t, constants.DefaultNetworkName, viper.GetString(constants.ConfigNetwork))
}

func TestInitConfigReadsFile(t *testing.T) {
	require := require.New(t)
	dir := setupConfigTest(t)
	cfgFile = filepath.Join(dir, "cli.json")
	require.NoError(os.WriteFile(cfgFile, []byte(`{"network":"sepolia"}`), 0o600))

	require.NoError(initConfig())
	require.Equal("sepolia", viper.GetString(constants.ConfigNetwork))
}

func TestInitConfigRejectsMalformedFile(t *testing.T) {
	require := require.New(t)
	dir := setupConfigTest(t)
	cfgFile = filepath.Join(dir, "cli.json")
	require.NoError(os.WriteFile(cfgFile, []byte(`{"network":`), 0o600))

	require.ErrorContains(initConfig(), "failed reading config file")
}
