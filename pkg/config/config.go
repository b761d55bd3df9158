// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"github.com/mbattoken/mbat-cli/pkg/artifacts"
	"github.com/mbattoken/mbat-cli/pkg/constants"
	"github.com/spf13/viper"
)

type Config struct {
	v *viper.Viper
}

// New returns a Config backed by the global viper instance, which is where
// the root command loads the config file and binds env vars.
func New() *Config {
	return &Config{v: viper.GetViper()}
}

// NewWithViper is used by tests to avoid the global instance.
func NewWithViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// SetDefaults registers the built-in defaults and env bindings.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(constants.ConfigRPCURL, constants.DefaultRPCEndpoint)
	v.SetDefault(constants.ConfigNetwork, constants.DefaultNetworkName)
	v.SetDefault(constants.ConfigArtifactsDir, artifacts.DefaultDir)
	v.SetDefault(constants.ConfigMnemonicIndex, 0)

	_ = v.BindEnv(constants.ConfigRPCURL, constants.EnvRPCURL)
	_ = v.BindEnv(constants.ConfigNetwork, constants.EnvNetwork)
	_ = v.BindEnv(constants.ConfigArtifactsDir, constants.EnvArtifactsDir)
	_ = v.BindEnv(constants.ConfigMnemonicIndex, constants.EnvMnemonicIndex)
}

func (c *Config) RPCURL() string {
	return c.v.GetString(constants.ConfigRPCURL)
}

func (c *Config) Network() string {
	return c.v.GetString(constants.ConfigNetwork)
}

func (c *Config) ArtifactsDir() string {
	return c.v.GetString(constants.ConfigArtifactsDir)
}

func (c *Config) MnemonicIndex() uint32 {
	return c.v.GetUint32(constants.ConfigMnemonicIndex)
}
