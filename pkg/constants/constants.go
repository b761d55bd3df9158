// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	WriteReadReadPerms = 0o644

	BaseDirName    = ".mbat"
	LogDir         = "logs"
	DeploymentsDir = "deployments"

	DeploymentsFileSuffix = ".json"

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	RequestTimeout    = 3 * time.Minute
	APIRequestTimeout = 30 * time.Second

	// a mined deployment slower than this prints a warning
	DeployWarnAfter   = 30 * time.Second
	StepCheckInterval = time.Second

	// GasLimitMultiplier pads eth_estimateGas for contract creation
	GasLimitMultiplier = 1.2

	DefaultNetworkName = "development"
	DefaultRPCEndpoint = "http://127.0.0.1:8545"

	DefaultConfigFileName = "cli"
	DefaultConfigFileType = "json"

	// config keys
	ConfigRPCURL        = "rpc-url"
	ConfigNetwork       = "network"
	ConfigArtifactsDir  = "artifacts-dir"
	ConfigMnemonicIndex = "mnemonic-index"

	// env vars
	EnvRPCURL        = "MBAT_RPC_URL"
	EnvNetwork       = "MBAT_NETWORK"
	EnvArtifactsDir  = "MBAT_ARTIFACTS_DIR"
	EnvPrivateKey    = "MBAT_PRIVATE_KEY"
	EnvMnemonic      = "MBAT_MNEMONIC"
	EnvMnemonicIndex = "MBAT_MNEMONIC_INDEX"

	CLIName = "mbat"
)
