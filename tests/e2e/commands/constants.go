// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

const (
	CLIBinary   = "./bin/mbat"
	MigrateCmd  = "migrate"
	ContractCMD = "contract"
)
