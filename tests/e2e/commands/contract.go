// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"github.com/onsi/gomega"
)

func DeployMBATContract(homeDir, artifactsDir, rpc, network, key string) string {
	output, err := run(homeDir,
		ContractCMD,
		"deploy",
		"mbat",
		"--artifacts", artifactsDir,
		"--rpc", rpc,
		"--network", network,
		"--private-key", key,
		"--verify",
	)
	gomega.Expect(err).Should(gomega.BeNil())
	return output
}

func ListDeployments(homeDir, network string) string {
	output, err := run(homeDir, ContractCMD, "deployments", "--network", network)
	gomega.Expect(err).Should(gomega.BeNil())
	return output
}

func ShowSupply(homeDir string) string {
	output, err := run(homeDir, ContractCMD, "supply")
	gomega.Expect(err).Should(gomega.BeNil())
	return output
}
