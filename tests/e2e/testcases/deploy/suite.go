// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploy

import (
	"github.com/mbattoken/mbat-cli/tests/e2e/commands"
	"github.com/mbattoken/mbat-cli/tests/e2e/utils"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

const network = "e2e"

var _ = ginkgo.Describe("[MBAT deploy]", ginkgo.Ordered, func() {
	var homeDir string

	ginkgo.BeforeEach(func() {
		if !utils.CLIBinaryExists(commands.CLIBinary) {
			ginkgo.Skip("mbat binary not built, run: go build -o bin/mbat .")
		}
		homeDir = ginkgo.GinkgoT().TempDir()
	})

	ginkgo.It("lists the MBAT migration", func() {
		out := commands.MigrateList(homeDir)
		gomega.Expect(out).Should(gomega.ContainSubstring("2_deploy_mbat_token"))
	})

	ginkgo.It("prints the initial supply", func() {
		out := commands.ShowSupply(homeDir)
		gomega.Expect(out).Should(gomega.ContainSubstring("1000000000000000000000000000"))
		gomega.Expect(out).Should(gomega.ContainSubstring("1,000,000,000"))
	})

	ginkgo.It("dry runs without a node", func() {
		out := commands.MigrateDryRun(homeDir, utils.ArtifactsDir())
		gomega.Expect(out).Should(gomega.ContainSubstring("MBATToken"))
		gomega.Expect(out).Should(gomega.ContainSubstring("1000000000000000000000000000"))
		gomega.Expect(commands.ListDeployments(homeDir, "development")).
			Should(gomega.ContainSubstring("No deployments recorded"))
	})

	ginkgo.It("deploys a new token on every run", func() {
		rpc := utils.E2ERPC()
		if rpc == "" {
			ginkgo.Skip(utils.EnvE2ERPC + " not set")
		}
		first := commands.DeployMBATContract(homeDir, utils.ArtifactsDir(), rpc, network, utils.E2EKey())
		second := commands.DeployMBATContract(homeDir, utils.ArtifactsDir(), rpc, network, utils.E2EKey())
		gomega.Expect(first).Should(gomega.ContainSubstring("Successfully Deployed"))
		gomega.Expect(second).Should(gomega.ContainSubstring("Successfully Deployed"))

		firstAddr := utils.ParseTokenAddress(first)
		secondAddr := utils.ParseTokenAddress(second)
		gomega.Expect(firstAddr).ShouldNot(gomega.BeEmpty())
		gomega.Expect(secondAddr).ShouldNot(gomega.Equal(firstAddr))

		listed := commands.ListDeployments(homeDir, network)
		gomega.Expect(listed).Should(gomega.ContainSubstring(firstAddr))
		gomega.Expect(listed).Should(gomega.ContainSubstring(secondAddr))
	})

	ginkgo.It("fails without a key in non-interactive mode", func() {
		rpc := utils.E2ERPC()
		if rpc == "" {
			ginkgo.Skip(utils.EnvE2ERPC + " not set")
		}
		out, err := commands.MigrateWithOutput(homeDir, utils.ArtifactsDir(), rpc, "")
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("no deployer key"))
	})
})
