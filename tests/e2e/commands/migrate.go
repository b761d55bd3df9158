// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"github.com/onsi/gomega"
)

func MigrateList(homeDir string) string {
	output, err := run(homeDir, MigrateCmd, "--list")
	gomega.Expect(err).Should(gomega.BeNil())
	return output
}

func MigrateDryRun(homeDir, artifactsDir string) string {
	output, err := run(homeDir, MigrateCmd, "--dry-run", "--artifacts", artifactsDir)
	gomega.Expect(err).Should(gomega.BeNil())
	return output
}

func MigrateWithOutput(homeDir, artifactsDir, rpc, key string, extraArgs ...string) (string, error) {
	args := []string{
		MigrateCmd,
		"--artifacts", artifactsDir,
		"--rpc", rpc,
		"--private-key", key,
	}
	return run(homeDir, append(args, extraArgs...)...)
}
