// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
)

const (
	// EnvE2ERPC points the network specs at a dev node, e.g. anvil or ganache
	EnvE2ERPC = "MBAT_E2E_RPC_URL"
	// EnvE2EKey overrides the funded deployer key of the dev node
	EnvE2EKey = "MBAT_E2E_PRIVATE_KEY"

	// well known first account of the default dev mnemonic
	DefaultDevKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
)

var (
	addressRegex      = regexp.MustCompile(`\b0x[0-9a-fA-F]{40}\b`)
	tokenAddressRegex = regexp.MustCompile(`Token Address: (0x[0-9a-fA-F]{40})`)
)

// RepoRoot is the module root, so relative paths work from any test package.
func RepoRoot() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..")
}

func CLIPath(rel string) string {
	return filepath.Join(RepoRoot(), rel)
}

// ArtifactsDir holds the compiled artifacts the e2e specs deploy.
func ArtifactsDir() string {
	return filepath.Join(RepoRoot(), "pkg", "artifacts", "testdata")
}

func CLIBinaryExists(rel string) bool {
	_, err := os.Stat(CLIPath(rel))
	return err == nil
}

func E2ERPC() string {
	return os.Getenv(EnvE2ERPC)
}

func E2EKey() string {
	if k := os.Getenv(EnvE2EKey); k != "" {
		return k
	}
	return DefaultDevKey
}

// ParseAddresses returns every hex address found in a command output.
func ParseAddresses(output string) []string {
	return addressRegex.FindAllString(output, -1)
}

// ParseTokenAddress returns the address printed by contract deploy mbat.
func ParseTokenAddress(output string) string {
	m := tokenAddressRegex.FindStringSubmatch(output)
	if m == nil {
		return ""
	}
	return m[1]
}

func PrintStdErr(err error) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		fmt.Println(string(exitErr.Stderr))
	}
}
