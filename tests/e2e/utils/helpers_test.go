// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAddresses(t *testing.T) {
	out := "Token Address: 0x5FbDB2315678afecb367f032d93F642f64180aa3\nfrom 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	require.Equal(t, []string{
		"0x5FbDB2315678afecb367f032d93F642f64180aa3",
		"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
	}, ParseAddresses(out))
	require.Empty(t, ParseAddresses("nothing here"))

	txHash := "0x" + strings.Repeat("ab", 32)
	require.Empty(t, ParseAddresses("Tx Hash: "+txHash))
}

func TestParseTokenAddress(t *testing.T) {
	out := "\nToken Address: 0x5FbDB2315678afecb367f032d93F642f64180aa3\n\nMBATToken Contract Successfully Deployed!"
	require.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", ParseTokenAddress(out))
	require.Empty(t, ParseTokenAddress("no address"))
}

func TestRepoRoot(t *testing.T) {
	_, err := os.Stat(filepath.Join(RepoRoot(), "go.mod"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(ArtifactsDir(), "MBATToken.json"))
	require.NoError(t, err)
}

func TestE2EKey(t *testing.T) {
	t.Setenv(EnvE2EKey, "")
	require.Equal(t, DefaultDevKey, E2EKey())
	t.Setenv(EnvE2EKey, "abc")
	require.Equal(t, "abc", E2EKey())
}
