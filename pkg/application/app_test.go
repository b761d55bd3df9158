// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package application

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/luxfi/geth/common"
	luxlog "github.com/luxfi/log"
	"github.com/mbattoken/mbat-cli/pkg/constants"
	"github.com/mbattoken/mbat-cli/pkg/contract"
	"github.com/stretchr/testify/require"
)

const network = "development"

func newTestApp(t *testing.T) *App {
	tempDir := t.TempDir()
	app := New()
	app.Setup(tempDir, luxlog.NewNoOpLogger(), nil, nil)
	return app
}

func testDeployment(address string) contract.Deployment {
	return contract.Deployment{
		ContractName:    "MBATToken",
		Address:         common.HexToAddress(address),
		TxHash:          common.HexToHash("0x01"),
		Deployer:        common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		Network:         network,
		ChainID:         "1337",
		ConstructorArgs: []string{"1000000000000000000000000000"},
		BlockNumber:     1,
		GasUsed:         90_000,
		Timestamp:       time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLoadDeploymentsEmpty(t *testing.T) {
	require := require.New(t)
	ap := newTestApp(t)

	deployments, err := ap.LoadDeployments(network)
	require.NoError(err)
	require.Empty(deployments)

	networks, err := ap.GetDeploymentNetworks()
	require.NoError(err)
	require.Empty(networks)
}

func TestAddDeploymentAppends(t *testing.T) {
	require := require.New(t)
	ap := newTestApp(t)

	first := testDeployment("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	second := testDeployment("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
	require.NoError(ap.AddDeployment(first))
	require.NoError(ap.AddDeployment(second))

	deployments, err := ap.LoadDeployments(network)
	require.NoError(err)
	require.Equal([]contract.Deployment{first, second}, deployments)

	latest, found, err := ap.LatestDeployment(network, "MBATToken")
	require.NoError(err)
	require.True(found)
	require.Equal(second, latest)

	_, found, err = ap.LatestDeployment(network, "Other")
	require.NoError(err)
	require.False(found)

	_, err = os.Stat(filepath.Join(ap.GetBaseDir(), constants.DeploymentsDir, network+".json"))
	require.NoError(err)
}

func TestGetDeploymentNetworks(t *testing.T) {
	require := require.New(t)
	ap := newTestApp(t)

	for _, n := range []string{"sepolia", "development"} {
		d := testDeployment("0x5FbDB2315678afecb367f032d93F642f64180aa3")
		d.Network = n
		require.NoError(ap.AddDeployment(d))
	}
	require.NoError(os.WriteFile(filepath.Join(ap.GetDeploymentsDir(), "notes.txt"), []byte("x"), 0o600))

	networks, err := ap.GetDeploymentNetworks()
	require.NoError(err)
	require.Equal([]string{"development", "sepolia"}, networks)
}

func TestInvalidNetworkName(t *testing.T) {
	require := require.New(t)
	ap := newTestApp(t)

	_, err := ap.LoadDeployments("")
	require.ErrorIs(err, constants.ErrNoNetworkName)

	d := testDeployment("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	d.Network = "../escape"
	require.Error(ap.AddDeployment(d))
}

func TestCorruptDeploymentsFile(t *testing.T) {
	require := require.New(t)
	ap := newTestApp(t)

	path := ap.GetDeploymentsPath(network)
	require.NoError(os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(os.WriteFile(path, []byte("{"), 0o600))

	_, err := ap.LoadDeployments(network)
	require.ErrorContains(err, "invalid deployments file")
}
