// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	luxlog "github.com/luxfi/log"
	"github.com/mbattoken/mbat-cli/pkg/config"
	"github.com/mbattoken/mbat-cli/pkg/constants"
	"github.com/mbattoken/mbat-cli/pkg/contract"
	"github.com/mbattoken/mbat-cli/pkg/prompts"
	"github.com/mbattoken/mbat-cli/pkg/utils"
)

type App struct {
	Log     luxlog.Logger
	baseDir string
	Conf    *config.Config
	Prompt  prompts.Prompter
}

func New() *App {
	return &App{}
}

func (app *App) Setup(baseDir string, log luxlog.Logger, conf *config.Config, prompt prompts.Prompter) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
}

func (app *App) GetBaseDir() string {
	return app.baseDir
}

func (app *App) GetDeploymentsDir() string {
	return filepath.Join(app.baseDir, constants.DeploymentsDir)
}

func (app *App) GetDeploymentsPath(network string) string {
	return filepath.Join(app.GetDeploymentsDir(), network+constants.DeploymentsFileSuffix)
}

// LoadDeployments returns the recorded deployments for network, oldest
// first. A network without records yields an empty list.
func (app *App) LoadDeployments(network string) ([]contract.Deployment, error) {
	if err := ValidateNetworkName(network); err != nil {
		return nil, err
	}
	var deployments []contract.Deployment
	path := app.GetDeploymentsPath(network)
	if err := utils.ReadJSON(path, &deployments); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []contract.Deployment{}, nil
		}
		return nil, fmt.Errorf("invalid deployments file %s: %w", path, err)
	}
	return deployments, nil
}

// AddDeployment appends d to the records of d.Network. Records are never
// replaced: deploying the same contract twice yields two entries.
func (app *App) AddDeployment(d contract.Deployment) error {
	deployments, err := app.LoadDeployments(d.Network)
	if err != nil {
		return err
	}
	deployments = append(deployments, d)
	return utils.WriteJSON(app.GetDeploymentsPath(d.Network), deployments, constants.WriteReadReadPerms)
}

// LatestDeployment returns the most recent record of contractName on network.
func (app *App) LatestDeployment(network string, contractName string) (contract.Deployment, bool, error) {
	deployments, err := app.LoadDeployments(network)
	if err != nil {
		return contract.Deployment{}, false, err
	}
	for i := len(deployments) - 1; i >= 0; i-- {
		if deployments[i].ContractName == contractName {
			return deployments[i], true, nil
		}
	}
	return contract.Deployment{}, false, nil
}

// GetDeploymentNetworks lists networks that have deployment records.
func (app *App) GetDeploymentNetworks() ([]string, error) {
	matches, err := os.ReadDir(app.GetDeploymentsDir())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, m := range matches {
		if m.IsDir() || !strings.HasSuffix(m.Name(), constants.DeploymentsFileSuffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(m.Name(), constants.DeploymentsFileSuffix))
	}
	sort.Strings(names)
	return names, nil
}

// ValidateNetworkName rejects names that cannot be used as a records file name.
func ValidateNetworkName(network string) error {
	if network == "" {
		return constants.ErrNoNetworkName
	}
	if strings.ContainsAny(network, `/\`) || network == "." || network == ".." {
		return fmt.Errorf("invalid network name %q", network)
	}
	return nil
}
