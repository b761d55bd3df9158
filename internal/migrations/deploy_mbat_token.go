// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package migrations

import (
	"context"
	"fmt"

	"github.com/mbattoken/mbat-cli/pkg/token"
	"github.com/mbattoken/mbat-cli/pkg/ux"
)

// deployMBATToken deploys MBATToken with the full initial supply as its only
// constructor argument. Every invocation is a new deployment.
func deployMBATToken(ctx context.Context, env *Environment, runner *migrationRunner) error {
	runner.printMigrationMessage()

	artifact, err := env.Artifacts.Require(token.Name)
	if err != nil {
		return err
	}

	initialSupply := token.InitialSupply()
	deployment, err := env.Deployer.Deploy(ctx, artifact, initialSupply)
	// a deployment may come back with an error when it landed on chain but
	// could not be recorded
	runner.recordDeployment(deployment)
	if err != nil {
		return fmt.Errorf("failed to deploy %s: %w", token.Name, err)
	}

	ux.Logger.Info("%s deployed at %s with initial supply %s", token.Name, deployment.Address.Hex(), initialSupply)
	return nil
}
