// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"context"
	"fmt"

	"github.com/mbattoken/mbat-cli/pkg/artifacts"
)

// Store persists deployment records.
type Store interface {
	AddDeployment(d Deployment) error
}

// RecordingDeployer persists every successful, non dry-run deployment
// made through the wrapped Deployer.
type RecordingDeployer struct {
	Deployer
	store Store
}

func NewRecordingDeployer(d Deployer, store Store) *RecordingDeployer {
	return &RecordingDeployer{
		Deployer: d,
		store:    store,
	}
}

func (r *RecordingDeployer) Deploy(
	ctx context.Context,
	artifact *artifacts.Artifact,
	args ...interface{},
) (*Deployment, error) {
	deployment, err := r.Deployer.Deploy(ctx, artifact, args...)
	if err != nil {
		return nil, err
	}
	if deployment.DryRun {
		return deployment, nil
	}
	if err := r.store.AddDeployment(*deployment); err != nil {
		// the contract is already on chain, keep its address in the error
		return deployment, fmt.Errorf("%s deployed at %s but the record could not be saved: %w",
			deployment.ContractName, deployment.Address.Hex(), err)
	}
	return deployment, nil
}
