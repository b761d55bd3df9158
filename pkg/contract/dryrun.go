// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/core/types"
	"github.com/mbattoken/mbat-cli/pkg/artifacts"
)

// DeployRequest is what a migration asked the orchestrator to deploy.
type DeployRequest struct {
	Artifact *artifacts.Artifact
	Args     []interface{}
	Data     []byte
}

// UnsignedTx is the creation tx the request would send, without nonce,
// gas or signature.
func (r DeployRequest) UnsignedTx() *types.Transaction {
	return types.NewTx(&types.LegacyTx{
		Value: new(big.Int),
		Data:  r.Data,
	})
}

// DryRunDeployer validates and captures deploy requests without sending
// anything to a network.
type DryRunDeployer struct {
	from    common.Address
	network string

	mu       sync.Mutex
	requests []DeployRequest
}

func NewDryRunDeployer(from common.Address, network string) *DryRunDeployer {
	return &DryRunDeployer{
		from:    from,
		network: network,
	}
}

func (d *DryRunDeployer) Deploy(
	_ context.Context,
	artifact *artifacts.Artifact,
	args ...interface{},
) (*Deployment, error) {
	data, err := artifact.DeployData(args...)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	d.requests = append(d.requests, DeployRequest{
		Artifact: artifact,
		Args:     args,
		Data:     data,
	})
	d.mu.Unlock()
	return &Deployment{
		ContractName:    artifact.ContractName,
		Deployer:        d.from,
		Network:         d.network,
		ConstructorArgs: formatArgs(args),
		DryRun:          true,
		Timestamp:       time.Now().UTC(),
	}, nil
}

// Requests returns the captured requests in call order.
func (d *DryRunDeployer) Requests() []DeployRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]DeployRequest, len(d.requests))
	copy(out, d.requests)
	return out
}
