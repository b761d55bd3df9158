// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package contract deploys compiled contract artifacts and inspects the
// deployed token.
package contract

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luxfi/geth/common"
	"github.com/mbattoken/mbat-cli/pkg/artifacts"
)

var (
	ErrDeploymentFailed = errors.New("contract deployment failed")
	ErrNoCodeAtAddress  = errors.New("no contract code at deployed address")
)

// Deployer instantiates a contract artifact with the given constructor
// arguments. Implementations do not retry.
type Deployer interface {
	Deploy(ctx context.Context, artifact *artifacts.Artifact, args ...interface{}) (*Deployment, error)
}

// Deployment describes one contract creation.
type Deployment struct {
	ContractName    string         `json:"contractName"`
	Address         common.Address `json:"address"`
	TxHash          common.Hash    `json:"transactionHash"`
	Deployer        common.Address `json:"deployer"`
	Network         string         `json:"network"`
	ChainID         string         `json:"chainId,omitempty"`
	ConstructorArgs []string       `json:"constructorArgs"`
	BlockNumber     uint64         `json:"blockNumber,omitempty"`
	GasUsed         uint64         `json:"gasUsed,omitempty"`
	// Fee is gasUsed times the effective gas price, in wei.
	Fee             string         `json:"fee,omitempty"`
	DryRun          bool           `json:"dryRun,omitempty"`
	Timestamp       time.Time      `json:"timestamp"`
}

func formatArgs(args []interface{}) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = fmt.Sprint(arg)
	}
	return out
}
