// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"sync"
	"time"

	ethereum "github.com/luxfi/geth"
	"github.com/luxfi/geth/accounts/abi/bind"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/core/types"
	"github.com/luxfi/geth/ethclient"
	luxlog "github.com/luxfi/log"
	"github.com/mbattoken/mbat-cli/pkg/artifacts"
	"github.com/mbattoken/mbat-cli/pkg/constants"
	"github.com/mbattoken/mbat-cli/pkg/ux"
	"github.com/mbattoken/mbat-cli/sdk/evm"
	"go.uber.org/zap"
)

// Client is the subset of ethclient.Client used to deploy contracts.
type Client interface {
	ChainID(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
}

var _ Client = (*ethclient.Client)(nil)

// Dial connects to an EVM JSON-RPC endpoint.
func Dial(ctx context.Context, rpcURL string) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", rpcURL, err)
	}
	return client, nil
}

// EVMDeployer signs and submits contract creation transactions with a
// single key and waits for them to be mined.
type EVMDeployer struct {
	client  Client
	key     *ecdsa.PrivateKey
	from    common.Address
	network string
	log     luxlog.Logger
	tracker *ux.StepTracker
}

func NewEVMDeployer(client Client, key *ecdsa.PrivateKey, network string, log luxlog.Logger) *EVMDeployer {
	if log == nil {
		log = luxlog.NewNoOpLogger()
	}
	return &EVMDeployer{
		client:  client,
		key:     key,
		from:    evm.PrivateKeyToAddress(key),
		network: network,
		log:     log,
	}
}

func (d *EVMDeployer) From() common.Address {
	return d.from
}

// WithStepTracker reports each send and wait for mining on tracker.
func (d *EVMDeployer) WithStepTracker(tracker *ux.StepTracker) *EVMDeployer {
	d.tracker = tracker
	return d
}

func (d *EVMDeployer) Deploy(
	ctx context.Context,
	artifact *artifacts.Artifact,
	args ...interface{},
) (*Deployment, error) {
	data, err := artifact.DeployData(args...)
	if err != nil {
		return nil, err
	}

	chainID, err := d.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	nonce, err := d.client.PendingNonceAt(ctx, d.from)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce for %s: %w", d.from.Hex(), err)
	}
	estimated, err := d.client.EstimateGas(ctx, ethereum.CallMsg{
		From: d.from,
		Data: data,
	})
	if err != nil {
		return nil, evm.TransactionError(nil, err, "failure estimating gas for %s deployment", artifact.ContractName)
	}
	gas := uint64(float64(estimated) * constants.GasLimitMultiplier)

	tx, err := d.buildSignedTx(ctx, chainID, nonce, gas, data)
	if err != nil {
		return nil, err
	}
	d.log.Info("sending contract creation",
		zap.String("contract", artifact.ContractName),
		zap.Stringer("from", d.from),
		zap.Uint64("nonce", nonce),
		zap.Uint64("gas", gas),
		zap.Stringer("txHash", tx.Hash()),
	)
	if d.tracker != nil {
		d.tracker.Start("Deploying " + artifact.ContractName)
	}
	receipt, err := d.sendAndWait(ctx, artifact.ContractName, tx)
	if err == nil {
		err = d.checkDeployed(ctx, artifact.ContractName, tx, receipt)
	}
	if d.tracker != nil {
		if err != nil {
			d.tracker.Failed(err.Error())
		} else {
			d.tracker.Complete("tx " + tx.Hash().Hex())
		}
	}
	if err != nil {
		return nil, err
	}

	deployment := &Deployment{
		ContractName:    artifact.ContractName,
		Address:         receipt.ContractAddress,
		TxHash:          tx.Hash(),
		Deployer:        d.from,
		Network:         d.network,
		ChainID:         chainID.String(),
		ConstructorArgs: formatArgs(args),
		GasUsed:         receipt.GasUsed,
		Fee:             evm.CalculateTxFee(receipt.GasUsed, receipt.EffectiveGasPrice).String(),
		Timestamp:       time.Now().UTC(),
	}
	if receipt.BlockNumber != nil {
		deployment.BlockNumber = receipt.BlockNumber.Uint64()
	}
	d.log.Info("contract deployed",
		zap.String("contract", artifact.ContractName),
		zap.Stringer("address", deployment.Address),
		zap.Uint64("gasUsed", receipt.GasUsed),
	)
	return deployment, nil
}

func (d *EVMDeployer) sendAndWait(ctx context.Context, contractName string, tx *types.Transaction) (*types.Receipt, error) {
	if err := d.client.SendTransaction(ctx, tx); err != nil {
		return nil, evm.TransactionError(nil, err, "failure sending %s deployment", contractName)
	}

	if d.tracker != nil {
		done := make(chan struct{})
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticker := time.NewTicker(constants.StepCheckInterval)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					d.tracker.CheckWarn()
				}
			}
		}()
		defer func() {
			close(done)
			wg.Wait()
		}()
	}

	receipt, err := bind.WaitMined(ctx, d.client, tx)
	if err != nil {
		return nil, evm.TransactionError(tx, err, "failure waiting for %s deployment", contractName)
	}
	return receipt, nil
}

// checkDeployed fails unless receipt shows a successful creation with code
// at the new address.
func (d *EVMDeployer) checkDeployed(ctx context.Context, contractName string, tx *types.Transaction, receipt *types.Receipt) error {
	if receipt.Status != types.ReceiptStatusSuccessful {
		return evm.TransactionError(tx, ErrDeploymentFailed, "%s deployment reverted", contractName)
	}
	if receipt.ContractAddress == (common.Address{}) {
		return evm.TransactionError(tx, ErrDeploymentFailed, "%s deployment receipt has no contract address", contractName)
	}
	code, err := d.client.CodeAt(ctx, receipt.ContractAddress, nil)
	if err != nil {
		return evm.TransactionError(tx, err, "failure reading %s code", contractName)
	}
	if len(code) == 0 {
		return evm.TransactionError(tx, ErrNoCodeAtAddress, "%s at %s", contractName, receipt.ContractAddress.Hex())
	}
	return nil
}

// buildSignedTx creates a dynamic fee creation tx when the chain reports a
// base fee, and a legacy one otherwise.
func (d *EVMDeployer) buildSignedTx(
	ctx context.Context,
	chainID *big.Int,
	nonce uint64,
	gas uint64,
	data []byte,
) (*types.Transaction, error) {
	header, err := d.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest header: %w", err)
	}

	var tx *types.Transaction
	if header.BaseFee == nil {
		gasPrice, err := d.client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest gas price: %w", err)
		}
		tx = types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			Value:    new(big.Int),
			Gas:      gas,
			GasPrice: gasPrice,
			Data:     data,
		})
	} else {
		tipCap, err := d.client.SuggestGasTipCap(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest gas tip cap: %w", err)
		}
		feeCap := new(big.Int).Add(new(big.Int).Mul(header.BaseFee, big.NewInt(2)), tipCap)
		tx = types.NewTx(&types.DynamicFeeTx{
			ChainID:   chainID,
			Nonce:     nonce,
			Value:     new(big.Int),
			Gas:       gas,
			GasTipCap: tipCap,
			GasFeeCap: feeCap,
			Data:      data,
		})
	}
	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), d.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign deployment tx: %w", err)
	}
	return signedTx, nil
}
