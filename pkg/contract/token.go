// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/luxfi/geth/accounts/abi/bind"
	"github.com/luxfi/geth/common"
	"github.com/mbattoken/mbat-cli/pkg/artifacts"
)

var ErrSupplyMismatch = errors.New("deployed token supply does not match")

// TokenInfo is what VerifyTokenSupply reads back from a deployed token.
type TokenInfo struct {
	Address     common.Address
	TotalSupply *big.Int
	Decimals    uint8
}

// GetTokenInfo calls totalSupply() and decimals() on an ERC-20 token.
func GetTokenInfo(
	ctx context.Context,
	caller bind.ContractCaller,
	artifact *artifacts.Artifact,
	address common.Address,
) (*TokenInfo, error) {
	token := bind.NewBoundContract(address, artifact.ABI, caller, nil, nil)

	var supplyResult []interface{}
	if err := token.Call(&bind.CallOpts{Context: ctx}, &supplyResult, "totalSupply"); err != nil {
		return nil, fmt.Errorf("failed to call totalSupply on %s: %w", address.Hex(), err)
	}
	supply, ok := firstResult[*big.Int](supplyResult)
	if !ok {
		return nil, fmt.Errorf("unexpected totalSupply result %v", supplyResult)
	}

	var decimalsResult []interface{}
	if err := token.Call(&bind.CallOpts{Context: ctx}, &decimalsResult, "decimals"); err != nil {
		return nil, fmt.Errorf("failed to call decimals on %s: %w", address.Hex(), err)
	}
	decimals, ok := firstResult[uint8](decimalsResult)
	if !ok {
		return nil, fmt.Errorf("unexpected decimals result %v", decimalsResult)
	}

	return &TokenInfo{
		Address:     address,
		TotalSupply: supply,
		Decimals:    decimals,
	}, nil
}

// VerifyTokenSupply checks that the token at address reports the expected
// total supply and decimals.
func VerifyTokenSupply(
	ctx context.Context,
	caller bind.ContractCaller,
	artifact *artifacts.Artifact,
	address common.Address,
	expectedSupply *big.Int,
	expectedDecimals uint8,
) (*TokenInfo, error) {
	info, err := GetTokenInfo(ctx, caller, artifact, address)
	if err != nil {
		return nil, err
	}
	if info.TotalSupply.Cmp(expectedSupply) != 0 {
		return info, fmt.Errorf("%w: totalSupply is %s, expected %s", ErrSupplyMismatch, info.TotalSupply, expectedSupply)
	}
	if info.Decimals != expectedDecimals {
		return info, fmt.Errorf("%w: decimals is %d, expected %d", ErrSupplyMismatch, info.Decimals, expectedDecimals)
	}
	return info, nil
}

func firstResult[T any](results []interface{}) (T, bool) {
	var zero T
	if len(results) == 0 {
		return zero, false
	}
	v, ok := results[0].(T)
	return v, ok
}
