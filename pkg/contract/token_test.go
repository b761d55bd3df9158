// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"testing"

	ethereum "github.com/luxfi/geth"
	"github.com/luxfi/geth/accounts/abi"
	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
)

type fakeCaller struct {
	abi      abi.ABI
	supply   *big.Int
	decimals uint8
}

func (*fakeCaller) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x60, 0x80}, nil
}

func (f *fakeCaller) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	for name, method := range f.abi.Methods {
		if !bytes.Equal(method.ID, call.Data[:4]) {
			continue
		}
		switch name {
		case "totalSupply":
			return method.Outputs.Pack(f.supply)
		case "decimals":
			return method.Outputs.Pack(f.decimals)
		}
	}
	return nil, fmt.Errorf("unexpected call %x", call.Data)
}

func TestVerifyTokenSupply(t *testing.T) {
	require := require.New(t)
	art := loadTokenArtifact(t)

	caller := &fakeCaller{abi: art.ABI, supply: testSupply, decimals: 18}
	info, err := VerifyTokenSupply(context.Background(), caller, art, deployedAddr, testSupply, 18)
	require.NoError(err)
	require.Equal(deployedAddr, info.Address)
	require.Equal(0, info.TotalSupply.Cmp(testSupply))
	require.Equal(uint8(18), info.Decimals)

	caller.supply = big.NewInt(1)
	_, err = VerifyTokenSupply(context.Background(), caller, art, deployedAddr, testSupply, 18)
	require.ErrorIs(err, ErrSupplyMismatch)

	caller.supply = testSupply
	caller.decimals = 6
	_, err = VerifyTokenSupply(context.Background(), caller, art, deployedAddr, testSupply, 18)
	require.ErrorIs(err, ErrSupplyMismatch)
}
