// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialSupplyIsExact(t *testing.T) {
	require := require.New(t)

	expected, ok := new(big.Int).SetString("1000000000000000000000000000", 10)
	require.True(ok)
	require.Equal(0, expected.Cmp(InitialSupply()))
	require.Equal("1000000000000000000000000000", InitialSupply().String())

	// 10^27 does not fit in a uint64
	require.False(InitialSupply().IsUint64())
}

func TestInitialSupplyIsFreshValue(t *testing.T) {
	require := require.New(t)

	s := InitialSupply()
	s.SetInt64(1)
	require.Equal("1000000000000000000000000000", InitialSupply().String())
}

func TestUnit(t *testing.T) {
	require.Equal(t, "1000000000000000000", Unit().String())
}

func TestFormatUnits(t *testing.T) {
	half := new(big.Int).Div(Unit(), big.NewInt(2))
	tests := []struct {
		name     string
		amount   *big.Int
		expected string
	}{
		{"nil", nil, "0"},
		{"zero", big.NewInt(0), "0"},
		{"initial supply", InitialSupply(), "1,000,000,000"},
		{"one token", Unit(), "1"},
		{"half token", half, "0.5"},
		{"one wei", big.NewInt(1), "0.000000000000000001"},
		{"negative", new(big.Int).Neg(Unit()), "-1"},
		{
			"beyond uint64 whole tokens",
			new(big.Int).Mul(new(big.Int).Exp(big.NewInt(10), big.NewInt(21), nil), Unit()),
			"1,000,000,000,000,000,000,000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FormatUnits(tt.amount))
		})
	}
}
