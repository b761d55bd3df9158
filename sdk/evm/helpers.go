// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/common/hexutil"
	"github.com/luxfi/geth/core/types"
)

// transform a tx operation error into an error that contains:
// - the [err] itself
// - the [tx] hash (or information on the tx not being submitted)
// - another descriptive [msg], together with formated [args]
func TransactionError(tx *types.Transaction, err error, msg string, args ...interface{}) error {
	msgSuffix := ": %w"
	if tx != nil {
		msgSuffix += fmt.Sprintf(" (txHash=%s)", tx.Hash().String())
	} else {
		msgSuffix += " (tx failed to be submitted)"
	}
	args = append(args, err)
	return fmt.Errorf(msg+msgSuffix, args...)
}

// TxDump renders [tx] and its calldata as hex, so it can be issued or
// inspected with external tools.
func TxDump(description string, tx *types.Transaction) (string, error) {
	if tx == nil {
		return "", errors.New("can't dump nil tx")
	}
	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("failure marshalling raw evm tx: %w", err)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", description)
	fmt.Fprintf(&sb, "  raw tx:   %s\n", hexutil.Encode(raw))
	fmt.Fprintf(&sb, "  calldata: %s (%d bytes)\n", hexutil.Encode(tx.Data()), len(tx.Data()))
	return sb.String(), nil
}

// PrivateKeyToAddress returns the account controlled by [pk].
func PrivateKeyToAddress(pk *ecdsa.PrivateKey) common.Address {
	return common.Address(crypto.PubkeyToAddress(pk.PublicKey))
}

// CalculateTxFee returns gasUsed * gasPrice in wei. A nil price counts as zero.
func CalculateTxFee(gasUsed uint64, gasPrice *big.Int) *big.Int {
	if gasPrice == nil {
		return new(big.Int)
	}
	return new(big.Int).Mul(new(big.Int).SetUint64(gasUsed), gasPrice)
}
