// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/go-bip32"
	"github.com/luxfi/go-bip39"
	"github.com/mbattoken/mbat-cli/pkg/constants"
	"github.com/mbattoken/mbat-cli/pkg/prompts"
	"github.com/mbattoken/mbat-cli/sdk/evm"
)

var (
	ErrNoKey             = errors.New("no deployer key provided: use --private-key, MBAT_PRIVATE_KEY, or MBAT_MNEMONIC")
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidMnemonic   = errors.New("invalid mnemonic phrase")
)

// EthCoinType is the BIP-44 coin type used by EVM wallets (60')
const EthCoinType = 60

// Source names where the deployer key came from, for display.
type Source string

const (
	SourceFlag     Source = "flag"
	SourceEnvKey   Source = constants.EnvPrivateKey
	SourceMnemonic Source = constants.EnvMnemonic
	SourcePrompt   Source = "prompt"
)

type Options struct {
	// PrivateKey is the --private-key flag value, hex with optional 0x.
	PrivateKey string
	// MnemonicIndex selects m/44'/60'/0'/0/{index} when deriving from MBAT_MNEMONIC.
	MnemonicIndex uint32
	// Prompter is asked last; nil disables prompting.
	Prompter prompts.Prompter
}

type Deployer struct {
	PrivateKey *ecdsa.PrivateKey
	Address    common.Address
	Source     Source
}

// Load resolves the deployer key.
// Priority: --private-key > MBAT_PRIVATE_KEY > MBAT_MNEMONIC > prompt
func Load(opts Options) (*Deployer, error) {
	if opts.PrivateKey != "" {
		return fromHex(opts.PrivateKey, SourceFlag)
	}
	if envKey := os.Getenv(constants.EnvPrivateKey); envKey != "" {
		return fromHex(envKey, SourceEnvKey)
	}
	if mnemonic := strings.TrimSpace(os.Getenv(constants.EnvMnemonic)); mnemonic != "" {
		pk, err := FromMnemonic(mnemonic, opts.MnemonicIndex)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", constants.EnvMnemonic, err)
		}
		return newDeployer(pk, SourceMnemonic), nil
	}
	if opts.Prompter == nil {
		return nil, ErrNoKey
	}
	hexKey, err := opts.Prompter.CapturePrivateKey("Deployer private key (pays the deploy fees and receives the supply)")
	if err != nil {
		if errors.Is(err, prompts.ErrNonInteractive) {
			return nil, fmt.Errorf("%w: %w", ErrNoKey, err)
		}
		return nil, err
	}
	return fromHex(hexKey, SourcePrompt)
}

// FromHex parses a hex encoded secp256k1 private key, with or without 0x.
func FromHex(hexKey string) (*ecdsa.PrivateKey, error) {
	pk, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return pk, nil
}

// FromMnemonic derives the key at m/44'/60'/0'/0/{index} from a BIP-39 mnemonic.
func FromMnemonic(mnemonic string, index uint32) (*ecdsa.PrivateKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	seed := bip39.NewSeed(mnemonic, "")

	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}

	path := []uint32{
		bip32.FirstHardenedChild + 44,
		bip32.FirstHardenedChild + EthCoinType,
		bip32.FirstHardenedChild + 0,
		0,
		index,
	}
	k := masterKey
	for depth, child := range path {
		k, err = k.NewChildKey(child)
		if err != nil {
			return nil, fmt.Errorf("failed to derive key at depth %d: %w", depth+1, err)
		}
	}

	pk, err := crypto.ToECDSA(k.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return pk, nil
}

func fromHex(hexKey string, source Source) (*Deployer, error) {
	pk, err := FromHex(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return newDeployer(pk, source), nil
}

func newDeployer(pk *ecdsa.PrivateKey, source Source) *Deployer {
	return &Deployer{
		PrivateKey: pk,
		Address:    evm.PrivateKeyToAddress(pk),
		Source:     source,
	}
}
