// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package artifacts resolves compiled contract artifacts by contract name.
// Artifacts use the Truffle build format: one <ContractName>.json file per
// contract holding at least "contractName", "abi" and "bytecode".
package artifacts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/luxfi/geth/accounts/abi"
	"github.com/luxfi/geth/common/hexutil"
)

// DefaultDir is where truffle compile writes its artifacts.
const DefaultDir = "build/contracts"

var (
	ErrArtifactNotFound = errors.New("contract artifact not found")
	ErrEmptyBytecode    = errors.New("artifact has no deployable bytecode")
	ErrUnlinkedBytecode = errors.New("artifact bytecode has unlinked library references")
)

// Registry looks up contract artifacts by name.
type Registry interface {
	Require(name string) (*Artifact, error)
}

type Artifact struct {
	ContractName string
	ABI          abi.ABI
	Bytecode     []byte
}

type artifactFile struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     string          `json:"bytecode"`
}

// Parse decodes a Truffle build artifact.
func Parse(data []byte) (*Artifact, error) {
	var f artifactFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode artifact: %w", err)
	}
	if len(f.ABI) == 0 {
		return nil, fmt.Errorf("artifact %q has no abi", f.ContractName)
	}
	parsedABI, err := abi.JSON(bytes.NewReader(f.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse abi of %q: %w", f.ContractName, err)
	}
	if strings.Contains(f.Bytecode, "__") {
		return nil, fmt.Errorf("%w: %s", ErrUnlinkedBytecode, f.ContractName)
	}
	code := f.Bytecode
	if code != "" && !strings.HasPrefix(code, "0x") {
		code = "0x" + code
	}
	if code == "" || code == "0x" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyBytecode, f.ContractName)
	}
	bytecode, err := hexutil.Decode(code)
	if err != nil {
		return nil, fmt.Errorf("failed to decode bytecode of %q: %w", f.ContractName, err)
	}
	return &Artifact{
		ContractName: f.ContractName,
		ABI:          parsedABI,
		Bytecode:     bytecode,
	}, nil
}

// PackConstructor ABI-encodes constructor arguments.
func (a *Artifact) PackConstructor(args ...interface{}) ([]byte, error) {
	packed, err := a.ABI.Pack("", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack constructor arguments for %s: %w", a.ContractName, err)
	}
	return packed, nil
}

// DeployData returns the contract creation payload: bytecode followed by the
// encoded constructor arguments.
func (a *Artifact) DeployData(args ...interface{}) ([]byte, error) {
	packed, err := a.PackConstructor(args...)
	if err != nil {
		return nil, err
	}
	data := make([]byte, 0, len(a.Bytecode)+len(packed))
	data = append(data, a.Bytecode...)
	return append(data, packed...), nil
}

// DirRegistry reads artifacts from a directory.
type DirRegistry struct {
	dir string
}

func NewDirRegistry(dir string) *DirRegistry {
	if dir == "" {
		dir = DefaultDir
	}
	return &DirRegistry{dir: dir}
}

func (r *DirRegistry) Dir() string {
	return r.dir
}

// Require returns the artifact for the contract called name.
func (r *DirRegistry) Require(name string) (*Artifact, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("invalid contract name %q", name)
	}
	path := filepath.Join(r.dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (looked in %s)", ErrArtifactNotFound, name, r.dir)
		}
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}
	art, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if art.ContractName == "" {
		art.ContractName = name
	}
	if art.ContractName != name {
		return nil, fmt.Errorf("artifact %s declares contract %q, expected %q", path, art.ContractName, name)
	}
	return art, nil
}
