// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrNoRPCEndpoint = errors.New("\n\nNo RPC endpoint configured. To resolve this:\n- Pass --rpc <url>.\n- Or set MBAT_RPC_URL, or rpc-url in ~/.mbat/cli.json.\n") //nolint:stylecheck
	ErrNoNetworkName = errors.New("network name cannot be empty")
)
