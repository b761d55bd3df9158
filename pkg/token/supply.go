// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"math/big"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// Name is the artifact name of the token contract.
	Name   = "MBATToken"
	Symbol = "MBAT"

	Decimals = 18

	// WholeTokenSupply is the initial supply in whole tokens.
	WholeTokenSupply = 1_000_000_000
)

// Unit returns 10^Decimals, the number of base units in one whole token.
func Unit() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)
}

// InitialSupply returns the supply minted to the deployer at construction,
// in base units: 1,000,000,000 * 10^18. A fresh value is returned on every
// call.
func InitialSupply() *big.Int {
	return new(big.Int).Mul(big.NewInt(WholeTokenSupply), Unit())
}

// FormatUnits renders a base unit amount as whole tokens with thousands
// separators, e.g. "1,000,000,000" or "0.5".
func FormatUnits(amount *big.Int) string {
	if amount == nil {
		return "0"
	}
	sign := ""
	abs := new(big.Int).Set(amount)
	if abs.Sign() < 0 {
		sign = "-"
		abs.Neg(abs)
	}
	whole, frac := new(big.Int).QuoRem(abs, Unit(), new(big.Int))

	p := message.NewPrinter(language.English)
	out := sign + groupDigits(p, whole)
	if frac.Sign() == 0 {
		return out
	}
	fracStr := frac.String()
	fracStr = strings.Repeat("0", Decimals-len(fracStr)) + fracStr
	return out + "." + strings.TrimRight(fracStr, "0")
}

func groupDigits(p *message.Printer, n *big.Int) string {
	if n.IsUint64() {
		return p.Sprintf("%d", n.Uint64())
	}
	// message.Printer does not group big.Int, do it by hand
	s := n.String()
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
