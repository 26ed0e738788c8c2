package domain

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// AmountFromBigInt converts a ledger integer into a decimal amount, treating nil as zero
func AmountFromBigInt(v *big.Int) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, 0)
}

// SafeParse parses a string into a decimal, returning zero for invalid or empty input
func SafeParse(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}
