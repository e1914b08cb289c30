package utils

import (
	"github.com/holiman/uint256"
)

// Uint256ToString encodes amount as a decimal string for storage and wire use
func Uint256ToString(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return v.Dec()
}

// Uint256FromString decodes a decimal string produced by Uint256ToString.
// Invalid input decodes to zero, consistent with how absent balances read.
func Uint256FromString(s string) *uint256.Int {
	if s == "" {
		return uint256.NewInt(0)
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return uint256.NewInt(0)
	}
	return v
}
