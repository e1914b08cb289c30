package types

import (
	"github.com/holiman/uint256"
)

type Account struct {
	Address string       `json:"address"`
	Balance *uint256.Int `json:"balance"`
}
