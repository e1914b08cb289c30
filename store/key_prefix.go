package store

// Declare database key prefix for objects
const (
	PrefixAccount = "account:"

	PrefixState         = "state:"
	StateKeyOwner       = "state:owner"
	StateKeyPaused      = "state:paused"
	StateKeyInitialized = "state:initialized"
	StateKeyTokenName   = "state:token_name"
	StateKeyTokenSymbol = "state:token_symbol"
	StateKeyMaxSupply   = "state:max_supply"
	StateKeyTotalSupply = "state:total_supply"

	PrefixPeer     = "peer:"
	PrefixSequence = "seq:"

	PrefixMinter = "role:minter:"
	PrefixBurner = "role:burner:"
)
