package dto

// TokenInfo is the canonical result of token resolution: a checksummed
// address plus the decimal count the contract (or the trusted mapping)
// reports. Symbol is best-effort when the lookup started from an address.
type TokenInfo struct {
	Address  string `json:"address"`
	Decimals uint8  `json:"decimals"`
	Symbol   string `json:"symbol,omitempty"`
}

// TokenMap maps chain id -> lowercase symbol -> token info.
type TokenMap map[int64]map[string]TokenInfo
