package chains

import (
	"fmt"

	apperrors "signforge/internal/shared_kernel/errors"
)

// Chain describes the per-network constants the tool routes depend on:
// the wrapped-native token, default RPC endpoint, and (where the order-book
// protocol is deployed) the quoting API and order explorer bases.
type Chain struct {
	ID             int64
	Name           string
	NativeSymbol   string
	NativeDecimals uint8
	WrappedNative  string
	WrappedSymbol  string
	RPCURL         string
	OrderBookURL   string
	OrderExplorer  string
}

var registry = map[int64]Chain{
	1: {
		ID:             1,
		Name:           "ethereum",
		NativeSymbol:   "ETH",
		NativeDecimals: 18,
		WrappedNative:  "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		WrappedSymbol:  "WETH",
		RPCURL:         "https://eth.llamarpc.com",
		OrderBookURL:   "https://api.cow.fi/mainnet",
		OrderExplorer:  "https://explorer.cow.fi/orders",
	},
	100: {
		ID:             100,
		Name:           "gnosis",
		NativeSymbol:   "xDAI",
		NativeDecimals: 18,
		WrappedNative:  "0xe91D153E0b41518A2Ce8Dd3D7944Fa863463a97d",
		WrappedSymbol:  "WXDAI",
		RPCURL:         "https://rpc.gnosischain.com",
		OrderBookURL:   "https://api.cow.fi/xdai",
		OrderExplorer:  "https://explorer.cow.fi/gc/orders",
	},
	8453: {
		ID:             8453,
		Name:           "base",
		NativeSymbol:   "ETH",
		NativeDecimals: 18,
		WrappedNative:  "0x4200000000000000000000000000000000000006",
		WrappedSymbol:  "WETH",
		RPCURL:         "https://mainnet.base.org",
		OrderBookURL:   "https://api.cow.fi/base",
		OrderExplorer:  "https://explorer.cow.fi/base/orders",
	},
	42161: {
		ID:             42161,
		Name:           "arbitrum",
		NativeSymbol:   "ETH",
		NativeDecimals: 18,
		WrappedNative:  "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1",
		WrappedSymbol:  "WETH",
		RPCURL:         "https://arb1.arbitrum.io/rpc",
		OrderBookURL:   "https://api.cow.fi/arbitrum_one",
		OrderExplorer:  "https://explorer.cow.fi/arb1/orders",
	},
	43113: {
		ID:             43113,
		Name:           "fuji",
		NativeSymbol:   "AVAX",
		NativeDecimals: 18,
		WrappedNative:  "0xd00ae08403B9bbb9124bB305C09058E32C39A48c",
		WrappedSymbol:  "WAVAX",
		RPCURL:         "https://api.avax-test.network/ext/bc/C/rpc",
	},
	43114: {
		ID:             43114,
		Name:           "avalanche",
		NativeSymbol:   "AVAX",
		NativeDecimals: 18,
		WrappedNative:  "0xB31f66AA3C1e785363F0875A1B74E27b85FD66c7",
		WrappedSymbol:  "WAVAX",
		RPCURL:         "https://api.avax.network/ext/bc/C/rpc",
	},
	11155111: {
		ID:             11155111,
		Name:           "sepolia",
		NativeSymbol:   "ETH",
		NativeDecimals: 18,
		WrappedNative:  "0xfFf9976782d46CC05630D1f6eBAb18b2324d6B14",
		WrappedSymbol:  "WETH",
		RPCURL:         "https://ethereum-sepolia-rpc.publicnode.com",
		OrderBookURL:   "https://api.cow.fi/sepolia",
		OrderExplorer:  "https://explorer.cow.fi/sepolia/orders",
	},
}

func ByID(chainID int64) (Chain, *apperrors.AppError) {
	chain, exists := registry[chainID]
	if !exists {
		return Chain{}, apperrors.NewValidation(
			"chain_unsupported",
			fmt.Sprintf("chain id %d is not supported", chainID),
			map[string]any{"chain_id": chainID},
		)
	}

	return chain, nil
}

// WrappedNativeAddress returns the wrap target for the chain's native asset.
func WrappedNativeAddress(chainID int64) (string, *apperrors.AppError) {
	chain, appErr := ByID(chainID)
	if appErr != nil {
		return "", appErr
	}
	if chain.WrappedNative == "" {
		return "", apperrors.NewValidation(
			"wrapped_native_unknown",
			fmt.Sprintf("no wrapped native token known for chain %d", chainID),
			map[string]any{"chain_id": chainID},
		)
	}

	return chain.WrappedNative, nil
}

// SupportsOrderBook reports whether the order-book protocol quoting API is
// deployed on the chain.
func SupportsOrderBook(chainID int64) bool {
	chain, exists := registry[chainID]
	return exists && chain.OrderBookURL != ""
}

func All() []Chain {
	chains := make([]Chain, 0, len(registry))
	for _, chain := range registry {
		chains = append(chains, chain)
	}
	return chains
}
