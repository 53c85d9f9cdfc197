package evm

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Call data is always produced through parsed ABI definitions; hand-rolled
// selector/padding concatenation is not allowed anywhere in this codebase.

// MustParseABI parses a JSON ABI fragment at package init time.
func MustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(fmt.Sprintf("invalid ABI definition: %v", err))
	}

	return parsed
}

// HexValue renders a native-asset amount as the 0x-hex string wallets expect.
func HexValue(amount *big.Int) string {
	if amount == nil || amount.Sign() == 0 {
		return "0x0"
	}

	return hexutil.EncodeBig(amount)
}

// HexData renders call data as a 0x-prefixed hex string ("0x" when empty).
func HexData(data []byte) string {
	return hexutil.Encode(data)
}
