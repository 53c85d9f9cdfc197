package evm

import "math/big"

const wethABIJSON = `[
	{"name":"deposit","type":"function","stateMutability":"payable","inputs":[],"outputs":[]},
	{"name":"withdraw","type":"function","stateMutability":"nonpayable","inputs":[{"name":"wad","type":"uint256"}],"outputs":[]}
]`

var wethABI = MustParseABI(wethABIJSON)

// EncodeDeposit returns the calldata for the wrapped-native deposit() call
// (selector 0xd0e30db0); the wrapped amount travels as transaction value.
func EncodeDeposit() ([]byte, error) {
	return wethABI.Pack("deposit")
}

func EncodeWithdraw(wad *big.Int) ([]byte, error) {
	return wethABI.Pack("withdraw", wad)
}
