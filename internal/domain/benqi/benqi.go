package benqi

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"signforge/internal/domain/evm"
	"signforge/internal/domain/wallet"
	apperrors "signforge/internal/shared_kernel/errors"
)

// Contracts lists the lending-market and liquid-staking entry points for
// one chain. Only Avalanche mainnet and the Fuji testnet are deployed.
type Contracts struct {
	LiquidStaking    string
	MarketsCore      string
	MarketsEcosystem string
}

var contracts = map[int64]Contracts{
	43114: {
		LiquidStaking:    "0x2b2C81e08f1Af8835a78Bb2A90AE924ACE0eA4bE",
		MarketsCore:      "0x486Af39519B4Dc9a7fCcd318217352830E8AD9b4",
		MarketsEcosystem: "0x3344e55C6DDE2A01F4ED893f97bAc1c99F5f217B",
	},
	43113: {
		LiquidStaking:    "0x2b2C81e08f1Af8835a78Bb2A90AE924ACE0eA4bE",
		MarketsCore:      "0x64478Bf5B8e2EE74a3430A4D6846Cdd0F2A4d1DD",
		MarketsEcosystem: "0x08Cb31026155BC7E44210Fc05CF13DE6eF03FCb6",
	},
}

func ContractsFor(chainID int64) (Contracts, *apperrors.AppError) {
	deployed, exists := contracts[chainID]
	if !exists {
		return Contracts{}, apperrors.NewValidation(
			"lending_chain_unsupported",
			fmt.Sprintf("chain id %d is not supported for lending operations, supported: Avalanche (43114) and Fuji (43113)", chainID),
			map[string]any{"chain_id": chainID},
		)
	}

	return deployed, nil
}

const stakingABIJSON = `[
	{"name":"unlock","type":"function","stateMutability":"nonpayable","inputs":[{"name":"shareAmount","type":"uint256"}],"outputs":[]}
]`

const marketsABIJSON = `[
	{"name":"mint","type":"function","stateMutability":"nonpayable","inputs":[{"name":"token","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"name":"borrow","type":"function","stateMutability":"nonpayable","inputs":[{"name":"token","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]}
]`

var (
	stakingABI = evm.MustParseABI(stakingABIJSON)
	marketsABI = evm.MustParseABI(marketsABIJSON)
)

// StakeTx stakes the native asset: a plain value transfer to the liquid
// staking contract, no call data.
func StakeTx(chainID int64, amount *big.Int) (wallet.MetaTransaction, *apperrors.AppError) {
	deployed, appErr := ContractsFor(chainID)
	if appErr != nil {
		return wallet.MetaTransaction{}, appErr
	}

	return wallet.MetaTransaction{
		To:    deployed.LiquidStaking,
		Value: evm.HexValue(amount),
		Data:  "0x",
	}, nil
}

func UnstakeTx(chainID int64, shareAmount *big.Int) (wallet.MetaTransaction, *apperrors.AppError) {
	deployed, appErr := ContractsFor(chainID)
	if appErr != nil {
		return wallet.MetaTransaction{}, appErr
	}

	data, err := stakingABI.Pack("unlock", shareAmount)
	if err != nil {
		return wallet.MetaTransaction{}, apperrors.NewInternal(
			"unstake_encoding_failed",
			"failed to encode unlock call",
			map[string]any{"error": err.Error()},
		)
	}

	return wallet.MetaTransaction{
		To:    deployed.LiquidStaking,
		Value: "0x0",
		Data:  evm.HexData(data),
	}, nil
}

func marketFor(deployed Contracts, ecosystem bool) string {
	if ecosystem {
		return deployed.MarketsEcosystem
	}
	return deployed.MarketsCore
}

// DepositTx supplies a token to the core or ecosystem market.
func DepositTx(chainID int64, token common.Address, amount *big.Int, ecosystem bool) (wallet.MetaTransaction, *apperrors.AppError) {
	deployed, appErr := ContractsFor(chainID)
	if appErr != nil {
		return wallet.MetaTransaction{}, appErr
	}

	data, err := marketsABI.Pack("mint", token, amount)
	if err != nil {
		return wallet.MetaTransaction{}, apperrors.NewInternal(
			"deposit_encoding_failed",
			"failed to encode mint call",
			map[string]any{"error": err.Error()},
		)
	}

	return wallet.MetaTransaction{
		To:    marketFor(deployed, ecosystem),
		Value: "0x0",
		Data:  evm.HexData(data),
	}, nil
}

// BorrowTx borrows a token from the core or ecosystem market.
func BorrowTx(chainID int64, token common.Address, amount *big.Int, ecosystem bool) (wallet.MetaTransaction, *apperrors.AppError) {
	deployed, appErr := ContractsFor(chainID)
	if appErr != nil {
		return wallet.MetaTransaction{}, appErr
	}

	data, err := marketsABI.Pack("borrow", token, amount)
	if err != nil {
		return wallet.MetaTransaction{}, apperrors.NewInternal(
			"borrow_encoding_failed",
			"failed to encode borrow call",
			map[string]any{"error": err.Error()},
		)
	}

	return wallet.MetaTransaction{
		To:    marketFor(deployed, ecosystem),
		Value: "0x0",
		Data:  evm.HexData(data),
	}, nil
}
