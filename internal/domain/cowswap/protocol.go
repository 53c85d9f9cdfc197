package cowswap

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"signforge/internal/domain/evm"
	"signforge/internal/domain/wallet"
	apperrors "signforge/internal/shared_kernel/errors"
)

// NativeAssetSentinel is the pseudo-address the order-book protocol (and
// many other DEX protocols) use to represent the chain's native asset.
const NativeAssetSentinel = "0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE"

const (
	// GPv2 settlement contract; the presignature confirmation call goes here.
	settlementContract = "0x9008D19f58AAbD9eD0D60971565AA8510560ab41"
	// GPv2 vault relayer; the spender that needs the sell-token allowance.
	vaultRelayer = "0xC92E8bdf79f0507f65a392b0ab4667716BFE0110"
)

// MaxApproval is 2^256-1. Approvals are granted at the maximum rather than
// the exact sell amount so repeat swaps skip the approval transaction.
var MaxApproval = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

func SettlementContract() common.Address {
	return common.HexToAddress(settlementContract)
}

func VaultRelayer() common.Address {
	return common.HexToAddress(vaultRelayer)
}

func IsNativeAsset(token string) bool {
	return strings.EqualFold(token, NativeAssetSentinel)
}

const setPreSignatureABIJSON = `[
	{"name":"setPreSignature","type":"function","stateMutability":"nonpayable","inputs":[{"name":"orderUid","type":"bytes"},{"name":"signed","type":"bool"}],"outputs":[]}
]`

var settlementABI = evm.MustParseABI(setPreSignatureABIJSON)

// SetPresignatureTx encodes the on-chain confirmation that the off-chain
// submitted order identified by orderUID is authorized. Always the last
// transaction in a swap sign request.
func SetPresignatureTx(orderUID string) (wallet.MetaTransaction, *apperrors.AppError) {
	uidBytes, err := hexutil.Decode(orderUID)
	if err != nil {
		return wallet.MetaTransaction{}, apperrors.NewValidation(
			"order_uid_invalid",
			fmt.Sprintf("invalid order uid (not hex): %s", orderUID),
			map[string]any{"order_uid": orderUID},
		)
	}

	data, err := settlementABI.Pack("setPreSignature", uidBytes, true)
	if err != nil {
		return wallet.MetaTransaction{}, apperrors.NewInternal(
			"presignature_encoding_failed",
			"failed to encode setPreSignature call",
			map[string]any{"error": err.Error()},
		)
	}

	return wallet.MetaTransaction{
		To:    settlementContract,
		Value: "0x0",
		Data:  evm.HexData(data),
	}, nil
}

// ApprovalTx encodes approve(vaultRelayer, MaxApproval) against the sell
// token. Whether the approval is needed at all is the caller's decision.
func ApprovalTx(sellToken string) (wallet.MetaTransaction, *apperrors.AppError) {
	data, err := evm.EncodeApprove(VaultRelayer(), MaxApproval)
	if err != nil {
		return wallet.MetaTransaction{}, apperrors.NewInternal(
			"approval_encoding_failed",
			"failed to encode approve call",
			map[string]any{"error": err.Error()},
		)
	}

	return wallet.MetaTransaction{
		To:    sellToken,
		Value: "0x0",
		Data:  evm.HexData(data),
	}, nil
}
