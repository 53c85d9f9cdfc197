package cowswap

import (
	"fmt"
	"math/big"

	apperrors "signforge/internal/shared_kernel/errors"
)

const slippageScale = 10000

// SlippageAdjustment carries only the side the tolerance applies to; the
// other side is left empty and must not be written back to the quote.
type SlippageAdjustment struct {
	SellAmount string
	BuyAmount  string
}

// ApplySlippage computes the protected amount for the given order kind.
// For a sell order the buyer accepts less: buyAmount*(10000-bps)/10000.
// For a buy order the buyer pays more: sellAmount*(10000+bps)/10000.
// Integer arithmetic with truncating division throughout.
func ApplySlippage(kind OrderKind, sellAmount, buyAmount string, bps int64) (SlippageAdjustment, *apperrors.AppError) {
	if bps < 0 || bps > slippageScale {
		return SlippageAdjustment{}, apperrors.NewValidation(
			"slippage_bps_invalid",
			fmt.Sprintf("slippage bps %d outside [0, %d]", bps, slippageScale),
			map[string]any{"bps": bps},
		)
	}

	scale := big.NewInt(slippageScale)
	switch kind {
	case OrderKindSell:
		amount, appErr := parseAtoms("buyAmount", buyAmount)
		if appErr != nil {
			return SlippageAdjustment{}, appErr
		}
		adjusted := new(big.Int).Mul(amount, big.NewInt(slippageScale-bps))
		adjusted.Quo(adjusted, scale)
		return SlippageAdjustment{BuyAmount: adjusted.String()}, nil
	case OrderKindBuy:
		amount, appErr := parseAtoms("sellAmount", sellAmount)
		if appErr != nil {
			return SlippageAdjustment{}, appErr
		}
		adjusted := new(big.Int).Mul(amount, big.NewInt(slippageScale+bps))
		adjusted.Quo(adjusted, scale)
		return SlippageAdjustment{SellAmount: adjusted.String()}, nil
	default:
		return SlippageAdjustment{}, apperrors.NewValidation(
			"order_kind_invalid",
			fmt.Sprintf("unknown order kind %q", kind),
			map[string]any{"kind": string(kind)},
		)
	}
}

func parseAtoms(field, value string) (*big.Int, *apperrors.AppError) {
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok || amount.Sign() < 0 {
		return nil, apperrors.NewValidation(
			"amount_atoms_invalid",
			fmt.Sprintf("%s %q is not a base-10 atom amount", field, value),
			map[string]any{"field": field, "value": value},
		)
	}

	return amount, nil
}
