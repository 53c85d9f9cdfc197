package token

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	apperrors "signforge/internal/shared_kernel/errors"
)

// ToBaseUnits converts a human-readable decimal amount into integer base
// units (atoms) by shifting the decimal point exactly once by the token's
// decimal count. Arbitrary precision throughout; float64 loses digits past
// 15 significant figures.
func ToBaseUnits(humanAmount string, decimals uint8) (*big.Int, *apperrors.AppError) {
	parsed, err := decimal.NewFromString(humanAmount)
	if err != nil {
		return nil, apperrors.NewValidation(
			"amount_invalid",
			fmt.Sprintf("amount %q is not a valid decimal", humanAmount),
			map[string]any{"amount": humanAmount},
		)
	}
	if parsed.IsNegative() {
		return nil, apperrors.NewValidation(
			"amount_negative",
			"amount must be zero or positive",
			map[string]any{"amount": humanAmount},
		)
	}

	shifted := parsed.Shift(int32(decimals))
	if !shifted.IsInteger() {
		return nil, apperrors.NewValidation(
			"amount_precision_exceeded",
			fmt.Sprintf("amount %q has more than %d fractional digits", humanAmount, decimals),
			map[string]any{"amount": humanAmount, "decimals": decimals},
		)
	}

	return shifted.BigInt(), nil
}

// FromBaseUnits renders an atom amount back into human units for display.
func FromBaseUnits(atoms *big.Int, decimals uint8) string {
	if atoms == nil {
		return "0"
	}

	return decimal.NewFromBigInt(atoms, -int32(decimals)).String()
}
