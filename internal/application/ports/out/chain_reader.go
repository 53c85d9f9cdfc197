package out

import (
	"context"
	"math/big"

	apperrors "signforge/internal/shared_kernel/errors"
)

// ChainReader performs read-only contract calls against a chain's RPC node.
type ChainReader interface {
	// TokenDecimals calls decimals() on the token contract. Fails when the
	// address does not implement the expected read interface.
	TokenDecimals(ctx context.Context, chainID int64, token string) (uint8, *apperrors.AppError)
	// Allowance calls allowance(owner, spender) on the token contract.
	Allowance(ctx context.Context, chainID int64, token, owner, spender string) (*big.Int, *apperrors.AppError)
}
