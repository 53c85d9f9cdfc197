package out

import (
	"context"

	"signforge/internal/application/dto"
	apperrors "signforge/internal/shared_kernel/errors"
)

// TokenDirectory resolves a symbol-or-address input to canonical token
// metadata for a chain.
type TokenDirectory interface {
	Resolve(ctx context.Context, chainID int64, symbolOrAddress string) (dto.TokenInfo, *apperrors.AppError)
}
