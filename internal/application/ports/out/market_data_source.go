package out

import (
	"context"

	"signforge/internal/application/dto"
	apperrors "signforge/internal/shared_kernel/errors"
)

// StakingRateSource quotes the staked-token to native exchange rate.
type StakingRateSource interface {
	StakedToNativeRate(ctx context.Context) (string, *apperrors.AppError)
}

// MarketPositionsSource lists an account's supplied and borrowed positions
// in a lending market.
type MarketPositionsSource interface {
	AccountPositions(ctx context.Context, chainID int64, account string, marketType dto.MarketType) (dto.MarketPositions, *apperrors.AppError)
}
