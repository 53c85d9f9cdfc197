package in

import (
	"context"

	"signforge/internal/application/dto"
	apperrors "signforge/internal/shared_kernel/errors"
)

type CreateMarketActionUseCase interface {
	Execute(ctx context.Context, command dto.CreateMarketActionCommand) (dto.CreateMarketActionOutput, *apperrors.AppError)
}

type GetMarketHealthUseCase interface {
	Execute(ctx context.Context, query dto.GetMarketHealthQuery) (dto.MarketHealthResource, *apperrors.AppError)
}
