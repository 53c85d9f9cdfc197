package in

import (
	"context"

	"signforge/internal/application/dto"
	apperrors "signforge/internal/shared_kernel/errors"
)

type CreateSwapOrderUseCase interface {
	Execute(ctx context.Context, command dto.CreateSwapOrderCommand) (dto.CreateSwapOrderOutput, *apperrors.AppError)
}
