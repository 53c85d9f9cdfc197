package in

import (
	"context"

	"signforge/internal/application/dto"
	apperrors "signforge/internal/shared_kernel/errors"
)

type GetHealthUseCase interface {
	Execute(ctx context.Context, command dto.GetHealthCommand) (dto.HealthOutput, *apperrors.AppError)
}
