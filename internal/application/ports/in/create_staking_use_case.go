package in

import (
	"context"

	"signforge/internal/application/dto"
	apperrors "signforge/internal/shared_kernel/errors"
)

type CreateStakingUseCase interface {
	Execute(ctx context.Context, command dto.CreateStakingCommand) (dto.CreateStakingOutput, *apperrors.AppError)
}
