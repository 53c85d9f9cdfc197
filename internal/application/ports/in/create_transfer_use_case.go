package in

import (
	"context"

	"signforge/internal/application/dto"
	apperrors "signforge/internal/shared_kernel/errors"
)

type CreateTransferUseCase interface {
	Execute(ctx context.Context, command dto.CreateTransferCommand) (dto.CreateTransferOutput, *apperrors.AppError)
}
