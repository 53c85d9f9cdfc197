package in

import (
	"context"

	"signforge/internal/application/dto"
	apperrors "signforge/internal/shared_kernel/errors"
)

type WrapNativeUseCase interface {
	Execute(ctx context.Context, command dto.WrapNativeCommand) (dto.WrapNativeOutput, *apperrors.AppError)
}

type UnwrapNativeUseCase interface {
	Execute(ctx context.Context, command dto.WrapNativeCommand) (dto.WrapNativeOutput, *apperrors.AppError)
}
