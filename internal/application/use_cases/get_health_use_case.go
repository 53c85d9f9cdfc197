package use_cases

import (
	"context"

	"signforge/internal/application/dto"
	portsin "signforge/internal/application/ports/in"
	apperrors "signforge/internal/shared_kernel/errors"
)

const healthyStatus = "ok"

type getHealthUseCase struct{}

func NewGetHealthUseCase() portsin.GetHealthUseCase {
	return &getHealthUseCase{}
}

func (u *getHealthUseCase) Execute(_ context.Context, _ dto.GetHealthCommand) (dto.HealthOutput, *apperrors.AppError) {
	return dto.HealthOutput{
		Status: healthyStatus,
	}, nil
}
