package out

import (
	"context"

	"signforge/internal/application/dto"
	apperrors "signforge/internal/shared_kernel/errors"
)

// TokenMapSource fetches the full chain -> symbol -> token mapping from the
// trusted upstream source. Fetch failures propagate; they are never treated
// as an empty map.
type TokenMapSource interface {
	FetchTokenMap(ctx context.Context) (dto.TokenMap, *apperrors.AppError)
}
