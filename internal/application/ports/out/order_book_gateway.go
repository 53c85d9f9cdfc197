package out

import (
	"context"

	"signforge/internal/domain/cowswap"
	apperrors "signforge/internal/shared_kernel/errors"
)

// OrderBookGateway talks to the external order-book pricing service.
type OrderBookGateway interface {
	GetQuote(ctx context.Context, chainID int64, request cowswap.QuoteRequest) (cowswap.QuoteResponse, *apperrors.AppError)
	SendOrder(ctx context.Context, chainID int64, order cowswap.OrderCreation) (string, *apperrors.AppError)
	// AppDataExists probes the upstream document store by content hash. A
	// failed probe is reported as "does not exist" so the caller re-uploads;
	// uploads are idempotent by hash.
	AppDataExists(ctx context.Context, chainID int64, hash string) bool
	UploadAppData(ctx context.Context, chainID int64, hash, document string) *apperrors.AppError
	OrderLink(chainID int64, orderUID string) string
}
