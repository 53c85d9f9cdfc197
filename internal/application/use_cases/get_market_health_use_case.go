package use_cases

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"signforge/internal/application/dto"
	portsin "signforge/internal/application/ports/in"
	portsout "signforge/internal/application/ports/out"
	"signforge/internal/domain/benqi"
	apperrors "signforge/internal/shared_kernel/errors"
)

// Health-factor buckets. The factor is liquidation threshold over borrow
// value, so 1.0 is the liquidation boundary.
var (
	healthyFloor  = decimal.NewFromInt(2)
	moderateFloor = decimal.RequireFromString("1.5")
	riskyFloor    = decimal.NewFromInt(1)
)

// noBorrowHealthFactor is reported when the account borrows nothing and the
// factor is undefined.
const noBorrowHealthFactor = "inf"

type getMarketHealthUseCase struct {
	positionsSource portsout.MarketPositionsSource
}

func NewGetMarketHealthUseCase(positionsSource portsout.MarketPositionsSource) portsin.GetMarketHealthUseCase {
	return &getMarketHealthUseCase{
		positionsSource: positionsSource,
	}
}

func (u *getMarketHealthUseCase) Execute(ctx context.Context, query dto.GetMarketHealthQuery) (dto.MarketHealthResource, *apperrors.AppError) {
	if u.positionsSource == nil {
		return dto.MarketHealthResource{}, apperrors.NewInternal(
			"market_positions_source_missing",
			"market positions source is required",
			nil,
		)
	}

	if _, appErr := benqi.ContractsFor(query.ChainID); appErr != nil {
		return dto.MarketHealthResource{}, appErr
	}
	if query.MarketType != dto.MarketTypeCore && query.MarketType != dto.MarketTypeEcosystem {
		return dto.MarketHealthResource{}, apperrors.NewValidation(
			"market_type_invalid",
			fmt.Sprintf("unknown market type %q", query.MarketType),
			map[string]any{"market_type": string(query.MarketType)},
		)
	}
	if !common.IsHexAddress(query.AccountAddress) {
		return dto.MarketHealthResource{}, apperrors.NewValidation(
			"account_address_invalid",
			fmt.Sprintf("account address %q is not a valid address", query.AccountAddress),
			map[string]any{"account_address": query.AccountAddress},
		)
	}
	account := common.HexToAddress(query.AccountAddress).Hex()

	positions, appErr := u.positionsSource.AccountPositions(ctx, query.ChainID, account, query.MarketType)
	if appErr != nil {
		return dto.MarketHealthResource{}, appErr
	}

	totalCollateral := decimal.Zero
	liquidationThreshold := decimal.Zero
	for _, supplied := range positions.Supplied {
		if !supplied.IsCollateral {
			continue
		}
		value, appErr := parsePositionDecimal("value", supplied.Value)
		if appErr != nil {
			return dto.MarketHealthResource{}, appErr
		}
		factor, appErr := parsePositionDecimal("collateralFactor", supplied.CollateralFactor)
		if appErr != nil {
			return dto.MarketHealthResource{}, appErr
		}
		totalCollateral = totalCollateral.Add(value)
		liquidationThreshold = liquidationThreshold.Add(value.Mul(factor))
	}

	totalBorrow := decimal.Zero
	for _, borrowed := range positions.Borrowed {
		value, appErr := parsePositionDecimal("value", borrowed.Value)
		if appErr != nil {
			return dto.MarketHealthResource{}, appErr
		}
		totalBorrow = totalBorrow.Add(value)
	}

	healthFactor := noBorrowHealthFactor
	status := "healthy"
	if totalBorrow.IsPositive() {
		factor := liquidationThreshold.DivRound(totalBorrow, 4)
		healthFactor = factor.String()
		status = healthStatus(factor)
	}

	return dto.MarketHealthResource{
		HealthFactor:         healthFactor,
		TotalCollateralValue: totalCollateral.String(),
		TotalBorrowValue:     totalBorrow.String(),
		LiquidationThreshold: liquidationThreshold.String(),
		Status:               status,
		Positions:            positions,
	}, nil
}

func healthStatus(factor decimal.Decimal) string {
	switch {
	case factor.GreaterThanOrEqual(healthyFloor):
		return "healthy"
	case factor.GreaterThanOrEqual(moderateFloor):
		return "moderate"
	case factor.GreaterThanOrEqual(riskyFloor):
		return "at_risk"
	default:
		return "liquidatable"
	}
}

func parsePositionDecimal(field, value string) (decimal.Decimal, *apperrors.AppError) {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, apperrors.NewInternal(
			"position_value_invalid",
			fmt.Sprintf("position %s %q is not a valid decimal", field, value),
			map[string]any{"field": field, "value": value},
		)
	}

	return parsed, nil
}
