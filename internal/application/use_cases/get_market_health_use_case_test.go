//go:build !integration

package use_cases

import (
	"context"
	"testing"

	"signforge/internal/application/dto"
	apperrors "signforge/internal/shared_kernel/errors"
)

type fakeMarketPositionsSource struct {
	positions dto.MarketPositions
}

func (f *fakeMarketPositionsSource) AccountPositions(_ context.Context, _ int64, _ string, _ dto.MarketType) (dto.MarketPositions, *apperrors.AppError) {
	return f.positions, nil
}

func TestGetMarketHealthComputesFactorFromPositions(t *testing.T) {
	useCase := NewGetMarketHealthUseCase(&fakeMarketPositionsSource{
		positions: dto.MarketPositions{
			Supplied: []dto.SuppliedPosition{
				{Symbol: "WAVAX", Value: "2500", CollateralFactor: "0.75", IsCollateral: true},
				{Symbol: "USDC", Value: "1000", CollateralFactor: "0.80", IsCollateral: true},
				{Symbol: "SAVAX", Value: "400", CollateralFactor: "0.60", IsCollateral: false},
			},
			Borrowed: []dto.BorrowedPosition{
				{Symbol: "USDT", Value: "800"},
			},
		},
	})

	resource, appErr := useCase.Execute(context.Background(), dto.GetMarketHealthQuery{
		ChainID:        43114,
		AccountAddress: testSafe,
		MarketType:     dto.MarketTypeCore,
	})
	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}

	if resource.TotalCollateralValue != "3500" {
		t.Fatalf("expected collateral 3500, got %q", resource.TotalCollateralValue)
	}
	if resource.LiquidationThreshold != "2675" {
		t.Fatalf("expected threshold 2675, got %q", resource.LiquidationThreshold)
	}
	if resource.TotalBorrowValue != "800" {
		t.Fatalf("expected borrow 800, got %q", resource.TotalBorrowValue)
	}
	if resource.HealthFactor != "3.3438" {
		t.Fatalf("expected health factor 3.3438, got %q", resource.HealthFactor)
	}
	if resource.Status != "healthy" {
		t.Fatalf("expected healthy status, got %q", resource.Status)
	}
}

func TestGetMarketHealthWithoutBorrowReportsInf(t *testing.T) {
	useCase := NewGetMarketHealthUseCase(&fakeMarketPositionsSource{
		positions: dto.MarketPositions{
			Supplied: []dto.SuppliedPosition{
				{Symbol: "USDC", Value: "1000", CollateralFactor: "0.80", IsCollateral: true},
			},
		},
	})

	resource, appErr := useCase.Execute(context.Background(), dto.GetMarketHealthQuery{
		ChainID:        43114,
		AccountAddress: testSafe,
		MarketType:     dto.MarketTypeCore,
	})
	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}

	if resource.HealthFactor != "inf" {
		t.Fatalf("expected inf health factor, got %q", resource.HealthFactor)
	}
	if resource.Status != "healthy" {
		t.Fatalf("expected healthy status, got %q", resource.Status)
	}
}

func TestGetMarketHealthBuckets(t *testing.T) {
	testCases := []struct {
		name     string
		borrowed string
		status   string
	}{
		{name: "moderate", borrowed: "1500", status: "moderate"},
		{name: "at risk", borrowed: "2000", status: "at_risk"},
		{name: "liquidatable", borrowed: "3000", status: "liquidatable"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			useCase := NewGetMarketHealthUseCase(&fakeMarketPositionsSource{
				positions: dto.MarketPositions{
					Supplied: []dto.SuppliedPosition{
						{Symbol: "WAVAX", Value: "3000", CollateralFactor: "0.90", IsCollateral: true},
					},
					Borrowed: []dto.BorrowedPosition{
						{Symbol: "USDT", Value: testCase.borrowed},
					},
				},
			})

			resource, appErr := useCase.Execute(context.Background(), dto.GetMarketHealthQuery{
				ChainID:        43114,
				AccountAddress: testSafe,
				MarketType:     dto.MarketTypeCore,
			})
			if appErr != nil {
				t.Fatalf("expected no error, got %v", appErr)
			}
			if resource.Status != testCase.status {
				t.Fatalf("expected status %q, got %q", testCase.status, resource.Status)
			}
		})
	}
}

func TestGetMarketHealthRejectsBadInput(t *testing.T) {
	useCase := NewGetMarketHealthUseCase(&fakeMarketPositionsSource{})

	_, appErr := useCase.Execute(context.Background(), dto.GetMarketHealthQuery{
		ChainID:        1,
		AccountAddress: testSafe,
		MarketType:     dto.MarketTypeCore,
	})
	if appErr == nil || appErr.Code != "lending_chain_unsupported" {
		t.Fatalf("expected lending_chain_unsupported, got %v", appErr)
	}

	_, appErr = useCase.Execute(context.Background(), dto.GetMarketHealthQuery{
		ChainID:        43114,
		AccountAddress: "not-an-address",
		MarketType:     dto.MarketTypeCore,
	})
	if appErr == nil || appErr.Code != "account_address_invalid" {
		t.Fatalf("expected account_address_invalid, got %v", appErr)
	}
}
