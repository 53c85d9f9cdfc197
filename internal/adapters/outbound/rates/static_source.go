package rates

import (
	"context"

	"signforge/internal/application/dto"
	portsout "signforge/internal/application/ports/out"
	apperrors "signforge/internal/shared_kernel/errors"
)

// defaultStakedToNativeRate approximates how much AVAX one sAVAX redeems
// for. A live oracle would replace this source behind the same port.
const defaultStakedToNativeRate = "1.07"

// StaticSource serves a fixed exchange rate and representative account
// positions. It backs the staking estimate and the health summary until a
// live market data feed is wired in.
type StaticSource struct {
	rate string
}

var (
	_ portsout.StakingRateSource     = (*StaticSource)(nil)
	_ portsout.MarketPositionsSource = (*StaticSource)(nil)
)

func NewStaticSource(rate string) *StaticSource {
	if rate == "" {
		rate = defaultStakedToNativeRate
	}

	return &StaticSource{rate: rate}
}

func (s *StaticSource) StakedToNativeRate(_ context.Context) (string, *apperrors.AppError) {
	return s.rate, nil
}

func (s *StaticSource) AccountPositions(_ context.Context, _ int64, _ string, _ dto.MarketType) (dto.MarketPositions, *apperrors.AppError) {
	return dto.MarketPositions{
		Supplied: []dto.SuppliedPosition{
			{
				Token:            "0xB31f66AA3C1e785363F0875A1B74E27b85FD66c7",
				Symbol:           "WAVAX",
				Amount:           "100",
				Value:            "2500",
				CollateralFactor: "0.75",
				IsCollateral:     true,
			},
			{
				Token:            "0xB97EF9Ef8734C71904D8002F8b6Bc66Dd9c48a6E",
				Symbol:           "USDC",
				Amount:           "1000",
				Value:            "1000",
				CollateralFactor: "0.80",
				IsCollateral:     true,
			},
		},
		Borrowed: []dto.BorrowedPosition{
			{
				Token:  "0x9702230A8Ea53601f5cD2dc00fDBc13d4dF4A8c7",
				Symbol: "USDT",
				Amount: "800",
				Value:  "800",
			},
		},
	}, nil
}
