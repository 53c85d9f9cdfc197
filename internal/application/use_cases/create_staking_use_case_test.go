//go:build !integration

package use_cases

import (
	"context"
	"strings"
	"testing"

	"signforge/internal/application/dto"
	apperrors "signforge/internal/shared_kernel/errors"
)

type fakeStakingRateSource struct {
	rate    string
	rateErr *apperrors.AppError
}

func (f *fakeStakingRateSource) StakedToNativeRate(_ context.Context) (string, *apperrors.AppError) {
	if f.rateErr != nil {
		return "", f.rateErr
	}

	return f.rate, nil
}

func TestCreateStakingStakeBuildsValueTransfer(t *testing.T) {
	useCase := NewCreateStakingUseCase(&fakeStakingRateSource{rate: "1.07"})

	output, appErr := useCase.Execute(context.Background(), dto.CreateStakingCommand{
		ChainID: 43114,
		Amount:  "1.07",
		Action:  dto.StakingActionStake,
	})
	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}

	if output.Transaction == nil {
		t.Fatal("expected a transaction")
	}
	params := output.Transaction.Params[0]
	if params.To != "0x2b2C81e08f1Af8835a78Bb2A90AE924ACE0eA4bE" {
		t.Fatalf("expected liquid staking contract, got %q", params.To)
	}
	if params.Data != "0x" {
		t.Fatalf("expected no call data, got %q", params.Data)
	}
	if output.Meta.ExchangeRate != "1.07" {
		t.Fatalf("expected exchange rate 1.07, got %q", output.Meta.ExchangeRate)
	}
	if output.Meta.ExpectedAmount != "1" {
		t.Fatalf("expected 1 sAVAX, got %q", output.Meta.ExpectedAmount)
	}
}

func TestCreateStakingUnstakeEncodesUnlock(t *testing.T) {
	useCase := NewCreateStakingUseCase(&fakeStakingRateSource{rate: "1.07"})

	output, appErr := useCase.Execute(context.Background(), dto.CreateStakingCommand{
		ChainID: 43114,
		Amount:  "1",
		Action:  dto.StakingActionUnstake,
	})
	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}

	if output.Transaction == nil {
		t.Fatal("expected a transaction")
	}
	params := output.Transaction.Params[0]
	if !strings.HasPrefix(params.Data, "0x6198e339") {
		t.Fatalf("expected unlock selector, got %q", params.Data)
	}
	if output.Meta.ExpectedAmount != "1.07" {
		t.Fatalf("expected 1.07 AVAX, got %q", output.Meta.ExpectedAmount)
	}
}

func TestCreateStakingWithdrawReturnsMessageOnly(t *testing.T) {
	useCase := NewCreateStakingUseCase(&fakeStakingRateSource{rate: "1.07"})

	output, appErr := useCase.Execute(context.Background(), dto.CreateStakingCommand{
		ChainID: 43114,
		Action:  dto.StakingActionWithdraw,
	})
	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}

	if output.Transaction != nil {
		t.Fatal("expected no transaction for withdraw")
	}
	if output.Meta.Message == "" {
		t.Fatal("expected an explanatory message")
	}
}

func TestCreateStakingRejectsBadInput(t *testing.T) {
	useCase := NewCreateStakingUseCase(&fakeStakingRateSource{rate: "1.07"})

	_, appErr := useCase.Execute(context.Background(), dto.CreateStakingCommand{
		ChainID: 1,
		Amount:  "1",
		Action:  dto.StakingActionStake,
	})
	if appErr == nil || appErr.Code != "lending_chain_unsupported" {
		t.Fatalf("expected lending_chain_unsupported, got %v", appErr)
	}

	_, appErr = useCase.Execute(context.Background(), dto.CreateStakingCommand{
		ChainID: 43114,
		Amount:  "0",
		Action:  dto.StakingActionStake,
	})
	if appErr == nil || appErr.Code != "staking_amount_zero" {
		t.Fatalf("expected staking_amount_zero, got %v", appErr)
	}

	_, appErr = useCase.Execute(context.Background(), dto.CreateStakingCommand{
		ChainID: 43114,
		Amount:  "1",
		Action:  dto.StakingAction("restake"),
	})
	if appErr == nil || appErr.Code != "staking_action_invalid" {
		t.Fatalf("expected staking_action_invalid, got %v", appErr)
	}
}

func TestCreateStakingRejectsBadExchangeRate(t *testing.T) {
	useCase := NewCreateStakingUseCase(&fakeStakingRateSource{rate: "zero"})

	_, appErr := useCase.Execute(context.Background(), dto.CreateStakingCommand{
		ChainID: 43114,
		Amount:  "1",
		Action:  dto.StakingActionStake,
	})
	if appErr == nil || appErr.Code != "exchange_rate_invalid" {
		t.Fatalf("expected exchange_rate_invalid, got %v", appErr)
	}
}
