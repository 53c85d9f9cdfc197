package use_cases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"signforge/internal/application/dto"
	portsin "signforge/internal/application/ports/in"
	portsout "signforge/internal/application/ports/out"
	"signforge/internal/domain/benqi"
	"signforge/internal/domain/chains"
	"signforge/internal/domain/token"
	"signforge/internal/domain/wallet"
	apperrors "signforge/internal/shared_kernel/errors"
)

const expectedAmountPlaces = 6

type createStakingUseCase struct {
	rateSource portsout.StakingRateSource
}

func NewCreateStakingUseCase(rateSource portsout.StakingRateSource) portsin.CreateStakingUseCase {
	return &createStakingUseCase{
		rateSource: rateSource,
	}
}

func (u *createStakingUseCase) Execute(ctx context.Context, command dto.CreateStakingCommand) (dto.CreateStakingOutput, *apperrors.AppError) {
	if u.rateSource == nil {
		return dto.CreateStakingOutput{}, apperrors.NewInternal(
			"staking_rate_source_missing",
			"staking rate source is required",
			nil,
		)
	}

	// Withdrawal moves no funds by itself, so it short-circuits before any
	// amount parsing.
	if command.Action == dto.StakingActionWithdraw {
		if _, appErr := benqi.ContractsFor(command.ChainID); appErr != nil {
			return dto.CreateStakingOutput{}, appErr
		}

		return dto.CreateStakingOutput{
			Meta: dto.StakingMeta{
				Message: "unlocked AVAX is transferred automatically once the 15 day cooldown elapses; no transaction is required",
			},
		}, nil
	}

	chain, appErr := chains.ByID(command.ChainID)
	if appErr != nil {
		return dto.CreateStakingOutput{}, appErr
	}

	atoms, appErr := token.ToBaseUnits(command.Amount, chain.NativeDecimals)
	if appErr != nil {
		return dto.CreateStakingOutput{}, appErr
	}
	if atoms.Sign() == 0 {
		return dto.CreateStakingOutput{}, apperrors.NewValidation(
			"staking_amount_zero",
			"amount must be greater than zero",
			map[string]any{"amount": command.Amount},
		)
	}

	rate, appErr := u.exchangeRate(ctx)
	if appErr != nil {
		return dto.CreateStakingOutput{}, appErr
	}
	amount, err := decimal.NewFromString(command.Amount)
	if err != nil {
		return dto.CreateStakingOutput{}, apperrors.NewValidation(
			"amount_invalid",
			fmt.Sprintf("amount %q is not a valid decimal", command.Amount),
			map[string]any{"amount": command.Amount},
		)
	}

	switch command.Action {
	case dto.StakingActionStake:
		transaction, appErr := benqi.StakeTx(chain.ID, atoms)
		if appErr != nil {
			return dto.CreateStakingOutput{}, appErr
		}

		expected := amount.DivRound(rate, expectedAmountPlaces)
		request := wallet.SignRequestFor(chain.ID, "", []wallet.MetaTransaction{transaction})
		return dto.CreateStakingOutput{
			Transaction: &request,
			Meta: dto.StakingMeta{
				ExchangeRate:   rate.String(),
				ExpectedAmount: expected.String(),
				Message:        fmt.Sprintf("stake %s AVAX for approximately %s sAVAX", command.Amount, expected.String()),
			},
		}, nil
	case dto.StakingActionUnstake:
		transaction, appErr := benqi.UnstakeTx(chain.ID, atoms)
		if appErr != nil {
			return dto.CreateStakingOutput{}, appErr
		}

		expected := amount.Mul(rate).Round(expectedAmountPlaces)
		request := wallet.SignRequestFor(chain.ID, "", []wallet.MetaTransaction{transaction})
		return dto.CreateStakingOutput{
			Transaction: &request,
			Meta: dto.StakingMeta{
				ExchangeRate:   rate.String(),
				ExpectedAmount: expected.String(),
				Message:        fmt.Sprintf("unstake %s sAVAX for approximately %s AVAX after the 15 day cooldown", command.Amount, expected.String()),
			},
		}, nil
	default:
		return dto.CreateStakingOutput{}, apperrors.NewValidation(
			"staking_action_invalid",
			fmt.Sprintf("unknown staking action %q", command.Action),
			map[string]any{"action": string(command.Action)},
		)
	}
}

func (u *createStakingUseCase) exchangeRate(ctx context.Context) (decimal.Decimal, *apperrors.AppError) {
	raw, appErr := u.rateSource.StakedToNativeRate(ctx)
	if appErr != nil {
		return decimal.Decimal{}, appErr
	}

	rate, err := decimal.NewFromString(raw)
	if err != nil || !rate.IsPositive() {
		return decimal.Decimal{}, apperrors.NewInternal(
			"exchange_rate_invalid",
			fmt.Sprintf("exchange rate %q is not a positive decimal", raw),
			map[string]any{"rate": raw},
		)
	}

	return rate, nil
}
