package use_cases

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"signforge/internal/application/dto"
	portsin "signforge/internal/application/ports/in"
	portsout "signforge/internal/application/ports/out"
	"signforge/internal/domain/benqi"
	"signforge/internal/domain/token"
	"signforge/internal/domain/wallet"
	apperrors "signforge/internal/shared_kernel/errors"
)

// The ecosystem market lists many collateral assets but only one borrowable
// one.
const ecosystemBorrowSymbol = "USDC"

type createMarketActionUseCase struct {
	tokenDirectory portsout.TokenDirectory
}

func NewCreateMarketActionUseCase(tokenDirectory portsout.TokenDirectory) portsin.CreateMarketActionUseCase {
	return &createMarketActionUseCase{
		tokenDirectory: tokenDirectory,
	}
}

func (u *createMarketActionUseCase) Execute(ctx context.Context, command dto.CreateMarketActionCommand) (dto.CreateMarketActionOutput, *apperrors.AppError) {
	if u.tokenDirectory == nil {
		return dto.CreateMarketActionOutput{}, apperrors.NewInternal(
			"token_directory_missing",
			"token directory is required",
			nil,
		)
	}

	if _, appErr := benqi.ContractsFor(command.ChainID); appErr != nil {
		return dto.CreateMarketActionOutput{}, appErr
	}

	ecosystem := false
	switch command.MarketType {
	case dto.MarketTypeCore:
	case dto.MarketTypeEcosystem:
		ecosystem = true
	default:
		return dto.CreateMarketActionOutput{}, apperrors.NewValidation(
			"market_type_invalid",
			fmt.Sprintf("unknown market type %q", command.MarketType),
			map[string]any{"market_type": string(command.MarketType)},
		)
	}

	info, appErr := u.tokenDirectory.Resolve(ctx, command.ChainID, command.TokenOrSymbol)
	if appErr != nil {
		return dto.CreateMarketActionOutput{}, appErr
	}

	atoms, appErr := token.ToBaseUnits(command.Amount, info.Decimals)
	if appErr != nil {
		return dto.CreateMarketActionOutput{}, appErr
	}
	if atoms.Sign() == 0 {
		return dto.CreateMarketActionOutput{}, apperrors.NewValidation(
			"market_amount_zero",
			"amount must be greater than zero",
			map[string]any{"amount": command.Amount},
		)
	}

	tokenAddress := common.HexToAddress(info.Address)
	symbol := info.Symbol
	if symbol == "" {
		symbol = info.Address
	}

	var (
		transaction wallet.MetaTransaction
		message     string
	)
	switch command.Action {
	case dto.MarketActionDeposit:
		transaction, appErr = benqi.DepositTx(command.ChainID, tokenAddress, atoms, ecosystem)
		message = fmt.Sprintf("deposit %s %s into the %s market", command.Amount, symbol, command.MarketType)
	case dto.MarketActionBorrow:
		if ecosystem && !strings.EqualFold(symbol, ecosystemBorrowSymbol) {
			return dto.CreateMarketActionOutput{}, apperrors.NewValidation(
				"ecosystem_borrow_unsupported_token",
				fmt.Sprintf("only %s can be borrowed from the ecosystem market, got %q", ecosystemBorrowSymbol, symbol),
				map[string]any{"token": symbol},
			)
		}
		transaction, appErr = benqi.BorrowTx(command.ChainID, tokenAddress, atoms, ecosystem)
		message = fmt.Sprintf("borrow %s %s from the %s market", command.Amount, symbol, command.MarketType)
	default:
		return dto.CreateMarketActionOutput{}, apperrors.NewValidation(
			"market_action_invalid",
			fmt.Sprintf("unknown market action %q", command.Action),
			map[string]any{"action": string(command.Action)},
		)
	}
	if appErr != nil {
		return dto.CreateMarketActionOutput{}, appErr
	}

	return dto.CreateMarketActionOutput{
		Transaction: wallet.SignRequestFor(command.ChainID, "", []wallet.MetaTransaction{transaction}),
		Meta: dto.MarketActionMeta{
			TokenSymbol: symbol,
			Amount:      command.Amount,
			MarketType:  string(command.MarketType),
			Message:     message,
		},
	}, nil
}
