package use_cases

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"signforge/internal/application/dto"
	portsin "signforge/internal/application/ports/in"
	portsout "signforge/internal/application/ports/out"
	"signforge/internal/domain/chains"
	"signforge/internal/domain/cowswap"
	"signforge/internal/domain/evm"
	"signforge/internal/domain/token"
	"signforge/internal/domain/wallet"
	apperrors "signforge/internal/shared_kernel/errors"
)

type createTransferUseCase struct {
	tokenDirectory portsout.TokenDirectory
}

func NewCreateTransferUseCase(tokenDirectory portsout.TokenDirectory) portsin.CreateTransferUseCase {
	return &createTransferUseCase{
		tokenDirectory: tokenDirectory,
	}
}

func (u *createTransferUseCase) Execute(ctx context.Context, command dto.CreateTransferCommand) (dto.CreateTransferOutput, *apperrors.AppError) {
	if u.tokenDirectory == nil {
		return dto.CreateTransferOutput{}, apperrors.NewInternal(
			"token_directory_missing",
			"token directory is required",
			nil,
		)
	}

	chain, appErr := chains.ByID(command.ChainID)
	if appErr != nil {
		return dto.CreateTransferOutput{}, appErr
	}

	if !common.IsHexAddress(command.Recipient) {
		return dto.CreateTransferOutput{}, apperrors.NewValidation(
			"recipient_invalid",
			fmt.Sprintf("recipient %q is not a valid address", command.Recipient),
			map[string]any{"recipient": command.Recipient},
		)
	}
	recipient := common.HexToAddress(command.Recipient)

	if cowswap.IsNativeAsset(command.Token) || strings.EqualFold(command.Token, chain.NativeSymbol) {
		return u.nativeTransfer(chain, command.Amount, recipient)
	}

	info, appErr := u.tokenDirectory.Resolve(ctx, chain.ID, command.Token)
	if appErr != nil {
		return dto.CreateTransferOutput{}, appErr
	}

	atoms, appErr := token.ToBaseUnits(command.Amount, info.Decimals)
	if appErr != nil {
		return dto.CreateTransferOutput{}, appErr
	}
	if atoms.Sign() == 0 {
		return dto.CreateTransferOutput{}, zeroTransferAmount(command.Amount)
	}

	data, err := evm.EncodeTransfer(recipient, atoms)
	if err != nil {
		return dto.CreateTransferOutput{}, apperrors.NewInternal(
			"transfer_encoding_failed",
			"failed to encode transfer call",
			map[string]any{"error": err.Error()},
		)
	}

	transaction := wallet.MetaTransaction{
		To:    info.Address,
		Value: "0x0",
		Data:  evm.HexData(data),
	}

	symbol := info.Symbol
	if symbol == "" {
		symbol = info.Address
	}

	return dto.CreateTransferOutput{
		Transaction: wallet.SignRequestFor(chain.ID, "", []wallet.MetaTransaction{transaction}),
		Meta: dto.TransferMeta{
			Description: fmt.Sprintf("transfer %s %s to %s", command.Amount, symbol, recipient.Hex()),
		},
	}, nil
}

func (u *createTransferUseCase) nativeTransfer(chain chains.Chain, amount string, recipient common.Address) (dto.CreateTransferOutput, *apperrors.AppError) {
	atoms, appErr := token.ToBaseUnits(amount, chain.NativeDecimals)
	if appErr != nil {
		return dto.CreateTransferOutput{}, appErr
	}
	if atoms.Sign() == 0 {
		return dto.CreateTransferOutput{}, zeroTransferAmount(amount)
	}

	transaction := wallet.MetaTransaction{
		To:    recipient.Hex(),
		Value: evm.HexValue(atoms),
		Data:  "0x",
	}

	return dto.CreateTransferOutput{
		Transaction: wallet.SignRequestFor(chain.ID, "", []wallet.MetaTransaction{transaction}),
		Meta: dto.TransferMeta{
			Description: fmt.Sprintf("transfer %s %s to %s", amount, chain.NativeSymbol, recipient.Hex()),
		},
	}, nil
}

func zeroTransferAmount(amount string) *apperrors.AppError {
	return apperrors.NewValidation(
		"transfer_amount_zero",
		"transfer amount must be greater than zero",
		map[string]any{"amount": amount},
	)
}
