package use_cases

import (
	"context"
	"fmt"
	"math/big"

	"signforge/internal/application/dto"
	portsin "signforge/internal/application/ports/in"
	"signforge/internal/domain/chains"
	"signforge/internal/domain/evm"
	"signforge/internal/domain/token"
	"signforge/internal/domain/wallet"
	apperrors "signforge/internal/shared_kernel/errors"
)

type wrapNativeUseCase struct{}

func NewWrapNativeUseCase() portsin.WrapNativeUseCase {
	return &wrapNativeUseCase{}
}

func (u *wrapNativeUseCase) Execute(_ context.Context, command dto.WrapNativeCommand) (dto.WrapNativeOutput, *apperrors.AppError) {
	chain, atoms, appErr := wrapInputs(command)
	if appErr != nil {
		return dto.WrapNativeOutput{}, appErr
	}

	transaction, appErr := wrapNativeTx(chain, atoms)
	if appErr != nil {
		return dto.WrapNativeOutput{}, appErr
	}

	return dto.WrapNativeOutput{
		Transaction: wallet.SignRequestFor(chain.ID, "", []wallet.MetaTransaction{transaction}),
		Meta: dto.WrapMeta{
			Description: fmt.Sprintf("wrap %s %s into %s", command.Amount, chain.NativeSymbol, chain.WrappedSymbol),
		},
	}, nil
}

type unwrapNativeUseCase struct{}

func NewUnwrapNativeUseCase() portsin.UnwrapNativeUseCase {
	return &unwrapNativeUseCase{}
}

func (u *unwrapNativeUseCase) Execute(_ context.Context, command dto.WrapNativeCommand) (dto.WrapNativeOutput, *apperrors.AppError) {
	chain, atoms, appErr := wrapInputs(command)
	if appErr != nil {
		return dto.WrapNativeOutput{}, appErr
	}

	wrapped, appErr := chains.WrappedNativeAddress(chain.ID)
	if appErr != nil {
		return dto.WrapNativeOutput{}, appErr
	}

	data, err := evm.EncodeWithdraw(atoms)
	if err != nil {
		return dto.WrapNativeOutput{}, apperrors.NewInternal(
			"unwrap_encoding_failed",
			"failed to encode withdraw call",
			map[string]any{"error": err.Error()},
		)
	}

	transaction := wallet.MetaTransaction{
		To:    wrapped,
		Value: "0x0",
		Data:  evm.HexData(data),
	}

	return dto.WrapNativeOutput{
		Transaction: wallet.SignRequestFor(chain.ID, "", []wallet.MetaTransaction{transaction}),
		Meta: dto.WrapMeta{
			Description: fmt.Sprintf("unwrap %s %s into %s", command.Amount, chain.WrappedSymbol, chain.NativeSymbol),
		},
	}, nil
}

// wrapInputs validates the shared wrap/unwrap input pair. The amount is
// always denominated in the native asset's decimals.
func wrapInputs(command dto.WrapNativeCommand) (chains.Chain, *big.Int, *apperrors.AppError) {
	chain, appErr := chains.ByID(command.ChainID)
	if appErr != nil {
		return chains.Chain{}, nil, appErr
	}

	atoms, appErr := token.ToBaseUnits(command.Amount, chain.NativeDecimals)
	if appErr != nil {
		return chains.Chain{}, nil, appErr
	}
	if atoms.Sign() == 0 {
		return chains.Chain{}, nil, apperrors.NewValidation(
			"wrap_amount_zero",
			"amount must be greater than zero",
			map[string]any{"amount": command.Amount},
		)
	}

	return chain, atoms, nil
}
