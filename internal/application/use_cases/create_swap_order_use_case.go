package use_cases

import (
	"context"
	"fmt"
	"log"
	"math/big"
	"strings"
	"sync"

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

// SwapPolicy carries the operator-configured order defaults: slippage
// tolerance in basis points and the metadata document identity attached to
// every submitted order.
type SwapPolicy struct {
	SlippageBps     int64
	AppCode         string
	ReferrerAddress string
	PartnerFee      *cowswap.PartnerFee
}

type createSwapOrderUseCase struct {
	tokenDirectory portsout.TokenDirectory
	orderBook      portsout.OrderBookGateway
	chainReader    portsout.ChainReader
	policy         SwapPolicy
	logger         *log.Logger
}

func NewCreateSwapOrderUseCase(
	tokenDirectory portsout.TokenDirectory,
	orderBook portsout.OrderBookGateway,
	chainReader portsout.ChainReader,
	policy SwapPolicy,
	logger *log.Logger,
) portsin.CreateSwapOrderUseCase {
	return &createSwapOrderUseCase{
		tokenDirectory: tokenDirectory,
		orderBook:      orderBook,
		chainReader:    chainReader,
		policy:         policy,
		logger:         logger,
	}
}

func (u *createSwapOrderUseCase) Execute(ctx context.Context, command dto.CreateSwapOrderCommand) (dto.CreateSwapOrderOutput, *apperrors.AppError) {
	if u.tokenDirectory == nil {
		return dto.CreateSwapOrderOutput{}, apperrors.NewInternal(
			"token_directory_missing",
			"token directory is required",
			nil,
		)
	}
	if u.orderBook == nil {
		return dto.CreateSwapOrderOutput{}, apperrors.NewInternal(
			"order_book_gateway_missing",
			"order book gateway is required",
			nil,
		)
	}
	if u.chainReader == nil {
		return dto.CreateSwapOrderOutput{}, apperrors.NewInternal(
			"chain_reader_missing",
			"chain reader is required",
			nil,
		)
	}

	if command.OrderKind != "" && command.OrderKind != string(cowswap.OrderKindSell) {
		return dto.CreateSwapOrderOutput{}, apperrors.NewValidation(
			"order_kind_unsupported",
			fmt.Sprintf("only sell orders are supported, got %q", command.OrderKind),
			map[string]any{"kind": command.OrderKind},
		)
	}

	chain, appErr := chains.ByID(command.ChainID)
	if appErr != nil {
		return dto.CreateSwapOrderOutput{}, appErr
	}
	if !chains.SupportsOrderBook(chain.ID) {
		return dto.CreateSwapOrderOutput{}, apperrors.NewValidation(
			"order_book_chain_unsupported",
			fmt.Sprintf("the order book protocol is not deployed on chain %d", chain.ID),
			map[string]any{"chain_id": chain.ID},
		)
	}

	if !common.IsHexAddress(command.SafeAddress) {
		return dto.CreateSwapOrderOutput{}, apperrors.NewValidation(
			"safe_address_invalid",
			fmt.Sprintf("safe address %q is not a valid address", command.SafeAddress),
			map[string]any{"safe_address": command.SafeAddress},
		)
	}
	safeAddress := common.HexToAddress(command.SafeAddress).Hex()

	buyToken, appErr := u.resolveToken(ctx, chain, command.BuyToken)
	if appErr != nil {
		return dto.CreateSwapOrderOutput{}, appErr
	}
	sellToken, appErr := u.resolveToken(ctx, chain, command.SellToken)
	if appErr != nil {
		return dto.CreateSwapOrderOutput{}, appErr
	}

	sellAtoms, appErr := token.ToBaseUnits(command.SellAmountBeforeFee, sellToken.Decimals)
	if appErr != nil {
		return dto.CreateSwapOrderOutput{}, appErr
	}
	if sellAtoms.Sign() == 0 {
		return dto.CreateSwapOrderOutput{}, apperrors.NewValidation(
			"sell_amount_zero",
			"sell amount must be greater than zero",
			map[string]any{"sell_amount": command.SellAmountBeforeFee},
		)
	}

	// A native sell is wrapped first and the order trades the wrapped token.
	transactions := []wallet.MetaTransaction{}
	sellTokenAddress := sellToken.Address
	if cowswap.IsNativeAsset(sellToken.Address) {
		wrapTx, wrapErr := wrapNativeTx(chain, sellAtoms)
		if wrapErr != nil {
			return dto.CreateSwapOrderOutput{}, wrapErr
		}
		transactions = append(transactions, wrapTx)
		sellTokenAddress = chain.WrappedNative
	}

	quoteRequest := cowswap.QuoteRequest{
		SellToken:           sellTokenAddress,
		BuyToken:            buyToken.Address,
		Receiver:            safeAddress,
		From:                safeAddress,
		SellAmountBeforeFee: sellAtoms.String(),
		Kind:                cowswap.OrderKindSell,
		SigningScheme:       cowswap.SigningSchemePresign,
	}

	// The quote and the allowance read are independent network calls.
	var (
		quoteResponse cowswap.QuoteResponse
		quoteErr      *apperrors.AppError
		approvalTx    *wallet.MetaTransaction
		approvalErr   *apperrors.AppError
	)
	var group sync.WaitGroup
	group.Add(2)
	go func() {
		defer group.Done()
		quoteResponse, quoteErr = u.orderBook.GetQuote(ctx, chain.ID, quoteRequest)
	}()
	go func() {
		defer group.Done()
		approvalTx, approvalErr = u.sellTokenApprovalTx(ctx, chain.ID, sellTokenAddress, safeAddress, sellAtoms)
	}()
	group.Wait()

	if quoteErr != nil {
		return dto.CreateSwapOrderOutput{}, quoteErr
	}
	if approvalErr != nil {
		return dto.CreateSwapOrderOutput{}, approvalErr
	}
	if approvalTx != nil {
		transactions = append(transactions, *approvalTx)
	}

	appErr = foldFeeIntoSellAmount(&quoteResponse.Quote)
	if appErr != nil {
		return dto.CreateSwapOrderOutput{}, appErr
	}

	adjustment, appErr := cowswap.ApplySlippage(
		quoteResponse.Quote.Kind,
		quoteResponse.Quote.SellAmount,
		quoteResponse.Quote.BuyAmount,
		u.policy.SlippageBps,
	)
	if appErr != nil {
		return dto.CreateSwapOrderOutput{}, appErr
	}
	if adjustment.SellAmount != "" {
		quoteResponse.Quote.SellAmount = adjustment.SellAmount
	}
	if adjustment.BuyAmount != "" {
		quoteResponse.Quote.BuyAmount = adjustment.BuyAmount
	}

	appData, appErr := u.ensureAppData(ctx, chain.ID)
	if appErr != nil {
		return dto.CreateSwapOrderOutput{}, appErr
	}
	quoteResponse.Quote.AppData = appData.Hash

	order := cowswap.BuildOrder(quoteResponse)
	orderUID, appErr := u.orderBook.SendOrder(ctx, chain.ID, order)
	if appErr != nil {
		return dto.CreateSwapOrderOutput{}, appErr
	}
	if u.logger != nil {
		u.logger.Printf("event=order_submitted chain_id=%d order_uid=%s sell_token=%s buy_token=%s", chain.ID, orderUID, sellTokenAddress, buyToken.Address)
	}

	presignTx, appErr := cowswap.SetPresignatureTx(orderUID)
	if appErr != nil {
		return dto.CreateSwapOrderOutput{}, appErr
	}
	transactions = append(transactions, presignTx)

	return dto.CreateSwapOrderOutput{
		Transaction: wallet.SignRequestFor(chain.ID, safeAddress, transactions),
		Meta: dto.SwapOrderMeta{
			OrderURL: u.orderBook.OrderLink(chain.ID, orderUID),
		},
	}, nil
}

// resolveToken maps the native-asset sentinel to synthetic metadata and
// defers everything else to the directory.
func (u *createSwapOrderUseCase) resolveToken(ctx context.Context, chain chains.Chain, symbolOrAddress string) (dto.TokenInfo, *apperrors.AppError) {
	if cowswap.IsNativeAsset(symbolOrAddress) || strings.EqualFold(symbolOrAddress, chain.NativeSymbol) {
		return dto.TokenInfo{
			Address:  cowswap.NativeAssetSentinel,
			Decimals: chain.NativeDecimals,
			Symbol:   chain.NativeSymbol,
		}, nil
	}

	return u.tokenDirectory.Resolve(ctx, chain.ID, symbolOrAddress)
}

// sellTokenApprovalTx returns the max approval transaction when the current
// vault relayer allowance does not cover the sell amount, nil when it does.
func (u *createSwapOrderUseCase) sellTokenApprovalTx(ctx context.Context, chainID int64, sellToken, owner string, sellAmount *big.Int) (*wallet.MetaTransaction, *apperrors.AppError) {
	allowance, appErr := u.chainReader.Allowance(ctx, chainID, sellToken, owner, cowswap.VaultRelayer().Hex())
	if appErr != nil {
		return nil, appErr
	}
	if allowance.Cmp(sellAmount) >= 0 {
		return nil, nil
	}

	approval, appErr := cowswap.ApprovalTx(sellToken)
	if appErr != nil {
		return nil, appErr
	}

	return &approval, nil
}

// ensureAppData builds the metadata document and registers it upstream when
// the order book has not seen its hash yet. Registration is idempotent by
// content hash, so a stale existence probe only costs a redundant upload.
func (u *createSwapOrderUseCase) ensureAppData(ctx context.Context, chainID int64) (cowswap.AppData, *apperrors.AppError) {
	appData, appErr := cowswap.BuildAppData(u.policy.AppCode, u.policy.ReferrerAddress, u.policy.PartnerFee)
	if appErr != nil {
		return cowswap.AppData{}, appErr
	}

	if !u.orderBook.AppDataExists(ctx, chainID, appData.Hash) {
		if appErr := u.orderBook.UploadAppData(ctx, chainID, appData.Hash, appData.Doc); appErr != nil {
			return cowswap.AppData{}, appErr
		}
		if u.logger != nil {
			u.logger.Printf("event=app_data_registered chain_id=%d hash=%s", chainID, appData.Hash)
		}
	}

	return appData, nil
}

// foldFeeIntoSellAmount moves the quoted fee into the sell side. Orders are
// submitted with feeAmount zero, so skipping this step would underfund the
// settlement by exactly the fee.
func foldFeeIntoSellAmount(quote *cowswap.OrderParameters) *apperrors.AppError {
	sellAmount, ok := new(big.Int).SetString(quote.SellAmount, 10)
	if !ok {
		return apperrors.NewInternal(
			"quote_sell_amount_invalid",
			fmt.Sprintf("quoted sell amount %q is not a base-10 integer", quote.SellAmount),
			map[string]any{"sell_amount": quote.SellAmount},
		)
	}
	feeAmount, ok := new(big.Int).SetString(quote.FeeAmount, 10)
	if !ok {
		return apperrors.NewInternal(
			"quote_fee_amount_invalid",
			fmt.Sprintf("quoted fee amount %q is not a base-10 integer", quote.FeeAmount),
			map[string]any{"fee_amount": quote.FeeAmount},
		)
	}

	quote.SellAmount = new(big.Int).Add(sellAmount, feeAmount).String()
	return nil
}

// wrapNativeTx builds the deposit() call against the chain's wrapped-native
// token with the amount as transaction value.
func wrapNativeTx(chain chains.Chain, atoms *big.Int) (wallet.MetaTransaction, *apperrors.AppError) {
	wrapped, appErr := chains.WrappedNativeAddress(chain.ID)
	if appErr != nil {
		return wallet.MetaTransaction{}, appErr
	}

	data, err := evm.EncodeDeposit()
	if err != nil {
		return wallet.MetaTransaction{}, apperrors.NewInternal(
			"wrap_encoding_failed",
			"failed to encode deposit call",
			map[string]any{"error": err.Error()},
		)
	}

	return wallet.MetaTransaction{
		To:    wrapped,
		Value: evm.HexValue(atoms),
		Data:  evm.HexData(data),
	}, nil
}
