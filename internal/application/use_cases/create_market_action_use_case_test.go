//go:build !integration

package use_cases

import (
	"context"
	"strings"
	"testing"

	"signforge/internal/application/dto"
)

func newMarketsDirectory() *fakeTokenDirectory {
	return &fakeTokenDirectory{
		tokens: map[string]dto.TokenInfo{
			"usdc":  {Address: "0xB97EF9Ef8734C71904D8002F8b6Bc66Dd9c48a6E", Decimals: 6, Symbol: "USDC"},
			"wavax": {Address: "0xB31f66AA3C1e785363F0875A1B74E27b85FD66c7", Decimals: 18, Symbol: "WAVAX"},
		},
	}
}

func TestCreateMarketActionDepositTargetsCoreMarket(t *testing.T) {
	useCase := NewCreateMarketActionUseCase(newMarketsDirectory())

	output, appErr := useCase.Execute(context.Background(), dto.CreateMarketActionCommand{
		ChainID:       43114,
		Amount:        "100",
		TokenOrSymbol: "USDC",
		MarketType:    dto.MarketTypeCore,
		Action:        dto.MarketActionDeposit,
	})
	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}

	params := output.Transaction.Params[0]
	if params.To != "0x486Af39519B4Dc9a7fCcd318217352830E8AD9b4" {
		t.Fatalf("expected core market, got %q", params.To)
	}
	if !strings.HasPrefix(params.Data, "0x40c10f19") {
		t.Fatalf("expected mint selector, got %q", params.Data)
	}
	if output.Meta.TokenSymbol != "USDC" || output.Meta.MarketType != "core" {
		t.Fatalf("unexpected meta %+v", output.Meta)
	}
}

func TestCreateMarketActionBorrowTargetsEcosystemMarket(t *testing.T) {
	useCase := NewCreateMarketActionUseCase(newMarketsDirectory())

	output, appErr := useCase.Execute(context.Background(), dto.CreateMarketActionCommand{
		ChainID:       43114,
		Amount:        "50",
		TokenOrSymbol: "USDC",
		MarketType:    dto.MarketTypeEcosystem,
		Action:        dto.MarketActionBorrow,
	})
	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}

	params := output.Transaction.Params[0]
	if params.To != "0x3344e55C6DDE2A01F4ED893f97bAc1c99F5f217B" {
		t.Fatalf("expected ecosystem market, got %q", params.To)
	}
	if !strings.HasPrefix(params.Data, "0x4b8a3529") {
		t.Fatalf("expected borrow selector, got %q", params.Data)
	}
}

func TestCreateMarketActionRejectsEcosystemBorrowOfNonUSDC(t *testing.T) {
	useCase := NewCreateMarketActionUseCase(newMarketsDirectory())

	_, appErr := useCase.Execute(context.Background(), dto.CreateMarketActionCommand{
		ChainID:       43114,
		Amount:        "50",
		TokenOrSymbol: "WAVAX",
		MarketType:    dto.MarketTypeEcosystem,
		Action:        dto.MarketActionBorrow,
	})
	if appErr == nil || appErr.Code != "ecosystem_borrow_unsupported_token" {
		t.Fatalf("expected ecosystem_borrow_unsupported_token, got %v", appErr)
	}
}

func TestCreateMarketActionRejectsBadInput(t *testing.T) {
	useCase := NewCreateMarketActionUseCase(newMarketsDirectory())

	_, appErr := useCase.Execute(context.Background(), dto.CreateMarketActionCommand{
		ChainID:       1,
		Amount:        "50",
		TokenOrSymbol: "USDC",
		MarketType:    dto.MarketTypeCore,
		Action:        dto.MarketActionDeposit,
	})
	if appErr == nil || appErr.Code != "lending_chain_unsupported" {
		t.Fatalf("expected lending_chain_unsupported, got %v", appErr)
	}

	_, appErr = useCase.Execute(context.Background(), dto.CreateMarketActionCommand{
		ChainID:       43114,
		Amount:        "50",
		TokenOrSymbol: "USDC",
		MarketType:    dto.MarketType("isolated"),
		Action:        dto.MarketActionDeposit,
	})
	if appErr == nil || appErr.Code != "market_type_invalid" {
		t.Fatalf("expected market_type_invalid, got %v", appErr)
	}

	_, appErr = useCase.Execute(context.Background(), dto.CreateMarketActionCommand{
		ChainID:       43114,
		Amount:        "0",
		TokenOrSymbol: "USDC",
		MarketType:    dto.MarketTypeCore,
		Action:        dto.MarketActionDeposit,
	})
	if appErr == nil || appErr.Code != "market_amount_zero" {
		t.Fatalf("expected market_amount_zero, got %v", appErr)
	}

	_, appErr = useCase.Execute(context.Background(), dto.CreateMarketActionCommand{
		ChainID:       43114,
		Amount:        "50",
		TokenOrSymbol: "USDC",
		MarketType:    dto.MarketTypeCore,
		Action:        dto.MarketAction("repay"),
	})
	if appErr == nil || appErr.Code != "market_action_invalid" {
		t.Fatalf("expected market_action_invalid, got %v", appErr)
	}
}
