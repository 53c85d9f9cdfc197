package dto

import "signforge/internal/domain/wallet"

type CreateSwapOrderCommand struct {
	ChainID             int64
	SellToken           string
	BuyToken            string
	SellAmountBeforeFee string
	SafeAddress         string
	// OrderKind is optional and defaults to sell; anything else is rejected.
	OrderKind string
}

type SwapOrderMeta struct {
	OrderURL string `json:"orderUrl"`
}

type CreateSwapOrderOutput struct {
	Transaction wallet.SignRequest `json:"transaction"`
	Meta        SwapOrderMeta      `json:"meta"`
}
