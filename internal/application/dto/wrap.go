package dto

import "signforge/internal/domain/wallet"

type WrapNativeCommand struct {
	ChainID int64
	Amount  string
}

type WrapMeta struct {
	Description string `json:"description"`
}

type WrapNativeOutput struct {
	Transaction wallet.SignRequest `json:"transaction"`
	Meta        WrapMeta           `json:"meta"`
}
