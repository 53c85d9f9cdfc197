package dto

import "signforge/internal/domain/wallet"

type CreateTransferCommand struct {
	ChainID   int64
	Amount    string
	Token     string
	Recipient string
}

type TransferMeta struct {
	Description string `json:"description"`
}

type CreateTransferOutput struct {
	Transaction wallet.SignRequest `json:"transaction"`
	Meta        TransferMeta       `json:"meta"`
}
