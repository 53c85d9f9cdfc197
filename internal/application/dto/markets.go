package dto

import "signforge/internal/domain/wallet"

type MarketType string

const (
	MarketTypeCore      MarketType = "core"
	MarketTypeEcosystem MarketType = "ecosystem"
)

type MarketAction string

const (
	MarketActionDeposit MarketAction = "deposit"
	MarketActionBorrow  MarketAction = "borrow"
)

type CreateMarketActionCommand struct {
	ChainID       int64
	Amount        string
	TokenOrSymbol string
	MarketType    MarketType
	Action        MarketAction
}

type MarketActionMeta struct {
	TokenSymbol string `json:"tokenSymbol"`
	Amount      string `json:"amount"`
	MarketType  string `json:"marketType"`
	Message     string `json:"message"`
}

type CreateMarketActionOutput struct {
	Transaction wallet.SignRequest `json:"transaction"`
	Meta        MarketActionMeta   `json:"meta"`
}

type GetMarketHealthQuery struct {
	ChainID        int64
	AccountAddress string
	MarketType     MarketType
}

type SuppliedPosition struct {
	Token            string `json:"token"`
	Symbol           string `json:"symbol"`
	Amount           string `json:"amount"`
	Value            string `json:"value"`
	CollateralFactor string `json:"collateralFactor"`
	IsCollateral     bool   `json:"isCollateral"`
}

type BorrowedPosition struct {
	Token  string `json:"token"`
	Symbol string `json:"symbol"`
	Amount string `json:"amount"`
	Value  string `json:"value"`
}

type MarketPositions struct {
	Supplied []SuppliedPosition `json:"supplied"`
	Borrowed []BorrowedPosition `json:"borrowed"`
}

type MarketHealthResource struct {
	HealthFactor         string          `json:"healthFactor"`
	TotalCollateralValue string          `json:"totalCollateralValue"`
	TotalBorrowValue     string          `json:"totalBorrowValue"`
	LiquidationThreshold string          `json:"liquidationThreshold"`
	Status               string          `json:"status"`
	Positions            MarketPositions `json:"positions"`
}
