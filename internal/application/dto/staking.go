package dto

import "signforge/internal/domain/wallet"

type StakingAction string

const (
	StakingActionStake    StakingAction = "stake"
	StakingActionUnstake  StakingAction = "unstake"
	StakingActionWithdraw StakingAction = "withdraw"
)

type CreateStakingCommand struct {
	ChainID int64
	Amount  string
	Action  StakingAction
}

type StakingMeta struct {
	ExchangeRate   string `json:"exchangeRate,omitempty"`
	ExpectedAmount string `json:"expectedAmount,omitempty"`
	Message        string `json:"message"`
}

type CreateStakingOutput struct {
	Transaction *wallet.SignRequest `json:"transaction,omitempty"`
	Meta        StakingMeta         `json:"meta"`
}
