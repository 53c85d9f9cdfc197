package controllers

import (
	"log"
	"net/http"

	"signforge/internal/application/dto"
	portsin "signforge/internal/application/ports/in"
)

type StakingController struct {
	useCase portsin.CreateStakingUseCase
	logger  *log.Logger
}

func NewStakingController(useCase portsin.CreateStakingUseCase, logger *log.Logger) *StakingController {
	return &StakingController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *StakingController) CreateStakingAction(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	chainID, appErr := intField(values, "chainId")
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}
	action, appErr := enumField(values, "action", "stake", "unstake", "withdraw")
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}

	// Withdraw needs no amount; the other actions do.
	amount := ""
	if action != string(dto.StakingActionWithdraw) {
		amount, appErr = decimalField(values, "amount")
		if appErr != nil {
			writeAppError(w, appErr)
			return
		}
	}

	output, appErr := c.useCase.Execute(r.Context(), dto.CreateStakingCommand{
		ChainID: chainID,
		Amount:  amount,
		Action:  dto.StakingAction(action),
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/tools/staking method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
