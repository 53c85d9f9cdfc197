package controllers

import (
	"log"
	"net/http"

	"signforge/internal/application/dto"
	portsin "signforge/internal/application/ports/in"
)

type TransferController struct {
	useCase portsin.CreateTransferUseCase
	logger  *log.Logger
}

func NewTransferController(useCase portsin.CreateTransferUseCase, logger *log.Logger) *TransferController {
	return &TransferController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *TransferController) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	chainID, appErr := intField(values, "chainId")
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}
	amount, appErr := decimalField(values, "amount")
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}
	tokenOrSymbol, appErr := addressOrSymbolField(values, "token")
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}
	recipient, appErr := addressField(values, "recipient")
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.useCase.Execute(r.Context(), dto.CreateTransferCommand{
		ChainID:   chainID,
		Amount:    amount,
		Token:     tokenOrSymbol,
		Recipient: recipient,
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/tools/erc20/transfer method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
