package controllers

import (
	"log"
	"net/http"

	"signforge/internal/application/dto"
	portsin "signforge/internal/application/ports/in"
)

type MarketsController struct {
	actionUseCase portsin.CreateMarketActionUseCase
	healthUseCase portsin.GetMarketHealthUseCase
	logger        *log.Logger
}

func NewMarketsController(
	actionUseCase portsin.CreateMarketActionUseCase,
	healthUseCase portsin.GetMarketHealthUseCase,
	logger *log.Logger,
) *MarketsController {
	return &MarketsController{
		actionUseCase: actionUseCase,
		healthUseCase: healthUseCase,
		logger:        logger,
	}
}

func (c *MarketsController) CreateMarketAction(w http.ResponseWriter, r *http.Request) {
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
	tokenOrSymbol, appErr := addressOrSymbolField(values, "tokenOrSymbol")
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}
	marketType, appErr := enumField(values, "marketType", "core", "ecosystem")
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}
	action, appErr := enumField(values, "action", "deposit", "borrow")
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.actionUseCase.Execute(r.Context(), dto.CreateMarketActionCommand{
		ChainID:       chainID,
		Amount:        amount,
		TokenOrSymbol: tokenOrSymbol,
		MarketType:    dto.MarketType(marketType),
		Action:        dto.MarketAction(action),
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/tools/markets method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (c *MarketsController) GetMarketHealth(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	chainID, appErr := intField(values, "chainId")
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}
	account, appErr := addressField(values, "account")
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}
	marketType, appErr := enumField(values, "marketType", "core", "ecosystem")
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}

	resource, appErr := c.healthUseCase.Execute(r.Context(), dto.GetMarketHealthQuery{
		ChainID:        chainID,
		AccountAddress: account,
		MarketType:     dto.MarketType(marketType),
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/tools/markets/health method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, resource)
}
