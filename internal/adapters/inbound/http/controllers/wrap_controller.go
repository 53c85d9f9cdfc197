package controllers

import (
	"log"
	"net/http"

	"signforge/internal/application/dto"
	portsin "signforge/internal/application/ports/in"
	apperrors "signforge/internal/shared_kernel/errors"
)

type WrapController struct {
	wrapUseCase   portsin.WrapNativeUseCase
	unwrapUseCase portsin.UnwrapNativeUseCase
	logger        *log.Logger
}

func NewWrapController(
	wrapUseCase portsin.WrapNativeUseCase,
	unwrapUseCase portsin.UnwrapNativeUseCase,
	logger *log.Logger,
) *WrapController {
	return &WrapController{
		wrapUseCase:   wrapUseCase,
		unwrapUseCase: unwrapUseCase,
		logger:        logger,
	}
}

func (c *WrapController) WrapNative(w http.ResponseWriter, r *http.Request) {
	command, appErr := parseWrapQuery(r)
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.wrapUseCase.Execute(r.Context(), command)
	if appErr != nil {
		c.logger.Printf("request error path=/v1/tools/weth/wrap method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (c *WrapController) UnwrapNative(w http.ResponseWriter, r *http.Request) {
	command, appErr := parseWrapQuery(r)
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.unwrapUseCase.Execute(r.Context(), command)
	if appErr != nil {
		c.logger.Printf("request error path=/v1/tools/weth/unwrap method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func parseWrapQuery(r *http.Request) (dto.WrapNativeCommand, *apperrors.AppError) {
	values := r.URL.Query()

	chainID, appErr := intField(values, "chainId")
	if appErr != nil {
		return dto.WrapNativeCommand{}, appErr
	}
	amount, appErr := decimalField(values, "amount")
	if appErr != nil {
		return dto.WrapNativeCommand{}, appErr
	}

	return dto.WrapNativeCommand{
		ChainID: chainID,
		Amount:  amount,
	}, nil
}
