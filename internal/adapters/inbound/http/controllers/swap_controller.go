package controllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"signforge/internal/application/dto"
	portsin "signforge/internal/application/ports/in"
	apperrors "signforge/internal/shared_kernel/errors"
)

type SwapController struct {
	useCase portsin.CreateSwapOrderUseCase
	logger  *log.Logger
}

type createSwapPayload struct {
	ChainID             int64  `json:"chainId"`
	SellToken           string `json:"sellToken"`
	BuyToken            string `json:"buyToken"`
	SellAmountBeforeFee string `json:"sellAmountBeforeFee"`
	SafeAddress         string `json:"safeAddress"`
	Kind                string `json:"kind,omitempty"`
}

func NewSwapController(useCase portsin.CreateSwapOrderUseCase, logger *log.Logger) *SwapController {
	return &SwapController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *SwapController) CreateSwapOrder(w http.ResponseWriter, r *http.Request) {
	payload, appErr := parseCreateSwapPayload(r.Body)
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.useCase.Execute(r.Context(), dto.CreateSwapOrderCommand{
		ChainID:             payload.ChainID,
		SellToken:           strings.TrimSpace(payload.SellToken),
		BuyToken:            strings.TrimSpace(payload.BuyToken),
		SellAmountBeforeFee: strings.TrimSpace(payload.SellAmountBeforeFee),
		SafeAddress:         strings.TrimSpace(payload.SafeAddress),
		OrderKind:           strings.TrimSpace(payload.Kind),
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/tools/swap method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func parseCreateSwapPayload(body io.Reader) (createSwapPayload, *apperrors.AppError) {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	payload := createSwapPayload{}
	if err := decoder.Decode(&payload); err != nil {
		return createSwapPayload{}, apperrors.NewValidation(
			"invalid_request",
			"request body must be valid JSON",
			map[string]any{"error": err.Error()},
		)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return createSwapPayload{}, apperrors.NewValidation(
			"invalid_request",
			"request body must contain a single JSON object",
			nil,
		)
	}

	for field, value := range map[string]string{
		"sellToken":           payload.SellToken,
		"buyToken":            payload.BuyToken,
		"sellAmountBeforeFee": payload.SellAmountBeforeFee,
		"safeAddress":         payload.SafeAddress,
	} {
		if strings.TrimSpace(value) == "" {
			return createSwapPayload{}, apperrors.NewValidation(
				"field_missing",
				"field \""+field+"\" is required",
				map[string]any{"field": field},
			)
		}
	}

	return payload, nil
}
