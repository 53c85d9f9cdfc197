package controllers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	apperrors "signforge/internal/shared_kernel/errors"
)

// Typed query field parsers. Every failure names the field so the caller
// can correct the request without reading server logs.

func intField(values url.Values, name string) (int64, *apperrors.AppError) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return 0, missingField(name)
	}

	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidation(
			"field_invalid",
			fmt.Sprintf("field %q must be an integer", name),
			map[string]any{"field": name, "value": raw},
		)
	}

	return parsed, nil
}

func decimalField(values url.Values, name string) (string, *apperrors.AppError) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return "", missingField(name)
	}

	parsed, err := decimal.NewFromString(raw)
	if err != nil || parsed.IsNegative() {
		return "", apperrors.NewValidation(
			"field_invalid",
			fmt.Sprintf("field %q must be a non-negative decimal", name),
			map[string]any{"field": name, "value": raw},
		)
	}

	return raw, nil
}

func addressField(values url.Values, name string) (string, *apperrors.AppError) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return "", missingField(name)
	}
	if !common.IsHexAddress(raw) {
		return "", apperrors.NewValidation(
			"field_invalid",
			fmt.Sprintf("field %q must be a hex address", name),
			map[string]any{"field": name, "value": raw},
		)
	}

	return common.HexToAddress(raw).Hex(), nil
}

// addressOrSymbolField accepts either form; addresses are checksummed here,
// symbols are resolved downstream.
func addressOrSymbolField(values url.Values, name string) (string, *apperrors.AppError) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return "", missingField(name)
	}
	if common.IsHexAddress(raw) {
		return common.HexToAddress(raw).Hex(), nil
	}

	return raw, nil
}

func enumField(values url.Values, name string, allowed ...string) (string, *apperrors.AppError) {
	raw := strings.ToLower(strings.TrimSpace(values.Get(name)))
	if raw == "" {
		return "", missingField(name)
	}
	for _, candidate := range allowed {
		if raw == candidate {
			return raw, nil
		}
	}

	return "", apperrors.NewValidation(
		"field_invalid",
		fmt.Sprintf("field %q must be one of: %s", name, strings.Join(allowed, ", ")),
		map[string]any{"field": name, "value": raw},
	)
}

func missingField(name string) *apperrors.AppError {
	return apperrors.NewValidation(
		"field_missing",
		fmt.Sprintf("field %q is required", name),
		map[string]any{"field": name},
	)
}
