//go:build !integration

package token

import (
	"math/big"
	"testing"
)

func TestToBaseUnitsShiftsByDecimals(t *testing.T) {
	cases := []struct {
		amount   string
		decimals uint8
		expected string
	}{
		{"1", 18, "1000000000000000000"},
		{"0.5", 18, "500000000000000000"},
		{"250.5", 6, "250500000"},
		{"0", 18, "0"},
		{"0.000001", 6, "1"},
		{"123456789.123456789123456789", 18, "123456789123456789123456789"},
	}

	for _, c := range cases {
		atoms, appErr := ToBaseUnits(c.amount, c.decimals)
		if appErr != nil {
			t.Fatalf("amount %q: expected no error, got %v", c.amount, appErr)
		}
		if atoms.String() != c.expected {
			t.Fatalf("amount %q: expected %s atoms, got %s", c.amount, c.expected, atoms.String())
		}
	}
}

func TestToBaseUnitsKeepsPrecisionBeyondFloat64(t *testing.T) {
	atoms, appErr := ToBaseUnits("1.000000000000000001", 18)
	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}

	if atoms.String() != "1000000000000000001" {
		t.Fatalf("expected exact atoms, got %s", atoms.String())
	}
}

func TestToBaseUnitsRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		amount   string
		decimals uint8
		code     string
	}{
		{"abc", 18, "amount_invalid"},
		{"", 18, "amount_invalid"},
		{"-1", 18, "amount_negative"},
		{"0.1234567", 6, "amount_precision_exceeded"},
	}

	for _, c := range cases {
		_, appErr := ToBaseUnits(c.amount, c.decimals)
		if appErr == nil {
			t.Fatalf("amount %q: expected error", c.amount)
		}
		if appErr.Code != c.code {
			t.Fatalf("amount %q: expected code %s, got %s", c.amount, c.code, appErr.Code)
		}
	}
}

func TestFromBaseUnitsRendersHumanAmount(t *testing.T) {
	atoms, _ := new(big.Int).SetString("250500000", 10)
	if rendered := FromBaseUnits(atoms, 6); rendered != "250.5" {
		t.Fatalf("expected 250.5, got %q", rendered)
	}
	if rendered := FromBaseUnits(nil, 18); rendered != "0" {
		t.Fatalf("expected 0 for nil atoms, got %q", rendered)
	}
}
