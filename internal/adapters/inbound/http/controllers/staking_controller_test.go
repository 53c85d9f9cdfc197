package controllers

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"signforge/internal/application/dto"
	"signforge/internal/domain/wallet"
	apperrors "signforge/internal/shared_kernel/errors"
)

func TestStakingControllerStakeOK(t *testing.T) {
	stub := &stubStakingUseCase{}
	controller := NewStakingController(stub, log.New(io.Discard, "", 0))

	req := httptest.NewRequest(http.MethodGet, "/v1/tools/staking?chainId=43114&action=stake&amount=1.07", nil)
	rec := httptest.NewRecorder()

	controller.CreateStakingAction(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if stub.command.Action != dto.StakingActionStake || stub.command.Amount != "1.07" {
		t.Fatalf("unexpected command %+v", stub.command)
	}
}

func TestStakingControllerWithdrawNeedsNoAmount(t *testing.T) {
	stub := &stubStakingUseCase{}
	controller := NewStakingController(stub, log.New(io.Discard, "", 0))

	req := httptest.NewRequest(http.MethodGet, "/v1/tools/staking?chainId=43114&action=withdraw", nil)
	rec := httptest.NewRecorder()

	controller.CreateStakingAction(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if stub.command.Amount != "" {
		t.Fatalf("expected empty amount, got %q", stub.command.Amount)
	}
}

func TestStakingControllerRejectsBadQuery(t *testing.T) {
	controller := NewStakingController(&stubStakingUseCase{}, log.New(io.Discard, "", 0))

	testCases := []struct {
		name  string
		query string
		code  string
	}{
		{name: "missing amount", query: "chainId=43114&action=stake", code: "field_missing"},
		{name: "bad action", query: "chainId=43114&action=restake&amount=1", code: "field_invalid"},
		{name: "bad chain id", query: "chainId=avalanche&action=stake&amount=1", code: "field_invalid"},
		{name: "negative amount", query: "chainId=43114&action=stake&amount=-1", code: "field_invalid"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/tools/staking?"+testCase.query, nil)
			rec := httptest.NewRecorder()

			controller.CreateStakingAction(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d body=%s", rec.Code, rec.Body.String())
			}
			if !bytes.Contains(rec.Body.Bytes(), []byte(testCase.code)) {
				t.Fatalf("expected %s code, got %s", testCase.code, rec.Body.String())
			}
		})
	}
}

type stubStakingUseCase struct {
	command dto.CreateStakingCommand
}

func (s *stubStakingUseCase) Execute(_ context.Context, command dto.CreateStakingCommand) (dto.CreateStakingOutput, *apperrors.AppError) {
	s.command = command
	request := wallet.SignRequestFor(command.ChainID, "", []wallet.MetaTransaction{
		{To: "0x2b2C81e08f1Af8835a78Bb2A90AE924ACE0eA4bE", Value: "0x0", Data: "0x"},
	})

	return dto.CreateStakingOutput{
		Transaction: &request,
		Meta:        dto.StakingMeta{Message: "ok"},
	}, nil
}
