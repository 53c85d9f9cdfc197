//go:build !integration

package benqi

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestStakeTxIsPlainValueTransfer(t *testing.T) {
	transaction, appErr := StakeTx(43114, big.NewInt(1_000_000_000_000_000_000))
	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}

	if transaction.To != "0x2b2C81e08f1Af8835a78Bb2A90AE924ACE0eA4bE" {
		t.Fatalf("expected liquid staking contract, got %q", transaction.To)
	}
	if transaction.Value != "0xde0b6b3a7640000" {
		t.Fatalf("expected 1 AVAX in hex, got %q", transaction.Value)
	}
	if transaction.Data != "0x" {
		t.Fatalf("expected no call data, got %q", transaction.Data)
	}
}

func TestUnstakeTxEncodesUnlockCall(t *testing.T) {
	transaction, appErr := UnstakeTx(43114, big.NewInt(5))
	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}

	if transaction.Value != "0x0" {
		t.Fatalf("expected zero value, got %q", transaction.Value)
	}
	// unlock(uint256) selector plus the amount as a 32-byte word.
	expected := "0x6198e3390000000000000000000000000000000000000000000000000000000000000005"
	if transaction.Data != expected {
		t.Fatalf("expected unlock call data %s, got %s", expected, transaction.Data)
	}
}

func TestMarketTxRouting(t *testing.T) {
	token := common.HexToAddress("0xB97EF9Ef8734C71904D8002F8b6Bc66Dd9c48a6E")

	deposit, appErr := DepositTx(43114, token, big.NewInt(100), false)
	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}
	if deposit.To != "0x486Af39519B4Dc9a7fCcd318217352830E8AD9b4" {
		t.Fatalf("expected core market, got %q", deposit.To)
	}
	if !strings.HasPrefix(deposit.Data, "0x40c10f19") {
		t.Fatalf("expected mint selector, got %q", deposit.Data)
	}

	borrow, appErr := BorrowTx(43114, token, big.NewInt(100), true)
	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}
	if borrow.To != "0x3344e55C6DDE2A01F4ED893f97bAc1c99F5f217B" {
		t.Fatalf("expected ecosystem market, got %q", borrow.To)
	}
	if !strings.HasPrefix(borrow.Data, "0x4b8a3529") {
		t.Fatalf("expected borrow selector, got %q", borrow.Data)
	}
}

func TestMarketTxEncodesTokenAndAmount(t *testing.T) {
	token := common.HexToAddress("0xB97EF9Ef8734C71904D8002F8b6Bc66Dd9c48a6E")

	deposit, appErr := DepositTx(43114, token, big.NewInt(256), false)
	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}

	if !strings.Contains(deposit.Data, strings.ToLower("B97EF9Ef8734C71904D8002F8b6Bc66Dd9c48a6E")) {
		t.Fatalf("expected token address in call data, got %q", deposit.Data)
	}
	if !strings.HasSuffix(deposit.Data, "0100") {
		t.Fatalf("expected amount word at the end of call data, got %q", deposit.Data)
	}
}

func TestContractsForRejectsUnsupportedChain(t *testing.T) {
	_, appErr := ContractsFor(1)
	if appErr == nil {
		t.Fatal("expected error for unsupported chain")
	}
	if appErr.Code != "lending_chain_unsupported" {
		t.Fatalf("expected code lending_chain_unsupported, got %q", appErr.Code)
	}

	if _, appErr := ContractsFor(43113); appErr != nil {
		t.Fatalf("expected Fuji to be supported, got %v", appErr)
	}
}
