//go:build !integration

package cowswap

import "testing"

func TestIsNativeAssetIgnoresCase(t *testing.T) {
	if !IsNativeAsset("0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee") {
		t.Fatal("expected lowercased sentinel to match")
	}
	if !IsNativeAsset(NativeAssetSentinel) {
		t.Fatal("expected sentinel to match itself")
	}
	if IsNativeAsset("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2") {
		t.Fatal("expected a token address not to match")
	}
}

func TestApprovalTxEncodesMaxApprovalForVaultRelayer(t *testing.T) {
	transaction, appErr := ApprovalTx("0x6B175474E89094C44Da98b954EedeAC495271d0F")
	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}

	if transaction.To != "0x6B175474E89094C44Da98b954EedeAC495271d0F" {
		t.Fatalf("expected approval against the sell token, got %q", transaction.To)
	}
	if transaction.Value != "0x0" {
		t.Fatalf("expected zero value, got %q", transaction.Value)
	}

	expected := "0x095ea7b3000000000000000000000000c92e8bdf79f0507f65a392b0ab4667716bfe0110ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
	if transaction.Data != expected {
		t.Fatalf("expected approve call data\n%s\ngot\n%s", expected, transaction.Data)
	}
}

func TestSetPresignatureTxEncodesOrderUID(t *testing.T) {
	transaction, appErr := SetPresignatureTx("0x12")
	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}

	if transaction.To != "0x9008D19f58AAbD9eD0D60971565AA8510560ab41" {
		t.Fatalf("expected settlement contract target, got %q", transaction.To)
	}
	if transaction.Value != "0x0" {
		t.Fatalf("expected zero value, got %q", transaction.Value)
	}

	expected := "0xec6cb13f0000000000000000000000000000000000000000000000000000000000000040000000000000000000000000000000000000000000000000000000000000000100000000000000000000000000000000000000000000000000000000000000011200000000000000000000000000000000000000000000000000000000000000"
	if transaction.Data != expected {
		t.Fatalf("expected setPreSignature call data\n%s\ngot\n%s", expected, transaction.Data)
	}
}

func TestSetPresignatureTxRejectsNonHexUID(t *testing.T) {
	_, appErr := SetPresignatureTx("not-hex")
	if appErr == nil {
		t.Fatal("expected error for non-hex uid")
	}
	if appErr.Code != "order_uid_invalid" {
		t.Fatalf("expected code order_uid_invalid, got %q", appErr.Code)
	}
}
