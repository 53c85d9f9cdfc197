//go:build !integration

package tokendirectory

import (
	"context"
	"math/big"
	"testing"
	"time"

	"signforge/internal/application/dto"
	apperrors "signforge/internal/shared_kernel/errors"
)

const testUSDC = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"

func TestDirectoryResolvesSymbolFromSnapshot(t *testing.T) {
	source := newCountingSource()
	directory := New(source, &fakeChainReader{}, time.Hour, newFakeClock(), nil)

	info, appErr := directory.Resolve(context.Background(), 1, "usdc")
	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}
	if info.Address != testUSDC {
		t.Fatalf("expected %s, got %q", testUSDC, info.Address)
	}
	if info.Decimals != 6 {
		t.Fatalf("expected 6 decimals, got %d", info.Decimals)
	}

	// A warm snapshot serves subsequent lookups without refetching.
	if _, appErr := directory.Resolve(context.Background(), 1, "WETH"); appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}
	if source.fetches != 1 {
		t.Fatalf("expected one upstream fetch, got %d", source.fetches)
	}
}

func TestDirectoryRefreshesAfterTTL(t *testing.T) {
	source := newCountingSource()
	clock := newFakeClock()
	directory := New(source, &fakeChainReader{}, time.Hour, clock, nil)

	if _, appErr := directory.Resolve(context.Background(), 1, "usdc"); appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}
	clock.advance(2 * time.Hour)
	if _, appErr := directory.Resolve(context.Background(), 1, "usdc"); appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}

	if source.fetches != 2 {
		t.Fatalf("expected a refetch after TTL expiry, got %d fetches", source.fetches)
	}
}

func TestDirectoryResolvesAddressViaChainReader(t *testing.T) {
	source := newCountingSource()
	directory := New(source, &fakeChainReader{decimals: 18}, time.Hour, newFakeClock(), nil)

	info, appErr := directory.Resolve(context.Background(), 1, "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2")
	if appErr != nil {
		t.Fatalf("expected no error, got %v", appErr)
	}
	if info.Address != "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2" {
		t.Fatalf("expected checksummed address, got %q", info.Address)
	}
	if info.Decimals != 18 {
		t.Fatalf("expected 18 decimals, got %d", info.Decimals)
	}
	if source.fetches != 0 {
		t.Fatalf("expected no token map fetch for address input, got %d", source.fetches)
	}
}

func TestDirectoryRejectsUnknownToken(t *testing.T) {
	directory := New(newCountingSource(), &fakeChainReader{}, time.Hour, newFakeClock(), nil)

	_, appErr := directory.Resolve(context.Background(), 1, "NOPE")
	if appErr == nil || appErr.Code != "token_not_found" {
		t.Fatalf("expected token_not_found, got %v", appErr)
	}

	_, appErr = directory.Resolve(context.Background(), 999, "usdc")
	if appErr == nil || appErr.Code != "token_not_found" {
		t.Fatalf("expected token_not_found, got %v", appErr)
	}
}

func TestDirectoryRejectsEmptyInput(t *testing.T) {
	directory := New(newCountingSource(), &fakeChainReader{}, time.Hour, newFakeClock(), nil)

	_, appErr := directory.Resolve(context.Background(), 1, "  ")
	if appErr == nil || appErr.Code != "token_missing" {
		t.Fatalf("expected token_missing, got %v", appErr)
	}
}

func TestDirectoryPropagatesFetchFailure(t *testing.T) {
	source := newCountingSource()
	source.err = apperrors.NewUnavailable("token_map_fetch_failed", "upstream down", nil)
	directory := New(source, &fakeChainReader{}, time.Hour, newFakeClock(), nil)

	_, appErr := directory.Resolve(context.Background(), 1, "usdc")
	if appErr == nil || appErr.Code != "token_map_fetch_failed" {
		t.Fatalf("expected token_map_fetch_failed, got %v", appErr)
	}
}

type countingSource struct {
	tokens  dto.TokenMap
	err     *apperrors.AppError
	fetches int
}

func newCountingSource() *countingSource {
	return &countingSource{
		tokens: dto.TokenMap{
			1: {
				"usdc": {Address: testUSDC, Decimals: 6, Symbol: "USDC"},
				"weth": {Address: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", Decimals: 18, Symbol: "WETH"},
			},
		},
	}
}

func (s *countingSource) FetchTokenMap(_ context.Context) (dto.TokenMap, *apperrors.AppError) {
	s.fetches++
	if s.err != nil {
		return nil, s.err
	}

	return s.tokens, nil
}

type fakeChainReader struct {
	decimals uint8
}

func (r *fakeChainReader) TokenDecimals(_ context.Context, _ int64, _ string) (uint8, *apperrors.AppError) {
	return r.decimals, nil
}

func (r *fakeChainReader) Allowance(_ context.Context, _ int64, _, _, _ string) (*big.Int, *apperrors.AppError) {
	return big.NewInt(0), nil
}

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) NowUTC() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}
