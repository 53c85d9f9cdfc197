package tokendirectory

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/singleflight"

	"signforge/internal/application/dto"
	portsout "signforge/internal/application/ports/out"
	"signforge/internal/application/use_cases"
	apperrors "signforge/internal/shared_kernel/errors"
)

const refreshKey = "token-map"

// Directory is the process-wide token metadata cache. Reads work on an
// immutable snapshot; a refresh swaps the snapshot pointer atomically, and
// concurrent refreshes collapse into one upstream fetch.
type Directory struct {
	source portsout.TokenMapSource
	reader portsout.ChainReader
	ttl    time.Duration
	clock  use_cases.Clock
	logger *log.Logger

	flight   singleflight.Group
	snapshot atomic.Pointer[snapshot]
}

type snapshot struct {
	tokens    dto.TokenMap
	fetchedAt time.Time
}

var _ portsout.TokenDirectory = (*Directory)(nil)

func New(source portsout.TokenMapSource, reader portsout.ChainReader, ttl time.Duration, clock use_cases.Clock, logger *log.Logger) *Directory {
	if clock == nil {
		clock = use_cases.NewSystemClock()
	}

	return &Directory{
		source: source,
		reader: reader,
		ttl:    ttl,
		clock:  clock,
		logger: logger,
	}
}

func (d *Directory) Resolve(ctx context.Context, chainID int64, symbolOrAddress string) (dto.TokenInfo, *apperrors.AppError) {
	input := strings.TrimSpace(symbolOrAddress)
	if input == "" {
		return dto.TokenInfo{}, apperrors.NewValidation(
			"token_missing",
			"token symbol or address is required",
			nil,
		)
	}

	// Address inputs bypass the mapping; the contract itself is the source
	// of truth for decimals.
	if common.IsHexAddress(input) {
		decimals, appErr := d.reader.TokenDecimals(ctx, chainID, input)
		if appErr != nil {
			return dto.TokenInfo{}, appErr
		}

		return dto.TokenInfo{
			Address:  common.HexToAddress(input).Hex(),
			Decimals: decimals,
		}, nil
	}

	tokens, appErr := d.current(ctx)
	if appErr != nil {
		return dto.TokenInfo{}, appErr
	}

	perChain, exists := tokens[chainID]
	if !exists {
		return dto.TokenInfo{}, tokenNotFound(chainID, input)
	}
	info, exists := perChain[strings.ToLower(input)]
	if !exists {
		return dto.TokenInfo{}, tokenNotFound(chainID, input)
	}

	return info, nil
}

func (d *Directory) current(ctx context.Context) (dto.TokenMap, *apperrors.AppError) {
	if snap := d.snapshot.Load(); snap != nil && d.clock.NowUTC().Sub(snap.fetchedAt) < d.ttl {
		return snap.tokens, nil
	}

	result, err, _ := d.flight.Do(refreshKey, func() (any, error) {
		// A concurrent caller may have refreshed while this one queued.
		if snap := d.snapshot.Load(); snap != nil && d.clock.NowUTC().Sub(snap.fetchedAt) < d.ttl {
			return snap.tokens, nil
		}

		tokens, appErr := d.source.FetchTokenMap(ctx)
		if appErr != nil {
			return nil, appErr
		}
		d.snapshot.Store(&snapshot{
			tokens:    tokens,
			fetchedAt: d.clock.NowUTC(),
		})
		if d.logger != nil {
			d.logger.Printf("event=token_map_refreshed chains=%d", len(tokens))
		}

		return tokens, nil
	})
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			return nil, appErr
		}
		return nil, apperrors.NewInternal(
			"token_map_refresh_failed",
			"token map refresh failed",
			map[string]any{"error": err.Error()},
		)
	}

	return result.(dto.TokenMap), nil
}

func tokenNotFound(chainID int64, symbol string) *apperrors.AppError {
	return apperrors.NewNotFound(
		"token_not_found",
		fmt.Sprintf("token %q is not known on chain %d", symbol, chainID),
		map[string]any{"chain_id": chainID, "token": symbol},
	)
}
