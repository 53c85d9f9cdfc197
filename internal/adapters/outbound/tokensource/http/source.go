package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"signforge/internal/application/dto"
	portsout "signforge/internal/application/ports/out"
	apperrors "signforge/internal/shared_kernel/errors"
)

const (
	defaultHTTPTimeout = 15 * time.Second
	maxErrorBodyBytes  = 1024
)

type Config struct {
	// URLs are fetched in order and merged; later sources win on symbol
	// collisions.
	URLs    []string
	Timeout time.Duration
}

// Source fetches remote token mappings shaped as
// {"<chainId>": {"<symbol>": {"address": ..., "decimals": ..., "symbol": ...}}}.
type Source struct {
	urls   []string
	client *nethttp.Client
}

var _ portsout.TokenMapSource = (*Source)(nil)

func NewSource(cfg Config) *Source {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	return &Source{
		urls: cfg.URLs,
		client: &nethttp.Client{
			Timeout: timeout,
		},
	}
}

type remoteTokenEntry struct {
	Address  string `json:"address"`
	Decimals uint8  `json:"decimals"`
	Symbol   string `json:"symbol"`
}

func (s *Source) FetchTokenMap(ctx context.Context) (dto.TokenMap, *apperrors.AppError) {
	if len(s.urls) == 0 {
		return nil, apperrors.NewInternal(
			"token_map_source_unconfigured",
			"no token map source url configured",
			nil,
		)
	}

	merged := dto.TokenMap{}
	for _, url := range s.urls {
		fetched, appErr := s.fetchOne(ctx, url)
		if appErr != nil {
			return nil, appErr
		}
		mergeTokenMap(merged, fetched)
	}

	return merged, nil
}

func (s *Source) fetchOne(ctx context.Context, url string) (dto.TokenMap, *apperrors.AppError) {
	request, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.NewInternal(
			"token_map_request_build_failed",
			"failed to build token map request",
			map[string]any{"url": url, "error": err.Error()},
		)
	}

	response, err := s.client.Do(request)
	if err != nil {
		return nil, apperrors.NewUnavailable(
			"token_map_fetch_failed",
			"failed to reach the token map source",
			map[string]any{"url": url, "error": err.Error()},
		)
	}
	defer response.Body.Close()

	if response.StatusCode != nethttp.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBodyBytes))
		return nil, apperrors.NewUnavailable(
			"token_map_fetch_failed",
			fmt.Sprintf("token map source returned status %d", response.StatusCode),
			map[string]any{
				"url":         url,
				"status_code": response.StatusCode,
				"body":        strings.TrimSpace(string(raw)),
			},
		)
	}

	var decoded map[string]map[string]remoteTokenEntry
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return nil, apperrors.NewInternal(
			"token_map_response_invalid",
			"failed to decode token map response",
			map[string]any{"url": url, "error": err.Error()},
		)
	}

	tokenMap := dto.TokenMap{}
	for rawChainID, symbols := range decoded {
		chainID, err := strconv.ParseInt(rawChainID, 10, 64)
		if err != nil {
			continue
		}
		perChain := make(map[string]dto.TokenInfo, len(symbols))
		for symbol, entry := range symbols {
			if !common.IsHexAddress(entry.Address) {
				continue
			}
			canonicalSymbol := entry.Symbol
			if canonicalSymbol == "" {
				canonicalSymbol = symbol
			}
			perChain[strings.ToLower(symbol)] = dto.TokenInfo{
				Address:  common.HexToAddress(entry.Address).Hex(),
				Decimals: entry.Decimals,
				Symbol:   canonicalSymbol,
			}
		}
		if len(perChain) > 0 {
			tokenMap[chainID] = perChain
		}
	}

	return tokenMap, nil
}

func mergeTokenMap(target, source dto.TokenMap) {
	for chainID, symbols := range source {
		if _, exists := target[chainID]; !exists {
			target[chainID] = make(map[string]dto.TokenInfo, len(symbols))
		}
		for symbol, info := range symbols {
			target[chainID][symbol] = info
		}
	}
}
