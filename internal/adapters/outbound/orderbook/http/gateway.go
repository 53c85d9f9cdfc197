package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	portsout "signforge/internal/application/ports/out"
	"signforge/internal/domain/chains"
	"signforge/internal/domain/cowswap"
	apperrors "signforge/internal/shared_kernel/errors"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBodyBytes  = 2048

	quotePath   = "/api/v1/quote"
	ordersPath  = "/api/v1/orders"
	appDataPath = "/api/v1/app_data"
)

type Config struct {
	// BaseURLs overrides the per-chain API base from the chain registry.
	BaseURLs map[int64]string
	Timeout  time.Duration
}

type Gateway struct {
	baseURLs map[int64]string
	client   *nethttp.Client
}

var _ portsout.OrderBookGateway = (*Gateway)(nil)

func NewGateway(cfg Config) *Gateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	return &Gateway{
		baseURLs: cfg.BaseURLs,
		client: &nethttp.Client{
			Timeout: timeout,
		},
	}
}

func (g *Gateway) GetQuote(ctx context.Context, chainID int64, request cowswap.QuoteRequest) (cowswap.QuoteResponse, *apperrors.AppError) {
	var response cowswap.QuoteResponse
	if appErr := g.postJSON(ctx, chainID, quotePath, request, &response); appErr != nil {
		return cowswap.QuoteResponse{}, appErr
	}

	return response, nil
}

func (g *Gateway) SendOrder(ctx context.Context, chainID int64, order cowswap.OrderCreation) (string, *apperrors.AppError) {
	// The order book answers with the order uid as a bare JSON string.
	var orderUID string
	if appErr := g.postJSON(ctx, chainID, ordersPath, order, &orderUID); appErr != nil {
		return "", appErr
	}
	if orderUID == "" {
		return "", apperrors.NewInternal(
			"order_uid_missing",
			"order book accepted the order but returned no uid",
			nil,
		)
	}

	return orderUID, nil
}

// AppDataExists probes the document store. Any failure reads as absent so
// the caller re-uploads; the upload is idempotent by content hash.
func (g *Gateway) AppDataExists(ctx context.Context, chainID int64, hash string) bool {
	base, appErr := g.baseURL(chainID)
	if appErr != nil {
		return false
	}

	request, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, base+appDataPath+"/"+hash, nil)
	if err != nil {
		return false
	}

	response, err := g.client.Do(request)
	if err != nil {
		return false
	}
	defer response.Body.Close()
	_, _ = io.Copy(io.Discard, response.Body)

	return response.StatusCode == nethttp.StatusOK
}

func (g *Gateway) UploadAppData(ctx context.Context, chainID int64, hash, document string) *apperrors.AppError {
	base, appErr := g.baseURL(chainID)
	if appErr != nil {
		return appErr
	}

	payload, err := json.Marshal(map[string]string{"fullAppData": document})
	if err != nil {
		return apperrors.NewInternal(
			"app_data_payload_invalid",
			"failed to serialize app data upload",
			map[string]any{"error": err.Error()},
		)
	}

	request, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPut, base+appDataPath+"/"+hash, bytes.NewReader(payload))
	if err != nil {
		return apperrors.NewInternal(
			"order_book_request_build_failed",
			"failed to build app data upload request",
			map[string]any{"error": err.Error()},
		)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := g.client.Do(request)
	if err != nil {
		return apperrors.NewUnavailable(
			"order_book_unreachable",
			"failed to reach the order book service",
			map[string]any{"error": err.Error()},
		)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return upstreamError(response)
	}
	_, _ = io.Copy(io.Discard, response.Body)

	return nil
}

func (g *Gateway) OrderLink(chainID int64, orderUID string) string {
	chain, appErr := chains.ByID(chainID)
	if appErr != nil || chain.OrderExplorer == "" {
		return ""
	}

	return chain.OrderExplorer + "/" + orderUID
}

func (g *Gateway) baseURL(chainID int64) (string, *apperrors.AppError) {
	if override, exists := g.baseURLs[chainID]; exists && override != "" {
		return strings.TrimRight(override, "/"), nil
	}

	chain, appErr := chains.ByID(chainID)
	if appErr != nil {
		return "", appErr
	}
	if chain.OrderBookURL == "" {
		return "", apperrors.NewValidation(
			"order_book_chain_unsupported",
			fmt.Sprintf("the order book protocol is not deployed on chain %d", chainID),
			map[string]any{"chain_id": chainID},
		)
	}

	return chain.OrderBookURL, nil
}

func (g *Gateway) postJSON(ctx context.Context, chainID int64, path string, body, result any) *apperrors.AppError {
	base, appErr := g.baseURL(chainID)
	if appErr != nil {
		return appErr
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return apperrors.NewInternal(
			"order_book_payload_invalid",
			"failed to serialize order book request",
			map[string]any{"error": err.Error()},
		)
	}

	request, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPost, base+path, bytes.NewReader(payload))
	if err != nil {
		return apperrors.NewInternal(
			"order_book_request_build_failed",
			"failed to build order book request",
			map[string]any{"error": err.Error()},
		)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := g.client.Do(request)
	if err != nil {
		return apperrors.NewUnavailable(
			"order_book_unreachable",
			"failed to reach the order book service",
			map[string]any{"error": err.Error()},
		)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return upstreamError(response)
	}

	if err := json.NewDecoder(response.Body).Decode(result); err != nil {
		return apperrors.NewInternal(
			"order_book_response_invalid",
			"failed to decode order book response",
			map[string]any{"error": err.Error()},
		)
	}

	return nil
}

// upstreamBody is the order book's error envelope.
type upstreamBody struct {
	ErrorType   string `json:"errorType"`
	Description string `json:"description"`
}

// upstreamError converts a non-2xx order book response into a typed error,
// preserving the upstream errorType and description verbatim.
func upstreamError(response *nethttp.Response) *apperrors.AppError {
	raw, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBodyBytes))

	var parsed upstreamBody
	_ = json.Unmarshal(raw, &parsed)
	message := parsed.Description
	if message == "" {
		message = strings.TrimSpace(string(raw))
	}
	if message == "" {
		message = fmt.Sprintf("order book returned status %d", response.StatusCode)
	}
	details := map[string]any{
		"status_code": response.StatusCode,
	}
	if parsed.ErrorType != "" {
		details["error_type"] = parsed.ErrorType
	}

	switch {
	case response.StatusCode == nethttp.StatusNotFound:
		return apperrors.NewNotFound("order_book_not_found", message, details)
	case response.StatusCode == nethttp.StatusTooManyRequests:
		return apperrors.NewRateLimited("order_book_rate_limited", message, details)
	case response.StatusCode >= 500:
		return apperrors.NewUnavailable("order_book_unavailable", message, details)
	default:
		return apperrors.NewValidation("quote_rejected", message, details)
	}
}
