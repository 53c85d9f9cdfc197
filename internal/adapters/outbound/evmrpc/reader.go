package evmrpc

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	portsout "signforge/internal/application/ports/out"
	"signforge/internal/domain/chains"
	"signforge/internal/domain/evm"
	apperrors "signforge/internal/shared_kernel/errors"
)

type Config struct {
	// RPCURLs overrides the per-chain endpoint from the chain registry.
	RPCURLs map[int64]string
}

// Reader performs eth_call reads against per-chain RPC nodes. Clients are
// dialed lazily on first use and reused for the process lifetime.
type Reader struct {
	rpcURLs map[int64]string

	mu      sync.Mutex
	clients map[int64]*ethclient.Client
}

var _ portsout.ChainReader = (*Reader)(nil)

func NewReader(cfg Config) *Reader {
	return &Reader{
		rpcURLs: cfg.RPCURLs,
		clients: make(map[int64]*ethclient.Client),
	}
}

func (r *Reader) TokenDecimals(ctx context.Context, chainID int64, token string) (uint8, *apperrors.AppError) {
	if !common.IsHexAddress(token) {
		return 0, apperrors.NewValidation(
			"token_address_invalid",
			fmt.Sprintf("token %q is not a valid address", token),
			map[string]any{"token": token},
		)
	}

	data, err := evm.EncodeDecimalsCall()
	if err != nil {
		return 0, encodingError("decimals", err)
	}

	result, appErr := r.call(ctx, chainID, common.HexToAddress(token), data)
	if appErr != nil {
		return 0, appErr
	}

	decimals, err := evm.DecodeDecimalsResult(result)
	if err != nil {
		return 0, apperrors.NewValidation(
			"token_decimals_unreadable",
			fmt.Sprintf("address %s does not answer decimals() like a token contract", token),
			map[string]any{"token": token, "error": err.Error()},
		)
	}

	return decimals, nil
}

func (r *Reader) Allowance(ctx context.Context, chainID int64, token, owner, spender string) (*big.Int, *apperrors.AppError) {
	for field, value := range map[string]string{"token": token, "owner": owner, "spender": spender} {
		if !common.IsHexAddress(value) {
			return nil, apperrors.NewValidation(
				field+"_address_invalid",
				fmt.Sprintf("%s %q is not a valid address", field, value),
				map[string]any{field: value},
			)
		}
	}

	data, err := evm.EncodeAllowanceCall(common.HexToAddress(owner), common.HexToAddress(spender))
	if err != nil {
		return nil, encodingError("allowance", err)
	}

	result, appErr := r.call(ctx, chainID, common.HexToAddress(token), data)
	if appErr != nil {
		return nil, appErr
	}

	allowance, err := evm.DecodeAllowanceResult(result)
	if err != nil {
		return nil, apperrors.NewInternal(
			"allowance_result_invalid",
			fmt.Sprintf("failed to decode allowance result from token %s", token),
			map[string]any{"token": token, "error": err.Error()},
		)
	}

	return allowance, nil
}

func (r *Reader) call(ctx context.Context, chainID int64, target common.Address, data []byte) ([]byte, *apperrors.AppError) {
	client, appErr := r.clientFor(chainID)
	if appErr != nil {
		return nil, appErr
	}

	result, err := client.CallContract(ctx, ethereum.CallMsg{To: &target, Data: data}, nil)
	if err != nil {
		return nil, apperrors.NewUnavailable(
			"rpc_call_failed",
			fmt.Sprintf("contract read on chain %d failed", chainID),
			map[string]any{"chain_id": chainID, "error": err.Error()},
		)
	}

	return result, nil
}

func (r *Reader) clientFor(chainID int64) (*ethclient.Client, *apperrors.AppError) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client, exists := r.clients[chainID]; exists {
		return client, nil
	}

	url := r.rpcURLs[chainID]
	if url == "" {
		chain, appErr := chains.ByID(chainID)
		if appErr != nil {
			return nil, appErr
		}
		url = chain.RPCURL
	}
	if url == "" {
		return nil, apperrors.NewInternal(
			"rpc_url_missing",
			fmt.Sprintf("no RPC endpoint configured for chain %d", chainID),
			map[string]any{"chain_id": chainID},
		)
	}

	client, err := ethclient.Dial(url)
	if err != nil {
		return nil, apperrors.NewUnavailable(
			"rpc_dial_failed",
			fmt.Sprintf("failed to connect to RPC endpoint for chain %d", chainID),
			map[string]any{"chain_id": chainID, "error": err.Error()},
		)
	}
	r.clients[chainID] = client

	return client, nil
}

func encodingError(call string, err error) *apperrors.AppError {
	return apperrors.NewInternal(
		call+"_encoding_failed",
		fmt.Sprintf("failed to encode %s call", call),
		map[string]any{"error": err.Error()},
	)
}
